// Package httpapi serves the tracker state read-only over HTTP
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"stattracker/tracker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StateSource is the latest tracker snapshot; tracker.Store implements it
type StateSource interface {
	Latest() tracker.Snapshot
}

type Handler struct {
	state StateSource
}

// NewRouter mounts /state, /healthz and /metrics. origins is the CORS allow-list.
func NewRouter(state StateSource, origins []string) http.Handler {
	h := &Handler{state: state}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))

	r.Get("/state", h.State)
	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// State returns the latest snapshot
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.state.Latest())
}

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"state":     h.state.Latest().State,
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
