// Package tracker drives a game backend: it waits for a supported game, polls
// it until the session ends and publishes a Snapshot after every cycle.
package tracker

import (
	"context"
	"errors"
	"time"

	"stattracker/backend"
	"stattracker/mission"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/google/uuid"
)

// Detector finds a running game. backend.Dispatcher is the production one.
type Detector interface {
	Detect() (backend.Backend, error)
}

type Config struct {
	PollInterval   time.Duration
	DetectInterval time.Duration
}

// Tracker is single-threaded: Step and Run must not be called concurrently
type Tracker struct {
	cfg      Config
	detector Detector
	sinks    []Sink
	log      *logger.Logger

	current    backend.Backend
	sessionID  string
	lastDetect time.Time
	last       mission.GameData // last successful poll of the current session

	now   func() time.Time
	newID func() string
}

func New(cfg Config, detector Detector, sinks ...Sink) (*Tracker, error) {
	if detector == nil {
		return nil, errors.New("tracker: detector required")
	}
	if cfg.PollInterval <= 0 {
		return nil, errors.New("tracker: poll interval must be > 0")
	}
	if cfg.DetectInterval <= 0 {
		return nil, errors.New("tracker: detect interval must be > 0")
	}

	return &Tracker{
		cfg:      cfg,
		detector: detector,
		sinks:    sinks,
		log:      logger.NewLogger(coloransi.Color(coloransi.ColorOrange, coloransi.ColorPurple, "tracker")),
		now:      time.Now,
		newID:    uuid.NewString,
	}, nil
}

// Step runs one cycle and returns the snapshot it published.
// While waiting, Detect runs at most once per DetectInterval. A freshly
// detected backend is polled in the same cycle.
func (t *Tracker) Step() Snapshot {
	now := t.now()

	if t.current == nil && t.detectDue(now) {
		t.detect(now)
	}

	snap := Snapshot{State: Waiting, UpdatedAt: now}
	if t.current != nil {
		snap = t.poll(now)
	}

	for _, sink := range t.sinks {
		sink.Publish(snap)
	}
	return snap
}

// Run steps every PollInterval until ctx is done, then closes the live backend
func (t *Tracker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.cfg.PollInterval)
	defer ticker.Stop()
	defer t.Close()

	for {
		t.Step()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Close drops the live backend, if any
func (t *Tracker) Close() error {
	if t.current == nil {
		return nil
	}
	err := t.current.Close()
	t.current = nil
	t.sessionID = ""
	t.last = mission.GameData{}
	return err
}

func (t *Tracker) detectDue(now time.Time) bool {
	return t.lastDetect.IsZero() || now.Sub(t.lastDetect) >= t.cfg.DetectInterval
}

func (t *Tracker) detect(now time.Time) {
	t.lastDetect = now

	b, err := t.detector.Detect()
	switch {
	case errors.Is(err, backend.ErrNoGame):
		return
	case err != nil:
		t.log.Warn("Detect failed: ", err)
		return
	}

	t.current = b
	t.sessionID = t.newID()
	t.log.Infoln("Attached to", b.Game(), "pid", b.PID(), "session", t.sessionID)
}

func (t *Tracker) poll(now time.Time) Snapshot {
	data, ok := t.current.Poll()
	if !ok {
		t.log.Infoln("Session", t.sessionID, "ended in", t.last.Mission, "after", t.last.Elapsed())
		if err := t.Close(); err != nil {
			t.log.Debugln("Close:", err)
		}
		// the next detect waits a full interval so a dying process is not picked up again
		t.lastDetect = now
		return Snapshot{State: Waiting, UpdatedAt: now}
	}

	t.last = data
	snap := Snapshot{
		State:     Running,
		SessionID: t.sessionID,
		Game:      t.current.Game(),
		PID:       t.current.PID(),
		Data:      data,
		UpdatedAt: now,
	}
	if rect, ok := t.current.GameWindow(); ok {
		snap.Window = &rect
	}
	return snap
}
