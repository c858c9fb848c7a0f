package tracker

import (
	"sync"
	"time"

	"stattracker/backend"
	"stattracker/mission"
	"stattracker/process"
	"stattracker/window"
)

type State string

const (
	Waiting State = "waiting" // no game attached
	Running State = "running"
)

// Snapshot is what the tracker publishes after every cycle
type Snapshot struct {
	State     State             `json:"state"`
	SessionID string            `json:"session_id,omitempty"`
	Game      backend.Game      `json:"game,omitempty"`
	PID       process.ProcessID `json:"pid,omitempty"`
	Data      mission.GameData  `json:"data"`
	Window    *window.Rect      `json:"window,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Sink receives every published snapshot on the polling goroutine
type Sink interface {
	Publish(Snapshot)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Snapshot)

func (f SinkFunc) Publish(s Snapshot) {
	f(s)
}

// Store keeps the latest snapshot for readers on other goroutines
type Store struct {
	mu     sync.RWMutex
	latest Snapshot
}

func NewStore() *Store {
	return &Store{latest: Snapshot{State: Waiting}}
}

func (s *Store) Publish(snap Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()
}

func (s *Store) Latest() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
