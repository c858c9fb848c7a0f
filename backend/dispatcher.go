package backend

import (
	"fmt"
	"path/filepath"
	"time"

	"stattracker/process"
	"stattracker/process_blob"
	"stattracker/window"
)

// Dispatcher finds a running supported game and builds a fresh Backend for it.
// It is the only place backends are constructed, so per-session state such as
// the Hitman 2 shots backup always starts from zero.
type Dispatcher struct {
	Finder process.ProcessFinder
	Open   process.Opener
	Window window.Finder

	// RecordDir, when set, wraps every opened process in a recorder that saves
	// a replayable dump below this directory when the session closes
	RecordDir string

	now func() time.Time
}

// Detect takes one process snapshot and checks the supported games in order
func (d *Dispatcher) Detect() (Backend, error) {
	snapshot, err := d.Finder.FindAllProcesses()
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	for _, game := range Games {
		info, ok := process.FirstByName(snapshot, string(game))
		if !ok {
			continue
		}

		proc, err := d.Open(info.PID)
		if err != nil {
			return nil, fmt.Errorf("detect: open %s (pid %d): %w", game, info.PID, err)
		}

		if d.RecordDir != "" {
			proc = process_blob.NewRecorder(proc, info.Name, d.recordingDir(info))
		}

		return d.build(game, proc), nil
	}

	return nil, ErrNoGame
}

func (d *Dispatcher) build(game Game, proc process.Process) Backend {
	switch game {
	case Contracts:
		return newHmC(proc, d.Window)
	default:
		return newHm2(proc, d.Window)
	}
}

func (d *Dispatcher) recordingDir(info process.ProcessInfo) string {
	now := time.Now
	if d.now != nil {
		now = d.now
	}
	return filepath.Join(d.RecordDir, fmt.Sprintf("%s-%d-%s", info.Name, info.PID, now().Format("20060102-150405")))
}
