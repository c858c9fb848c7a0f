// Package backend reads mission state out of a running Hitman 2: Silent Assassin
// or Hitman: Contracts process.
//
// Each game has its own Backend; the Dispatcher picks one for whichever game is
// running. A Backend lives for exactly one game session: once Poll returns false
// it should be closed and a new one detected.
package backend

import (
	"errors"

	"stattracker/mission"
	"stattracker/pod"
	"stattracker/process"
	"stattracker/window"
)

var (
	// ErrNoGame is returned by Detect when no supported game is running
	ErrNoGame = errors.New("no supported game running")
)

// Game is a supported executable, named as the OS reports it
type Game string

const (
	Hitman2   Game = "hitman2.exe"
	Contracts Game = "HitmanContracts.exe"
)

// Games lists the supported executables in detection order
var Games = []Game{Hitman2, Contracts}

// Backend polls one game session
type Backend interface {
	Game() Game
	PID() process.ProcessID

	// Poll reads the current mission state. false means the session ended.
	Poll() (mission.GameData, bool)

	// GameWindow returns the screen bounds of the game window, if it can be found
	GameWindow() (window.Rect, bool)

	Close() error
}

// Level is an entry of a game's level table
type Level struct {
	Name  string
	Index int  // position in the game's per-level tables; valid when Rated
	Rated bool // false for hubs and menus where counters are not kept
}

// levelIDSize is the width of the level identifier both games keep in memory
const levelIDSize process.ProcessMemorySize = 5

// chain is a pointer chain from a fixed address
type chain struct {
	base    process.ProcessMemoryAddress
	offsets []process.ProcessMemorySize
}

func (c chain) read(r process.MemoryReader, size process.ProcessMemorySize) ([]byte, error) {
	return process.ReadPointerChain(r, c.base, size, c.offsets...)
}

func (c chain) uint32(r process.MemoryReader) (uint32, error) {
	return pod.Uint32(c.read(r, 4))
}

// withOffset returns a copy of c with the offset at pos replaced
func (c chain) withOffset(pos int, off process.ProcessMemorySize) chain {
	offsets := make([]process.ProcessMemorySize, len(c.offsets))
	copy(offsets, c.offsets)
	offsets[pos] = off
	return chain{base: c.base, offsets: offsets}
}

// counterNames are the metric labels of the eight counters, in mission.Stats order
var counterNames = [mission.StatCount]string{
	"shots_fired",
	"close_encounters",
	"headshots",
	"alerts",
	"enemies_killed",
	"enemies_harmed",
	"innocents_killed",
	"innocents_harmed",
}

// lookupLevel decodes a level identifier and finds it in levels.
// Undecodable bytes count as an unknown level.
func lookupLevel(levels map[string]Level, raw []byte) (Level, bool) {
	id, err := pod.String(raw, nil)
	if err != nil {
		return Level{}, false
	}
	level, ok := levels[id]
	return level, ok
}
