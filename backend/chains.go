package backend

import (
	"sort"

	"stattracker/process"
)

// Chain is a named pointer chain a backend reads, exported for probing tools
type Chain struct {
	Name    string
	Base    process.ProcessMemoryAddress
	Offsets []process.ProcessMemorySize
	Size    process.ProcessMemorySize
}

func (c Chain) Read(r process.MemoryReader) ([]byte, []process.Hop, error) {
	return process.ReadPointerChainTrace(r, c.Base, c.Size, c.Offsets...)
}

func named(name string, c chain, size process.ProcessMemorySize) Chain {
	return Chain{Name: name, Base: c.base, Offsets: c.offsets, Size: size}
}

// Chains lists every chain game reads, in poll order. Hitman 2 counters are
// resolved for levelIndex; an index outside the table selects the first level.
func Chains(game Game, levelIndex int) []Chain {
	switch game {
	case Hitman2:
		if levelIndex < 0 || levelIndex >= len(hm2LevelOffsets) {
			levelIndex = 0
		}
		out := []Chain{
			named("level", hm2Map, levelIDSize),
			named("timer", hm2Timer, 4),
		}
		for i, c := range hm2Counters {
			out = append(out, named(counterNames[i+1], c.withOffset(hm2LevelSlot, hm2LevelOffsets[levelIndex]), 4))
		}
		return append(out, named(counterNames[0], hm2Shots, 4))
	case Contracts:
		out := []Chain{
			named("level", hmcMap, levelIDSize),
			named("timer", hmcTimer, 4),
		}
		for i, c := range hmcCounters {
			out = append(out, named(counterNames[i+1], c, 4))
		}
		return append(out, named(counterNames[0], hmcShots, 4))
	}
	return nil
}

// Levels returns the level table of game keyed by in-memory identifier
func Levels(game Game) map[string]Level {
	var src map[string]Level
	switch game {
	case Hitman2:
		src = hm2Levels
	case Contracts:
		src = hmcLevels
	}
	out := make(map[string]Level, len(src))
	for id, level := range src {
		out[id] = level
	}
	return out
}

// LevelIDs returns the identifiers of Levels(game) in sorted order
func LevelIDs(game Game) []string {
	levels := Levels(game)
	ids := make([]string, 0, len(levels))
	for id := range levels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
