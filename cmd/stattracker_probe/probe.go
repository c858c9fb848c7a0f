package main

import (
	"fmt"
	"io"
	"strings"

	"stattracker/backend"
	"stattracker/hexdump"
	"stattracker/pod"
	"stattracker/process"
	"stattracker/process/memory_map"
)

// probe prints every chain of game and returns how many failed to resolve
func probe(w io.Writer, r process.MemoryReader, game backend.Game, level int, mm []memory_map.MemoryMapItem, plain bool) int {
	failures := 0
	levels := backend.Levels(game)

	for _, c := range backend.Chains(game, level) {
		fmt.Fprintf(w, "%s: %s %s\n", c.Name, c.Base, formatOffsets(c.Offsets))

		data, hops, err := c.Read(r)
		for i, hop := range hops {
			fmt.Fprintf(w, "  [%d] %s -> %s + %#x\n", i, hop.Address, hop.Pointer, uint64(hop.Offset))
		}
		if err != nil {
			fmt.Fprintf(w, "  failed: %v\n", err)
			failures++
			continue
		}

		fmt.Fprint(w, hexdump.Dump(data, hexdump.Options{
			StartAddress: uint64(finalAddress(c, hops)),
			MemoryMap:    mm,
			Plain:        plain,
		}))
		fmt.Fprintf(w, "  = %s\n", decode(game, c.Name, data, levels))
	}
	return failures
}

func finalAddress(c backend.Chain, hops []process.Hop) process.ProcessMemoryAddress {
	if len(hops) == 0 {
		return c.Base
	}
	last := hops[len(hops)-1]
	return last.Pointer + process.ProcessMemoryAddress(last.Offset)
}

func formatOffsets(offsets []process.ProcessMemorySize) string {
	parts := make([]string, len(offsets))
	for i, off := range offsets {
		parts[i] = fmt.Sprintf("%#x", uint64(off))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func decode(game backend.Game, name string, data []byte, levels map[string]backend.Level) string {
	switch {
	case name == "level":
		id, err := pod.String(data, nil)
		if err != nil {
			return err.Error()
		}
		if level, ok := levels[id]; ok {
			return fmt.Sprintf("%q %s", id, level.Name)
		}
		return fmt.Sprintf("%q unknown level", id)
	case name == "timer" && game == backend.Contracts:
		v, err := pod.Float32(data, nil)
		if err != nil {
			return err.Error()
		}
		return fmt.Sprintf("%g s", v)
	}
	v, err := pod.Uint32(data, nil)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%d", v)
}
