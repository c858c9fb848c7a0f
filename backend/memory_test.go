package backend

import (
	"encoding/binary"
	"math"

	"stattracker/process"
	"stattracker/process_blob"
	"stattracker/window"
)

// fakeGame lays out pointer chains inside an in-memory dump
type fakeGame struct {
	dump     *process_blob.ProcessDump
	pointers map[process.ProcessMemoryAddress]process.ProcessMemoryAddress
	heap     process.ProcessMemoryAddress
}

func newFakeGame(pid process.ProcessID) *fakeGame {
	dump := process_blob.NewProcessDump()
	dump.PID = pid
	return &fakeGame{
		dump:     dump,
		pointers: make(map[process.ProcessMemoryAddress]process.ProcessMemoryAddress),
		heap:     0x10000000,
	}
}

func le32(v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return buf[:]
}

func (g *fakeGame) put(addr process.ProcessMemoryAddress, data []byte) {
	if _, ok := g.dump.Blobs[uint64(addr)]; ok {
		g.dump.Blobs[uint64(addr)] = data
		return
	}
	g.dump.AddRegion(addr, data)
}

// resolve writes whatever pointers c still needs and returns its final address
func (g *fakeGame) resolve(c chain) process.ProcessMemoryAddress {
	current := c.base
	for _, off := range c.offsets {
		target, ok := g.pointers[current]
		if !ok {
			g.heap += 0x10000
			target = g.heap
			g.pointers[current] = target
			g.put(current, le32(uint32(target)))
		}
		current = target + process.ProcessMemoryAddress(off)
	}
	return current
}

func (g *fakeGame) setString(c chain, s string) {
	g.put(g.resolve(c), []byte(s))
}

func (g *fakeGame) setUint32(c chain, v uint32) {
	g.put(g.resolve(c), le32(v))
}

func (g *fakeGame) setFloat32(c chain, v float32) {
	g.put(g.resolve(c), le32(math.Float32bits(v)))
}

// breakChain points the first hop of c at unmapped memory
func (g *fakeGame) breakChain(c chain) {
	g.resolve(c)
	g.put(c.base, le32(0xDEAD0000))
}

// repairChain restores the first hop broken by breakChain
func (g *fakeGame) repairChain(c chain) {
	g.put(c.base, le32(uint32(g.pointers[c.base])))
}

func (g *fakeGame) setHm2Stats(levelIndex int, values [8]uint32) {
	g.setUint32(hm2Shots, values[0])
	for i, c := range hm2Counters {
		g.setUint32(c.withOffset(hm2LevelSlot, hm2LevelOffsets[levelIndex]), values[i+1])
	}
}

func (g *fakeGame) setHmCStats(values [8]uint32) {
	g.setUint32(hmcShots, values[0])
	for i, c := range hmcCounters {
		g.setUint32(c, values[i+1])
	}
}

var noWindow = window.FinderFunc(func(string) (window.Rect, bool) {
	return window.Rect{}, false
})
