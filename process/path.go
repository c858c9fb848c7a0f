package process

import (
	"encoding/binary"
	"fmt"
)

// Hop records one dereference step of a pointer chain
type Hop struct {
	Address ProcessMemoryAddress // address the pointer was read from
	Pointer ProcessMemoryAddress // 32-bit value found there
	Offset  ProcessMemorySize    // offset added to Pointer to reach the next address
}

// ReadPointerChain reads size bytes at the end of a 32-bit pointer chain.
//
// Starting at base, every offset reads a 4-byte little-endian pointer at the
// current address and adds the offset to it. After the last offset, size bytes
// are read at the current address. With no offsets a single read at base is done.
//
// Example:
//
//	// *(*(base) + 0x98) + 0xBC2, read 5 bytes there
//	data, err := process.ReadPointerChain(proc, base, 5, 0x98, 0xBC2)
func ReadPointerChain(r MemoryReader, base ProcessMemoryAddress, size ProcessMemorySize, offsets ...ProcessMemorySize) ([]byte, error) {
	data, _, err := ReadPointerChainTrace(r, base, size, offsets...)
	return data, err
}

// ReadPointerChainTrace does the same as ReadPointerChain but also returns the hops taken.
// On failure the hops resolved so far are returned with the error.
func ReadPointerChainTrace(r MemoryReader, base ProcessMemoryAddress, size ProcessMemorySize, offsets ...ProcessMemorySize) ([]byte, []Hop, error) {
	current := base
	hops := make([]Hop, 0, len(offsets))

	for i, off := range offsets {
		raw, err := r.ReadMemory(current, PointerSize32)
		if err != nil {
			return nil, hops, fmt.Errorf("pointer chain: read pointer at step %d (addr=%#x): %w", i, uint64(current), err)
		}
		if len(raw) != int(PointerSize32) {
			return nil, hops, fmt.Errorf("pointer chain: step %d (addr=%#x) returned %d bytes: %w", i, uint64(current), len(raw), ErrShortRead)
		}

		ptr := ProcessMemoryAddress(binary.LittleEndian.Uint32(raw))
		hops = append(hops, Hop{Address: current, Pointer: ptr, Offset: off})
		current = ptr + ProcessMemoryAddress(off)
	}

	data, err := r.ReadMemory(current, size)
	if err != nil {
		return nil, hops, fmt.Errorf("pointer chain: final read at %#x (size=%#x): %w", uint64(current), uint64(size), err)
	}
	return data, hops, nil
}
