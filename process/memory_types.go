package process

import (
	"fmt"
)

// ProcessMemoryAddress represents a memory address within a process
type ProcessMemoryAddress uint64

func (pma ProcessMemoryAddress) String() string {
	return fmt.Sprintf("0x%X", uint64(pma))
}

// ProcessMemorySize represents a size of memory region, or an offset inside one
type ProcessMemorySize uint

func (pms ProcessMemorySize) String() string {
	return fmt.Sprintf("%d bytes", uint(pms))
}

// PointerSize32 is the width of a pointer in the 32-bit targets this module reads
const PointerSize32 ProcessMemorySize = 4
