// Package process provides interfaces and types for reading another process's memory
package process

import "errors"

// The package is split by concern:
// - types.go: ProcessID, ProcessInfo
// - memory_types.go: ProcessMemoryAddress, ProcessMemorySize
// - process_interface.go: MemoryReader, Process
// - process_finder.go: ProcessFinder
// - path.go: pointer chain resolution

var (
	// ErrAddressNotMapped is returned when a memory address is not found within any mapped region of a process.
	ErrAddressNotMapped = errors.New("address not mapped")

	// ErrProcessNotOpen is returned when an operation requiring an open process is attempted
	// before the process has been successfully opened or after it has been closed.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrProcessGone is returned when the target process no longer exists or its handle became invalid.
	ErrProcessGone = errors.New("process gone")

	// ErrShortRead is returned when the OS copied fewer bytes than requested.
	ErrShortRead = errors.New("short read")
)
