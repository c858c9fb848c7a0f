package process

// MemoryReader is the single point of contact with another process's address space.
// Implementations never panic; every failure is returned as an error.
type MemoryReader interface {
	// ReadMemory copies size bytes starting at addr out of the target process
	ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)
}

// Process is a MemoryReader bound to an opened OS process
type Process interface {
	MemoryReader

	// Open opens a process with the given PID for memory reads
	Open(pid ProcessID) error

	// Close closes the process and releases resources
	Close() error

	// GetPID returns the process ID
	GetPID() ProcessID
}

// Opener opens a Process for the given PID. Each platform package provides one.
type Opener func(pid ProcessID) (Process, error)
