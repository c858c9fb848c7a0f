//go:build linux

package process_linux

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"stattracker/process"
	"stattracker/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// LinuxProcess implements the process.Process interface for Linux systems.
// The games run under Wine or Proton, so the process is an ordinary Linux pid.
type LinuxProcess struct {
	pid process.ProcessID
	log *logger.Logger
	mm  []memory_map.MemoryMapItem
	mu  sync.Mutex

	maps memory_map.MemoryMap
}

var _ process.Process = (*LinuxProcess)(nil)

// New creates a new LinuxProcess instance
func New() *LinuxProcess {
	return &LinuxProcess{
		log:  logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open")),
		maps: memory_map.NewLinuxMemoryMap(),
	}
}

// NewWithPID creates a new LinuxProcess instance and opens it with the given PID
func NewWithPID(pid process.ProcessID) (process.Process, error) {
	p := New()
	if err := p.Open(pid); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *LinuxProcess) Open(pid process.ProcessID) error {
	procPath := fmt.Sprintf("/proc/%d", pid)
	if _, err := os.Stat(procPath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("process with PID %d does not exist: %w", pid, process.ErrProcessGone)
	}

	p.mu.Lock()
	p.pid = pid
	p.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid)))
	p.mu.Unlock()

	if err := p.UpdateMemoryMap(); err != nil {
		return fmt.Errorf("failed to initialize memory map: %w", err)
	}

	p.log.Infoln("Process opened")

	return nil
}

func (p *LinuxProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pid == 0 {
		return nil
	}

	p.pid = 0
	p.mm = nil

	p.log.Infoln("Process closed")
	p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))

	return nil
}

// GetPID returns the process ID
func (p *LinuxProcess) GetPID() process.ProcessID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pid
}

// UpdateMemoryMap rereads /proc/[pid]/maps
func (p *LinuxProcess) UpdateMemoryMap() error {
	p.mu.Lock()
	pid := p.pid
	p.mu.Unlock()

	if pid == 0 {
		return process.ErrProcessNotOpen
	}

	mm, err := p.maps.ReadMemoryMap(int(pid))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read memory map: %w", process.ErrProcessGone)
		}
		return fmt.Errorf("failed to read memory map: %w", err)
	}
	memory_map.Sort(mm)

	p.mu.Lock()
	p.mm = mm
	p.mu.Unlock()
	return nil
}

// GetMemoryMap returns a copy of the current memory map
func (p *LinuxProcess) GetMemoryMap() ([]memory_map.MemoryMapItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pid == 0 {
		return nil, process.ErrProcessNotOpen
	}

	result := make([]memory_map.MemoryMapItem, len(p.mm))
	copy(result, p.mm)
	return result, nil
}

// Addresses outside this window are never mapped in a user process
const (
	minUserAddress process.ProcessMemoryAddress = 0x10000
	maxUserAddress process.ProcessMemoryAddress = 0x700000000000
)

func outsideUserSpace(addr process.ProcessMemoryAddress) bool {
	return addr <= minUserAddress || addr > maxUserAddress
}

// isValidRange checks the cached map; the caller holds the lock
func (p *LinuxProcess) isValidRange(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) bool {
	if outsideUserSpace(addr) {
		return false
	}
	return memory_map.Contains(uint64(addr), uint(size), p.mm)
}
