//go:build windows

package process_windows

import (
	"errors"
	"fmt"
	"sync"

	"stattracker/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/windows"
)

const (
	accessRights = windows.PROCESS_VM_READ | windows.PROCESS_QUERY_LIMITED_INFORMATION

	// stillActive is the exit code GetExitCodeProcess reports for a running process
	stillActive = 259
)

// WindowsProcess implements the process.Process interface for Windows systems
type WindowsProcess struct {
	pid    process.ProcessID
	handle windows.Handle
	log    *logger.Logger
	mu     sync.Mutex
}

var _ process.Process = (*WindowsProcess)(nil)

// New creates a new WindowsProcess instance
func New() *WindowsProcess {
	return &WindowsProcess{
		log: logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open")),
	}
}

// NewWithPID creates a new WindowsProcess instance and opens it with the given PID
func NewWithPID(pid process.ProcessID) (process.Process, error) {
	p := New()
	if err := p.Open(pid); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *WindowsProcess) Open(pid process.ProcessID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	handle, err := windows.OpenProcess(accessRights, false, uint32(pid))
	if err != nil {
		if errors.Is(err, windows.ERROR_INVALID_PARAMETER) {
			return fmt.Errorf("OpenProcess %d: %w", pid, process.ErrProcessGone)
		}
		return fmt.Errorf("OpenProcess %d failed: %w", pid, err)
	}

	p.pid = pid
	p.handle = handle
	p.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid)))

	p.log.Infoln("Process opened")
	return nil
}

func (p *WindowsProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == 0 {
		return nil
	}

	err := windows.CloseHandle(p.handle)
	p.handle = 0
	p.pid = 0

	p.log.Infoln("Process closed")
	p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))

	if err != nil {
		return fmt.Errorf("CloseHandle failed: %w", err)
	}
	return nil
}

func (p *WindowsProcess) GetPID() process.ProcessID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pid
}

// exited reports whether the process behind handle has terminated
func exited(handle windows.Handle) bool {
	var code uint32
	if err := windows.GetExitCodeProcess(handle, &code); err != nil {
		return true
	}
	return code != stillActive
}

func (p *WindowsProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	p.mu.Lock()
	handle := p.handle
	p.mu.Unlock()

	if handle == 0 {
		return nil, process.ErrProcessNotOpen
	}

	buf := make([]byte, size)
	var bytesRead uintptr
	err := windows.ReadProcessMemory(handle, uintptr(addr), &buf[0], uintptr(size), &bytesRead)
	if err != nil {
		switch {
		case errors.Is(err, windows.ERROR_INVALID_HANDLE), exited(handle):
			return nil, fmt.Errorf("ReadProcessMemory at %s: %w", addr, process.ErrProcessGone)
		case errors.Is(err, windows.ERROR_PARTIAL_COPY):
			return nil, fmt.Errorf("ReadProcessMemory at %s: %w", addr, process.ErrAddressNotMapped)
		}
		return nil, fmt.Errorf("ReadProcessMemory at %s failed: %w", addr, err)
	}

	if bytesRead != uintptr(size) {
		return nil, fmt.Errorf("ReadProcessMemory at %s: %d of %d bytes: %w", addr, bytesRead, size, process.ErrShortRead)
	}

	return buf, nil
}
