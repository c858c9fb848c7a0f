//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"stattracker/process"

	"golang.org/x/sys/unix"
)

// process_vm_readv uses the process_vm_readv syscall to read memory from another process
func process_vm_readv(
	pid process.ProcessID,
	remoteAddr process.ProcessMemoryAddress,
	bytesToRead process.ProcessMemorySize,
) ([]byte, error) {
	if bytesToRead == 0 {
		return []byte{}, nil
	}

	localBuf := make([]byte, bytesToRead)

	localIov := unix.Iovec{
		Base: &localBuf[0],
		Len:  uint64(bytesToRead),
	}

	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  int(bytesToRead),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_READV,
		uintptr(pid),                        // Remote process PID
		uintptr(unsafe.Pointer(&localIov)),  // Local iovec
		uintptr(1),                          // Number of local iovecs
		uintptr(unsafe.Pointer(&remoteIov)), // Remote iovec
		uintptr(1),                          // Number of remote iovecs
		uintptr(0),                          // Flags (reserved for future use)
	)

	switch errno {
	case 0:
	case unix.ESRCH:
		return nil, fmt.Errorf("process_vm_readv: %w", process.ErrProcessGone)
	case unix.EFAULT:
		return nil, fmt.Errorf("process_vm_readv at %s: %w", remoteAddr, process.ErrAddressNotMapped)
	default:
		return nil, fmt.Errorf("process_vm_readv failed: %s (errno: %d)", errno.Error(), errno)
	}

	if int(n) != int(bytesToRead) {
		return nil, fmt.Errorf("process_vm_readv: %d of %d bytes: %w", n, bytesToRead, process.ErrShortRead)
	}

	return localBuf, nil
}

// ReadMemory reads memory from the process at the specified address.
// A range outside the cached map triggers one map refresh before failing,
// since the game allocates its level data after the process was opened.
// Addresses outside user space, such as a null pointer plus an offset, fail
// without a refresh.
func (p *LinuxProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	p.mu.Lock()
	pid := p.pid
	valid := pid != 0 && p.isValidRange(addr, size)
	p.mu.Unlock()

	if pid == 0 {
		return nil, process.ErrProcessNotOpen
	}

	if outsideUserSpace(addr) {
		return nil, fmt.Errorf("read %s at %s: %w", size, addr, process.ErrAddressNotMapped)
	}

	if !valid {
		if err := p.UpdateMemoryMap(); err != nil {
			return nil, err
		}
		p.mu.Lock()
		valid = p.isValidRange(addr, size)
		p.mu.Unlock()
		if !valid {
			return nil, fmt.Errorf("read %s at %s: %w", size, addr, process.ErrAddressNotMapped)
		}
	}

	return process_vm_readv(pid, addr, size)
}
