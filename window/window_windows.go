//go:build windows

package window

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	moduser32         = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW   = moduser32.NewProc("FindWindowW")
	procGetWindowRect = moduser32.NewProc("GetWindowRect")
)

type win32Rect struct {
	Left, Top, Right, Bottom int32
}

type user32Finder struct{}

// New returns the user32 backed Finder
func New() Finder {
	return user32Finder{}
}

func (user32Finder) Find(title string) (Rect, bool) {
	name, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return Rect{}, false
	}

	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(name)))
	if hwnd == 0 {
		return Rect{}, false
	}

	var rc win32Rect
	ok, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	if ok == 0 {
		return Rect{}, false
	}

	return Rect{Left: rc.Left, Top: rc.Top, Right: rc.Right, Bottom: rc.Bottom}, true
}
