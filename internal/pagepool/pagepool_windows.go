//go:build windows

package pagepool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func pageSize() int {
	var info windows.SystemInfo
	windows.GetSystemInfo(&info)
	return int(info.PageSize)
}

func allocPages(n int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(n), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil
}

func freePages(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&b[0])), 0, windows.MEM_RELEASE)
}

// resizePages has no in-place counterpart on Windows; VirtualAlloc cannot
// extend an existing reservation in general, so resizing allocates fresh and
// copies the overlap.
func resizePages(b []byte, newLen int) ([]byte, error) {
	nb, err := allocPages(newLen)
	if err != nil {
		return nil, err
	}
	n := len(b)
	if n > newLen {
		n = newLen
	}
	copy(nb, b[:n])
	_ = freePages(b)
	return nb, nil
}
