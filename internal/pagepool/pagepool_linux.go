//go:build linux

package pagepool

import "golang.org/x/sys/unix"

// resizePages uses mremap(2), which can grow or shrink a mapping in place
// (or relocate it, with MREMAP_MAYMOVE) without a copy through user space.
func resizePages(b []byte, newLen int) ([]byte, error) {
	return unix.Mremap(b, newLen, unix.MREMAP_MAYMOVE)
}
