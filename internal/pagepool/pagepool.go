// Package pagepool implements slab.PageProvider on top of the host's raw
// virtual memory facilities, the way the teacher's hive/dirty package wraps
// msync/FlushViewOfFile behind a single cross-platform function set: a
// common file carries the exported type and any platform-independent
// logic, and a build-tagged file per OS family carries the syscalls.
package pagepool

import "fmt"

// Pool allocates, frees, and resizes page-aligned regions of anonymous
// virtual memory. The zero value is ready to use.
type Pool struct{}

// New returns a Pool backed by the host's virtual memory system.
func New() *Pool { return &Pool{} }

// Alloc reserves a region of at least length bytes, rounded up to a whole
// number of pages.
func (p *Pool) Alloc(length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("pagepool: invalid length %d", length)
	}
	return allocPages(roundUpToPage(length))
}

// Free releases a region previously returned by Alloc or Resize.
func (p *Pool) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return freePages(b)
}

// Resize grows or shrinks a region in place where the host supports it,
// falling back to allocate+copy+free otherwise.
func (p *Pool) Resize(b []byte, newLength int) ([]byte, error) {
	if newLength <= 0 {
		return nil, fmt.Errorf("pagepool: invalid length %d", newLength)
	}
	return resizePages(b, roundUpToPage(newLength))
}

// PageSize returns the host's native page size in bytes.
func (p *Pool) PageSize() int {
	return pageSize()
}

func roundUpToPage(n int) int {
	ps := pageSize()
	return (n + ps - 1) / ps * ps
}
