//go:build darwin || freebsd

package pagepool

// Darwin and FreeBSD have no mremap(2); resizing means allocating a fresh
// mapping, copying the overlap, and freeing the old one.
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
