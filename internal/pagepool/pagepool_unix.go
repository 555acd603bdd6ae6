//go:build linux || darwin || freebsd

package pagepool

import "golang.org/x/sys/unix"

func pageSize() int {
	return unix.Getpagesize()
}

func allocPages(n int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func freePages(b []byte) error {
	return unix.Munmap(b)
}

