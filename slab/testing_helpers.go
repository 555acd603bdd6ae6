package slab

import "fmt"

// fakeProvider is an in-process PageProvider used by tests: it never talks
// to the OS, tracks every live allocation so tests can assert on provider
// traffic, and can be told to fail the next Alloc to exercise the
// out-of-memory paths.
type fakeProvider struct {
	pageSize int
	live     map[*byte]int // base pointer -> length, for leak detection
	allocs   int
	frees    int
	failNext bool
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{pageSize: 4096, live: map[*byte]int{}}
}

func (p *fakeProvider) Alloc(length int) ([]byte, error) {
	if p.failNext {
		p.failNext = false
		return nil, fmt.Errorf("fakeProvider: forced failure")
	}
	b := make([]byte, length)
	p.live[&b[0]] = length
	p.allocs++
	return b, nil
}

func (p *fakeProvider) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, ok := p.live[&b[0]]; !ok {
		return fmt.Errorf("fakeProvider: double free or unknown range")
	}
	delete(p.live, &b[0])
	p.frees++
	return nil
}

func (p *fakeProvider) Resize(b []byte, newLength int) ([]byte, error) {
	if len(b) > 0 {
		if _, ok := p.live[&b[0]]; !ok {
			return nil, fmt.Errorf("fakeProvider: resize of unknown range")
		}
		delete(p.live, &b[0])
	}
	nb := make([]byte, newLength)
	n := len(b)
	if n > newLength {
		n = newLength
	}
	copy(nb, b[:n])
	p.live[&nb[0]] = newLength
	return nb, nil
}

func (p *fakeProvider) PageSize() int { return p.pageSize }
