package slab

// defaultPoolCapacity is the maximum number of empty slabs a thread
// allocator's pool will hold idle before returning the excess to the page
// provider, absent an explicit InitOptions.PoolCapacity.
const defaultPoolCapacity = 20

// slabPool is a per-thread cache of up to capacity empty slabs. It balances
// memory held idle against the cost of repeated page-provider round trips
// during bursty allocation/free workloads.
type slabPool struct {
	provider PageProvider
	pageSize int
	capacity int
	slabs    []*slab

	hits   uint64 // demand served from the pool
	misses uint64 // demand that required a fresh page-provider slab
}

func newSlabPool(provider PageProvider, capacity int) *slabPool {
	if capacity <= 0 {
		capacity = defaultPoolCapacity
	}
	return &slabPool{
		provider: provider,
		pageSize: provider.PageSize(),
		capacity: capacity,
		slabs:    make([]*slab, 0, capacity),
	}
}

// get returns an empty slab, either recycled from the pool or freshly
// carved from the page provider.
func (p *slabPool) get() (*slab, error) {
	if n := len(p.slabs); n > 0 {
		s := p.slabs[n-1]
		p.slabs = p.slabs[:n-1]
		p.hits++
		return s, nil
	}

	p.misses++
	data, err := p.provider.Alloc(2 * p.pageSize)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return newSlab(data), nil
}

// put returns an empty slab to the pool, or to the page provider if the
// pool is already at capacity.
func (p *slabPool) put(s *slab) error {
	if len(p.slabs) < p.capacity {
		p.slabs = append(p.slabs, s)
		return nil
	}
	return p.provider.Free(s.data)
}

// drain returns every pooled slab to the page provider. Called from
// ThreadAllocator.Deinit.
func (p *slabPool) drain() error {
	var firstErr error
	for _, s := range p.slabs {
		if err := p.provider.Free(s.data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.slabs = p.slabs[:0]
	return firstErr
}

// seed pre-populates the pool with n fresh empty slabs obtained directly
// from the page provider, used by InitWith's initialSlabs option.
func (p *slabPool) seed(n int) error {
	for i := 0; i < n; i++ {
		data, err := p.provider.Alloc(2 * p.pageSize)
		if err != nil {
			return ErrOutOfMemory
		}
		if err := p.put(newSlab(data)); err != nil {
			return err
		}
	}
	return nil
}
