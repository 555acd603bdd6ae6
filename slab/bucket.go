package slab

// bucket owns the slabs for one size class within a single thread
// allocator. Slabs are searched in insertion order: no best-fit heuristic
// is needed because every chunk in a bucket is the same size, and
// preferring older slabs encourages the newest slabs to drain to empty and
// be returned to the pool.
type bucket struct {
	chunkSize int
	slabs     []*slab
	owner     *ThreadAllocator
	classIdx  int

	allocs   uint64
	frees    uint64
	grownBy  uint64 // slabs pulled from the pool/provider
	drainHit uint64 // chunks reclaimed from lost-and-found while freeing
}

func newBucket(chunkSize, classIdx int, owner *ThreadAllocator) *bucket {
	return &bucket{chunkSize: chunkSize, classIdx: classIdx, owner: owner}
}

// newChunk satisfies one allocation from this bucket, attaching a fresh
// slab from the thread's pool if no attached slab has room.
func (b *bucket) newChunk() ([]byte, error) {
	for _, s := range b.slabs {
		if chunk, ok := s.nextFreeChunk(); ok {
			b.allocs++
			return chunk, nil
		}
	}

	s, err := b.owner.pool.get()
	if err != nil {
		return nil, err
	}
	s.bindTo(b.chunkSize)
	b.slabs = append(b.slabs, s)
	b.grownBy++
	logger().Debug("slab attached", "class", b.chunkSize, "slabs", len(b.slabs))

	chunk, ok := s.nextFreeChunk()
	if !ok {
		// A freshly bound, empty slab must be able to serve one
		// allocation; this would indicate an internal invariant break.
		fatalf("freshly attached slab for class %d could not serve an allocation", b.chunkSize)
	}
	b.allocs++
	return chunk, nil
}

// freeChunk releases base into this bucket. remote indicates the call
// originated from the lost-and-found drain path rather than directly from
// a user Free call on this thread.
func (b *bucket) freeChunk(base []byte, remote bool) bool {
	if !remote {
		b.drainLostAndFound()
	}

	for i, s := range b.slabs {
		if !s.freeChunk(base) {
			continue
		}
		b.frees++
		if s.state == stateEmpty {
			b.slabs = append(b.slabs[:i], b.slabs[i+1:]...)
			if err := b.owner.pool.put(s); err != nil {
				logger().Warn("failed returning drained slab to pool", "error", err)
			}
		}
		return true
	}

	if !remote {
		b.owner.lostAndFound().deposit(b.classIdx, base)
	}
	return false
}

// drainLostAndFound opportunistically attempts to reclaim every chunk the
// global lost-and-found is holding for this bucket's size class. It never
// blocks: if the lock is held by another thread, the call proceeds without
// draining.
func (b *bucket) drainLostAndFound() {
	reclaimed := b.owner.lostAndFound().tryDrain(b.classIdx, func(base []byte) bool {
		return b.freeChunk(base, true)
	})
	b.drainHit += uint64(reclaimed)
}

// blockingDrain drains this bucket's size class with a blocking acquire, for
// use during thread-allocator teardown.
func (b *bucket) blockingDrain() {
	reclaimed := b.owner.lostAndFound().blockingDrain(b.classIdx, func(base []byte) bool {
		return b.freeChunk(base, true)
	})
	b.drainHit += uint64(reclaimed)
}

// releaseAll detaches and frees every slab still attached to this bucket,
// used during thread-allocator teardown after the final blocking drain.
func (b *bucket) releaseAll() error {
	var firstErr error
	for _, s := range b.slabs {
		if err := b.owner.pool.put(s); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	b.slabs = b.slabs[:0]
	return firstErr
}
