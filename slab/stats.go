package slab

// ClassStats reports counters for one size class within a single thread
// allocator.
type ClassStats struct {
	Size    int
	Allocs  uint64
	Frees   uint64
	Slabs   int    // slabs currently attached to this bucket
	PoolHit uint64 // times this bucket pulled a slab from the pool/provider
	Drained uint64 // chunks reclaimed from lost-and-found while freeing
}

// Stats is a snapshot of one thread allocator's counters, plus the
// process-wide lost-and-found counters (which are shared across every
// thread allocator).
type Stats struct {
	PerClass          []ClassStats
	LargeAllocs       uint64
	LargeFrees        uint64
	OutOfMemory       uint64
	PoolHits          uint64
	PoolMisses        uint64
	LostFoundDeposits uint64
	LostFoundReclaims uint64
}
