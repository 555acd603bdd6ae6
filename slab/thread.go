package slab

import (
	"runtime"
	"sync"
)

// ThreadAllocator is the per-thread allocator instance described in spec
// §3/§4.3: six buckets, a slab pool, and a back-reference to a page
// provider. Exactly one instance exists per OS thread for the lifetime of
// that thread's registration (see Init/InitWith/Deinit).
//
// A ThreadAllocator must only be used from the goroutine that created it,
// pinned to the same OS thread via runtime.LockOSThread. Passing the
// pointer to another goroutine and calling a method from there is a usage
// error and panics — see ownerTID below.
type ThreadAllocator struct {
	buckets  [numSizeClasses]*bucket
	pool     *slabPool
	lf       *lostAndFoundState
	ownerTID int64

	stats threadStats
}

type threadStats struct {
	allocs      [numSizeClasses]uint64
	frees       [numSizeClasses]uint64
	largeAllocs uint64
	largeFrees  uint64
	oom         uint64
}

// InitOptions configures a ThreadAllocator constructed via InitWith.
type InitOptions struct {
	// Provider is the page provider backing this allocator. If nil, the
	// host's default virtual-memory-backed provider is used.
	Provider PageProvider

	// InitialSlabs pre-seeds the slab pool with this many empty slabs,
	// obtained eagerly from Provider, before any allocation is served.
	InitialSlabs int

	// PoolCapacity bounds how many empty slabs the pool holds idle before
	// returning the excess to Provider. Defaults to 20 when zero.
	PoolCapacity int
}

// Init constructs (or returns) the calling thread's allocator, using the
// default page provider. It is idempotent per thread: a second call from
// the same thread returns the existing instance.
func Init() (*ThreadAllocator, error) {
	return InitWith(InitOptions{})
}

// InitWith is Init with explicit control over the page provider and pool
// pre-seeding. The first call on a thread constructs the instance; later
// calls on the same thread return it unchanged, ignoring opts.
func InitWith(opts InitOptions) (*ThreadAllocator, error) {
	tid := currentThreadID()
	if existing := registryLookup(tid); existing != nil {
		return existing, nil
	}

	// Only the construction path below pins the thread: LockOSThread and
	// UnlockOSThread (in Deinit) must balance 1:1. The runtime reference-
	// counts them, so locking here on every call — including the
	// idempotent early return above — would leak a lock per extra call.
	runtime.LockOSThread()

	provider := opts.Provider
	if provider == nil {
		provider = defaultProvider()
	}

	ta := &ThreadAllocator{
		pool:     newSlabPool(provider, opts.PoolCapacity),
		lf:       acquireLostAndFound(),
		ownerTID: tid,
	}
	for i, sz := range sizeClasses {
		ta.buckets[i] = newBucket(sz, i, ta)
	}

	if opts.InitialSlabs > 0 {
		if err := ta.pool.seed(opts.InitialSlabs); err != nil {
			releaseLostAndFound(ta.lf)
			runtime.UnlockOSThread()
			return nil, err
		}
	}

	registryStore(tid, ta)
	logger().Debug("thread allocator initialized", "tid", tid)
	return ta, nil
}

// Deinit tears down the calling thread's allocator: buckets first drain the
// lost-and-found lists for their size classes (blocking), then release
// their slabs; the pool drains to the page provider; finally the
// lost-and-found reference count is decremented.
func Deinit() {
	tid := currentThreadID()
	ta := registryLookup(tid)
	if ta == nil {
		return
	}
	ta.deinit()
	registryDelete(tid)
	runtime.UnlockOSThread()
}

func (ta *ThreadAllocator) deinit() {
	for _, b := range ta.buckets {
		b.blockingDrain()
		if err := b.releaseAll(); err != nil {
			logger().Warn("error releasing bucket slabs", "error", err)
		}
	}
	if err := ta.pool.drain(); err != nil {
		logger().Warn("error draining slab pool", "error", err)
	}
	releaseLostAndFound(ta.lf)
	logger().Debug("thread allocator torn down", "tid", ta.ownerTID)
}

// checkOwner panics with a UsageError if the calling thread is not the one
// that owns ta. This is the runtime check spec §4.3/§5 requires: a
// ThreadAllocator handle must never be used from a thread other than the
// one the registry still maps to it.
func (ta *ThreadAllocator) checkOwner() {
	if tid := currentThreadID(); tid != ta.ownerTID {
		fatalf("thread allocator owned by thread %d used from thread %d", ta.ownerTID, tid)
	}
}

func (ta *ThreadAllocator) lostAndFound() *lostAndFoundState { return ta.lf }

// --- process-wide thread registry ---

var (
	registryMu sync.RWMutex
	registry   = map[int64]*ThreadAllocator{}
)

func registryLookup(tid int64) *ThreadAllocator {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[tid]
}

func registryStore(tid int64, ta *ThreadAllocator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[tid] = ta
}

func registryDelete(tid int64) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, tid)
}
