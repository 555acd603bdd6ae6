// Package slab provides a general-purpose allocator optimized for fast
// allocation and release of small objects in multi-threaded programs.
//
// # Overview
//
// The allocator is organized in four layers, leaves first:
//
//   - Slab: a fixed-size byte region (two pages) sliced into equally sized
//     chunks, with a small metadata array tracking which chunks are in use.
//   - Bucket: owns an ordered collection of slabs for one size class.
//   - ThreadAllocator: one per OS thread, owns six buckets for the size
//     classes {64, 128, 256, 512, 1024, 2048}, a slab pool, and a
//     back-reference to a page provider.
//   - Lost-and-found: a process-wide structure holding one lock-protected
//     list per size class of chunks freed on a thread other than the one
//     that allocated them.
//
// # Usage
//
//	ta, err := slab.Init()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer slab.Deinit()
//
//	r, err := ta.Alloc(100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ta.Free(r)
//
// # Thread affinity
//
// Go exposes no public thread-local storage, so "thread" here means an OS
// thread the calling goroutine has pinned itself to via Init/InitWith (which
// call runtime.LockOSThread internally). A ThreadAllocator obtained this way
// must not be used from a different goroutine unless that goroutine is
// pinned to the same OS thread; doing so is a usage error and panics. Frees
// of chunks allocated on a different thread are always safe and go through
// the lost-and-found hand-off described in freeChunk.
//
// # Size classes
//
// Requests are rounded up to the smallest of {64, 128, 256, 512, 1024, 2048}
// bytes (LargestAlloc). Requests above LargestAlloc bypass the allocator
// entirely and are forwarded to the configured PageProvider.
package slab
