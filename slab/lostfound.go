package slab

import (
	"sync"
	"sync/atomic"
)

// lostFoundList is one size class's process-wide list of chunks freed on a
// thread other than the one that allocated them, plus the spinlock
// protecting it.
type lostFoundList struct {
	lock  spinlock
	items [][]byte
}

// lostAndFoundState is the process-wide singleton described in spec §3 and
// §4.4. It is created by the first ThreadAllocator to start up and torn
// down when the last one exits.
type lostAndFoundState struct {
	lists [numSizeClasses]lostFoundList
	refs  atomic.Int64
}

var (
	lfMu    sync.Mutex
	lfState *lostAndFoundState
)

// acquireLostAndFound returns the process-wide singleton, creating it if
// this is the first live thread allocator, and bumps its reference count.
func acquireLostAndFound() *lostAndFoundState {
	lfMu.Lock()
	defer lfMu.Unlock()

	if lfState == nil {
		lfState = &lostAndFoundState{}
		logger().Debug("lost-and-found initialized")
	}
	lfState.refs.Add(1)
	return lfState
}

// releaseLostAndFound decrements the reference count and tears the
// singleton down once the last thread allocator has exited. Every list must
// be empty at that point — a non-empty list would mean some thread's
// teardown failed to drain before this call, which is an internal
// invariant violation.
func releaseLostAndFound(s *lostAndFoundState) {
	if s.refs.Add(-1) != 0 {
		return
	}

	lfMu.Lock()
	defer lfMu.Unlock()

	for i := range s.lists {
		if len(s.lists[i].items) != 0 {
			fatalf("lost-and-found class %d non-empty at teardown (%d items)", i, len(s.lists[i].items))
		}
	}
	if lfState == s {
		lfState = nil
	}
	logger().Debug("lost-and-found torn down")
}

// deposit appends base to classIdx's list. This is a blocking acquire: the
// caller has already logically transferred ownership of the chunk and
// cannot take it back, so there is no failure path here short of a fatal
// error.
func (s *lostAndFoundState) deposit(classIdx int, base []byte) {
	l := &s.lists[classIdx]
	l.lock.acquire()
	l.items = append(l.items, base)
	l.lock.release()
	atomicDeposits.Add(1)
}

// tryDrain makes a single non-blocking attempt to reclaim every chunk
// currently listed for classIdx. claim is called once per listed chunk and
// should return true if it was reclaimed (in which case it is removed from
// the list). If the lock cannot be taken immediately, tryDrain returns 0
// without blocking.
func (s *lostAndFoundState) tryDrain(classIdx int, claim func(base []byte) bool) int {
	l := &s.lists[classIdx]
	if !l.lock.tryAcquire() {
		return 0
	}
	defer l.lock.release()
	return drainLocked(l, claim)
}

// blockingDrain is tryDrain's blocking counterpart, used during thread
// allocator teardown where a listed chunk must never outlive the slabs it
// references.
func (s *lostAndFoundState) blockingDrain(classIdx int, claim func(base []byte) bool) int {
	l := &s.lists[classIdx]
	l.lock.acquire()
	defer l.lock.release()
	return drainLocked(l, claim)
}

// drainLocked removes every item claim accepts, in place, and reports how
// many were reclaimed. The caller must hold l.lock.
func drainLocked(l *lostFoundList, claim func(base []byte) bool) int {
	if len(l.items) == 0 {
		return 0
	}
	kept := l.items[:0]
	reclaimed := 0
	for _, item := range l.items {
		if claim(item) {
			reclaimed++
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
	if reclaimed > 0 {
		atomicReclaims.Add(int64(reclaimed))
	}
	return reclaimed
}

// atomicDeposits and atomicReclaims back Stats' process-wide counters.
var (
	atomicDeposits atomic.Int64
	atomicReclaims atomic.Int64
)
