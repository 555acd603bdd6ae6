package slab

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitIsIdempotentPerThread(t *testing.T) {
	ta1, err := Init()
	require.NoError(t, err)
	defer Deinit()

	ta2, err := Init()
	require.NoError(t, err)
	require.Same(t, ta1, ta2)
}

func TestAllocZeroLengthReturnsEmpty(t *testing.T) {
	ta, err := Init()
	require.NoError(t, err)
	defer Deinit()

	r, err := ta.Alloc(0)
	require.NoError(t, err)
	require.Equal(t, Empty, r)
}

// TestBucketFillAndDrain is scenario S1: allocate 50 ranges of length 2000
// in order, free them in allocation order, and expect no slab left attached
// to the 2048 bucket afterward.
func TestBucketFillAndDrain(t *testing.T) {
	ta, err := Init()
	require.NoError(t, err)
	defer Deinit()

	idx := classIndexFor(2000)
	require.Equal(t, 5, idx)

	var ranges []Range
	for i := 0; i < 50; i++ {
		r, err := ta.Alloc(2000)
		require.NoError(t, err)
		ranges = append(ranges, r)
	}
	for _, r := range ranges {
		require.NoError(t, ta.Free(r))
	}
	require.Len(t, ta.buckets[idx].slabs, 0)
}

// TestCrossThreadFree is scenario S4: a range allocated on one thread is
// freed from another, and both threads tear down cleanly afterward.
func TestCrossThreadFree(t *testing.T) {
	var wg sync.WaitGroup
	allocated := make(chan Range, 1)
	freedOnB := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		ta, err := Init()
		require.NoError(t, err)
		rA, allocErr := ta.Alloc(1000)
		require.NoError(t, allocErr)
		allocated <- rA

		<-freedOnB

		r2, err := ta.Alloc(1000)
		require.NoError(t, err)
		require.NoError(t, ta.Free(r2))
		Deinit()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		tb, err := Init()
		require.NoError(t, err)

		rA := <-allocated
		require.NoError(t, tb.Free(rA))
		close(freedOnB)
		Deinit()
	}()

	wg.Wait()
}

// TestUsageErrorOnCrossThreadHandle exercises the checkOwner guard directly:
// using a ThreadAllocator from a goroutine other than the one that created
// it must panic with a *UsageError.
func TestUsageErrorOnCrossThreadHandle(t *testing.T) {
	ta := newTestAllocator(t)
	ta.ownerTID = ta.ownerTID + 1 // simulate a different owning thread

	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(*UsageError)
		require.True(t, ok, "expected *UsageError, got %T", r)
	}()
	ta.checkOwner()
}
