package slab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResizeLargeToSmallCrossesRegime is scenario S2: resizing an
// external (page-provider-backed) range down into bucket range reports a
// synthetic length of LargestAlloc+1 rather than relocating eagerly, and
// the returned range can still be freed.
func TestResizeLargeToSmallCrossesRegime(t *testing.T) {
	ta, err := Init()
	require.NoError(t, err)
	defer Deinit()

	r, err := ta.Alloc(10000)
	require.NoError(t, err)

	resized, err := ta.Resize(r, 1000)
	require.NoError(t, err)
	require.Equal(t, LargestAlloc+1, resized.Len())

	require.NoError(t, ta.Free(resized))
}

// TestResizeSmallToLargeCopiesContent is scenario S3: resizing a bucket
// range up past LargestAlloc preserves its content and leaves a fencing
// neighbor range untouched.
func TestResizeSmallToLargeCopiesContent(t *testing.T) {
	ta, err := Init()
	require.NoError(t, err)
	defer Deinit()

	first, err := ta.Alloc(1000)
	require.NoError(t, err)
	for i := range first.Bytes {
		first.Bytes[i] = 0x01
	}

	fence, err := ta.Alloc(1000)
	require.NoError(t, err)
	for i := range fence.Bytes {
		fence.Bytes[i] = 0x02
	}

	grown, err := ta.Resize(first, 10000)
	require.NoError(t, err)
	require.GreaterOrEqual(t, grown.Len(), 10000, "page provider may round up")
	for i := 0; i < 1000; i++ {
		require.Equal(t, byte(0x01), grown.Bytes[i])
	}
	for i := range fence.Bytes {
		require.Equal(t, byte(0x02), fence.Bytes[i])
	}

	require.NoError(t, ta.Free(grown))
	require.NoError(t, ta.Free(fence))
}

// TestResizeSameSlotPreservesPointer is scenario S5: resizing within the
// same size class never moves the data.
func TestResizeSameSlotPreservesPointer(t *testing.T) {
	ta, err := Init()
	require.NoError(t, err)
	defer Deinit()

	r, err := ta.Alloc(1)
	require.NoError(t, err)
	r.Bytes[0] = 0x12

	r, err = ta.Resize(r, 2)
	require.NoError(t, err)
	require.Equal(t, byte(0x12), r.Bytes[0])
	r.Bytes[1] = 0x34

	r, err = ta.Resize(r, 17)
	require.NoError(t, err)
	require.Equal(t, byte(0x12), r.Bytes[0])
	require.Equal(t, byte(0x34), r.Bytes[1])

	require.NoError(t, ta.Free(r))
}

// TestResizeShrinkWithinRegime is scenario S6: shrinking within the same
// bucket preserves every retained byte.
func TestResizeShrinkWithinRegime(t *testing.T) {
	ta, err := Init()
	require.NoError(t, err)
	defer Deinit()

	r, err := ta.Alloc(20)
	require.NoError(t, err)
	for i := range r.Bytes {
		r.Bytes[i] = 0x11
	}

	r, err = ta.Resize(r, 17)
	require.NoError(t, err)
	for _, b := range r.Bytes {
		require.Equal(t, byte(0x11), b)
	}

	r, err = ta.Resize(r, 16)
	require.NoError(t, err)
	for _, b := range r.Bytes {
		require.Equal(t, byte(0x11), b)
	}

	require.NoError(t, ta.Free(r))
}

func TestResizeToZeroFreesAndReturnsEmpty(t *testing.T) {
	ta, err := Init()
	require.NoError(t, err)
	defer Deinit()

	r, err := ta.Alloc(100)
	require.NoError(t, err)

	r, err = ta.Resize(r, 0)
	require.NoError(t, err)
	require.Equal(t, Empty, r)
}

func TestResizeFromZeroAllocates(t *testing.T) {
	ta, err := Init()
	require.NoError(t, err)
	defer Deinit()

	r, err := ta.Resize(Empty, 100)
	require.NoError(t, err)
	require.Equal(t, 100, r.Len())
	require.NoError(t, ta.Free(r))
}

func TestResizeLargeToLargeUsesProviderResize(t *testing.T) {
	ta, err := Init()
	require.NoError(t, err)
	defer Deinit()

	r, err := ta.Alloc(5000)
	require.NoError(t, err)
	for i := range r.Bytes[:100] {
		r.Bytes[i] = 0x55
	}

	r, err = ta.Resize(r, 9000)
	require.NoError(t, err)
	require.GreaterOrEqual(t, r.Len(), 9000, "page provider may round up")
	for i := 0; i < 100; i++ {
		require.Equal(t, byte(0x55), r.Bytes[i])
	}
	require.NoError(t, ta.Free(r))
}
