package slab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSlab(t *testing.T, chunkSize int) *slab {
	t.Helper()
	data := make([]byte, 2*4096)
	s := newSlab(data)
	s.bindTo(chunkSize)
	return s
}

func TestSlabAllocFillsToFull(t *testing.T) {
	s := newTestSlab(t, 64)
	require.Equal(t, stateEmpty, s.state)

	var chunks [][]byte
	for i := 0; i < s.maxChunks; i++ {
		chunk, ok := s.nextFreeChunk()
		require.True(t, ok, "chunk %d", i)
		chunks = append(chunks, chunk)
	}
	require.Equal(t, stateFull, s.state)

	_, ok := s.nextFreeChunk()
	require.False(t, ok, "full slab must refuse further allocation")

	require.Len(t, chunks, s.maxChunks)
}

func TestSlabChunksAreZeroed(t *testing.T) {
	s := newTestSlab(t, 64)
	chunk, ok := s.nextFreeChunk()
	require.True(t, ok)
	for _, b := range chunk {
		require.Zero(t, b)
	}
}

func TestSlabFreeChunkRoundTrip(t *testing.T) {
	s := newTestSlab(t, 64)
	chunk, ok := s.nextFreeChunk()
	require.True(t, ok)
	require.Equal(t, statePartial, s.state)

	require.True(t, s.freeChunk(chunk))
	require.Equal(t, stateEmpty, s.state)
}

func TestSlabFreeChunkOutsideRangeRejected(t *testing.T) {
	s := newTestSlab(t, 64)
	foreign := make([]byte, 64)
	require.False(t, s.freeChunk(foreign))
}

func TestSlabOwns(t *testing.T) {
	s := newTestSlab(t, 64)
	chunk, ok := s.nextFreeChunk()
	require.True(t, ok)
	require.True(t, s.owns(chunk))

	foreign := make([]byte, 64)
	require.False(t, s.owns(foreign))
}

func TestSlabBindToResetsMetadata(t *testing.T) {
	s := newTestSlab(t, 64)
	_, ok := s.nextFreeChunk()
	require.True(t, ok)

	s.bindTo(128)
	require.Equal(t, stateEmpty, s.state)
	require.Equal(t, s.maxChunks, s.chunksLeft)
	for _, m := range s.meta[:s.maxChunks] {
		require.Zero(t, m)
	}
}
