package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassIndexFor(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{1, 0},
		{64, 0},
		{65, 1},
		{128, 1},
		{129, 2},
		{256, 2},
		{512, 3},
		{1024, 4},
		{2048, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classIndexFor(tt.length), "length=%d", tt.length)
	}
}

func TestLargestAllocMatchesTopClass(t *testing.T) {
	assert.Equal(t, sizeClasses[numSizeClasses-1], LargestAlloc)
}
