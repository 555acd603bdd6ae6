package slab

import "github.com/slabkit/slabkit/internal/pagepool"

// defaultProvider returns the host virtual-memory-backed PageProvider used
// when InitOptions.Provider is left nil.
func defaultProvider() PageProvider {
	return pagepool.New()
}
