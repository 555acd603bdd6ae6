package slab

// PageProvider is the external collaborator that serves the core's demand
// for raw slab-sized blocks and for requests larger than LargestAlloc. The
// default, used when none is supplied to InitWith, is backed by the host's
// virtual memory calls (see internal/pagepool).
type PageProvider interface {
	// Alloc returns an owned byte range of at least length bytes, suitably
	// aligned for any basic type.
	Alloc(length int) ([]byte, error)

	// Free releases a previously obtained range. The slice passed in must
	// be exactly one previously returned by Alloc or Resize.
	Free(b []byte) error

	// Resize expands or shrinks a range in place when possible; otherwise
	// it is equivalent to alloc-copy-free. The slice passed in must be
	// exactly one previously returned by Alloc or Resize.
	Resize(b []byte, newLength int) ([]byte, error)

	// PageSize reports the provider's allocation granularity in bytes. A
	// slab's data region is always exactly two pages.
	PageSize() int
}
