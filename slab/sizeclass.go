package slab

// sizeClasses is the fixed, compile-time ordered list of chunk sizes the
// allocator serves. LargestAlloc equals the last entry.
var sizeClasses = [numSizeClasses]int{64, 128, 256, 512, 1024, 2048}

const numSizeClasses = 6

// LargestAlloc is the largest request size served by a bucket. Requests
// above this size bypass the core and are forwarded to the page provider.
const LargestAlloc = 2048

// smallestClass is the size of the smallest bucket; it is also the maximum
// alignment the core can guarantee on its own (see spec §9 Open Questions).
const smallestClass = 64

// classIndexFor returns the index into sizeClasses for the smallest class
// that is >= length. The caller must ensure 0 < length <= LargestAlloc.
func classIndexFor(length int) int {
	for i, sz := range sizeClasses {
		if length <= sz {
			return i
		}
	}
	// Unreachable given the caller contract, but fail safe toward the
	// largest class rather than index out of range.
	return numSizeClasses - 1
}
