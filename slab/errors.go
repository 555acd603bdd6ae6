package slab

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned when the page provider cannot satisfy a
// request for a fresh slab or an external-size chunk. A resize that would
// need to cross size regimes in a direction that can't be served in place
// surfaces as this same error, leaving the original range valid, rather
// than a distinct error of its own.
var ErrOutOfMemory = errors.New("slab: out of memory")

// UsageError reports a fatal, unrecoverable misuse of the allocator: a
// cross-thread handle, an unattributed free with no lost-and-found support,
// or an internal invariant violation. Detecting one of these is always
// followed by a panic; UsageError is exported so tests can assert on it via
// recover, but production code should treat it as terminal.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return "slab: usage error: " + e.msg }

func fatalf(format string, args ...any) {
	err := &UsageError{msg: fmt.Sprintf(format, args...)}
	logger().Error(err.Error())
	panic(err)
}
