//go:build !linux

package slab

import (
	"runtime"
	"strconv"
)

// currentThreadID returns a stable identifier for the calling goroutine.
//
// golang.org/x/sys/unix.Gettid is Linux-only; there is no portable way to
// read the underlying OS thread id from pure Go on Darwin or Windows. Since
// callers are required to have pinned themselves with runtime.LockOSThread
// before this is consulted (see Init/InitWith), the running goroutine and
// its OS thread are in a fixed 1:1 relationship for as long as the
// registration lives, so the goroutine id read out of runtime.Stack serves
// as an equally valid registry key on these platforms.
func currentThreadID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// The first line looks like "goroutine 123 [running]:".
	line := buf[:n]
	const prefix = "goroutine "
	if len(line) <= len(prefix) {
		return 0
	}
	line = line[len(prefix):]
	end := 0
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		end++
	}
	id, _ := strconv.ParseInt(string(line[:end]), 10, 64)
	return id
}
