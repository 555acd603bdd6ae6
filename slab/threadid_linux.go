//go:build linux

package slab

import "golang.org/x/sys/unix"

// currentThreadID returns the kernel thread id of the calling OS thread.
// Callers must have already called runtime.LockOSThread so that the
// goroutine cannot be rescheduled onto a different thread between this call
// and its use as a registry key.
func currentThreadID() int64 {
	return int64(unix.Gettid())
}
