//go:build !linux && !windows
// +build !linux,!windows

// File: internal/registry/tid_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback thread identity for platforms without a cheap OS thread id:
// the goroutine id from the runtime stack header. Identity then follows
// the goroutine rather than the OS thread, which is equivalent for
// threads created by this library since they never migrate off their
// locked thread.

package registry

import (
	"runtime"
	"strconv"
	"strings"
)

// threadID returns a stable identity for the calling thread.
func threadID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	id, _ := strconv.ParseUint(s, 10, 64)
	return id
}
