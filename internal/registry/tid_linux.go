//go:build linux
// +build linux

// File: internal/registry/tid_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux thread identity: the kernel task id of the calling thread.

package registry

import "golang.org/x/sys/unix"

// threadID returns a stable identity for the calling OS thread.
func threadID() uint64 {
	return uint64(unix.Gettid())
}
