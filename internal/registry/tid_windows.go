//go:build windows
// +build windows

// File: internal/registry/tid_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows thread identity via GetCurrentThreadId.

package registry

import "golang.org/x/sys/windows"

// threadID returns a stable identity for the calling OS thread.
func threadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
