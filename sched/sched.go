// File: sched/sched.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for voluntary yielding and CPU affinity of the
// calling thread. Platform-specific implementations live in separate
// files (affinity_linux.go, affinity_windows.go, etc.) guarded by build
// tags.

package sched

import "runtime"

// Yield voluntarily relinquishes the remainder of the calling thread's
// scheduling slot.
func Yield() {
	runtime.Gosched()
}

// Pin pins the calling OS thread to the given logical CPU on supported
// platforms. On unsupported platforms it returns an error. The caller
// should be locked to its OS thread for the pin to be meaningful; threads
// created by the threads package always are.
func Pin(cpuID int) error {
	return pinPlatform(cpuID)
}

// Unpin restores the calling OS thread's affinity to all logical CPUs.
func Unpin() error {
	return unpinPlatform()
}
