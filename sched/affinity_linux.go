//go:build linux
// +build linux

// File: sched/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific implementation for setting thread CPU affinity.

package sched

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/momentics/nthreads/api"
)

// pinPlatform sets the calling thread's affinity to a single CPU.
func pinPlatform(cpuID int) error {
	if cpuID < 0 || cpuID >= runtime.NumCPU() {
		return api.NewError(api.ErrCodeInvalidArgument, "cpu id out of range").
			WithContext("cpu", cpuID)
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("sched: sched_setaffinity failed: %w", err)
	}
	return nil
}

// unpinPlatform restores affinity to every online CPU.
func unpinPlatform() error {
	var set unix.CPUSet
	set.Zero()
	for i := 0; i < runtime.NumCPU(); i++ {
		set.Set(i)
	}
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("sched: sched_setaffinity failed: %w", err)
	}
	return nil
}
