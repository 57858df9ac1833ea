//go:build windows
// +build windows

// File: sched/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific implementation for setting thread CPU affinity.

package sched

import (
	"runtime"

	"golang.org/x/sys/windows"

	"github.com/momentics/nthreads/api"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

// pinPlatform sets the calling thread's affinity to a single CPU.
func pinPlatform(cpuID int) error {
	if cpuID < 0 || cpuID >= runtime.NumCPU() {
		return api.NewError(api.ErrCodeInvalidArgument, "cpu id out of range").
			WithContext("cpu", cpuID)
	}
	return setMask(uintptr(1) << uint(cpuID))
}

// unpinPlatform restores affinity to every online CPU.
func unpinPlatform() error {
	return setMask(uintptr(1)<<uint(runtime.NumCPU()) - 1)
}

func setMask(mask uintptr) error {
	ret, _, err := procSetThreadAffinityMask.Call(
		uintptr(windows.CurrentThread()), mask)
	if ret == 0 {
		return err
	}
	return nil
}
