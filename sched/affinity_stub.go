//go:build !linux && !windows
// +build !linux,!windows

// File: sched/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for platforms without thread affinity control.

package sched

import "github.com/momentics/nthreads/api"

func pinPlatform(cpuID int) error {
	return api.ErrNotSupported
}

func unpinPlatform() error {
	return api.ErrNotSupported
}
