// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// sched_test.go — yield and affinity round-trips.
package sched

import (
	"errors"
	"runtime"
	"testing"

	"github.com/momentics/nthreads/api"
)

func TestYield(t *testing.T) {
	// Must not block or panic.
	Yield()
}

func TestPinUnpin(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	err := Pin(0)
	if errors.Is(err, api.ErrNotSupported) {
		t.Skip("affinity not supported on this platform")
	}
	if err != nil {
		t.Fatalf("Pin(0): %v", err)
	}
	if err := Unpin(); err != nil {
		t.Fatalf("Unpin: %v", err)
	}
}

func TestPinOutOfRange(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := Pin(-1); err == nil {
		t.Error("Pin(-1) succeeded, want error")
	}
	if err := Pin(runtime.NumCPU() + 64); err == nil {
		t.Error("Pin(out of range) succeeded, want error")
	}
}
