// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// once_test.go — exactly-once initialization across racing threads.
package threads

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCallOnceRacing(t *testing.T) {
	var flag OnceFlag
	var runs atomic.Int32
	var completed atomic.Bool
	var observedIncomplete atomic.Int32

	const nthreads = 8
	var ths [nthreads]*Thread
	for i := 0; i < nthreads; i++ {
		ths[i], _ = Create(func(any) {
			CallOnce(&flag, func() {
				time.Sleep(20 * time.Millisecond)
				runs.Add(1)
				completed.Store(true)
			})
			// Every caller must return only after the initializer
			// has finished.
			if !completed.Load() {
				observedIncomplete.Add(1)
			}
		}, nil)
	}

	done := make(chan struct{})
	go func() {
		for _, th := range ths {
			Join(th)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout: CallOnce callers never returned")
	}

	if runs.Load() != 1 {
		t.Errorf("initializer ran %d times, want 1", runs.Load())
	}
	if observedIncomplete.Load() != 0 {
		t.Errorf("%d callers returned before the initializer completed", observedIncomplete.Load())
	}
}

func TestCallOnceSequential(t *testing.T) {
	var flag OnceFlag
	runs := 0
	CallOnce(&flag, func() { runs++ })
	CallOnce(&flag, func() { runs++ })
	if runs != 1 {
		t.Errorf("initializer ran %d times, want 1", runs)
	}
}

func TestCallOnceNilArgs(t *testing.T) {
	var flag OnceFlag
	CallOnce(nil, func() { t.Error("initializer ran with nil flag") })
	CallOnce(&flag, nil)
	ran := false
	CallOnce(&flag, func() { ran = true })
	if !ran {
		t.Error("nil initializer consumed the once flag")
	}
}
