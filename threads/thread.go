// File: threads/thread.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread management: create, exit, join, detach, identity, yield, sleep.
// Each operation forwards to one native facility and remaps the outcome
// into a Status.

package threads

import (
	"runtime"
	"time"

	"github.com/momentics/nthreads/internal/registry"
)

// Thread is an opaque handle identifying one schedulable unit of
// execution. Handles compare by identity; use Equal.
type Thread = registry.Thread

// StartFn is a thread entry function.
type StartFn func(arg any)

// Create starts a new thread running fn(arg) on its own OS thread.
// The thread's exit code is 0 unless it calls Exit.
func Create(fn StartFn, arg any) (*Thread, Status) {
	if fn == nil {
		return nil, Error
	}
	t := registry.NewRecord()
	go func() {
		runtime.LockOSThread()
		registry.Bind(t)
		defer registry.Finalize(t)
		fn(arg)
	}()
	return t, Success
}

// Exit terminates the calling thread, passing res to any joiner. It never
// returns: deferred calls run, TLS destructors fire, then the thread ends.
// On a thread not created by this package the goroutine still terminates
// but no joiner can observe res.
func Exit(res int) {
	registry.SetResult(registry.Current(), res)
	runtime.Goexit()
}

// Join blocks until t terminates and returns its exit code. It fails with
// Error on a nil, detached, foreign, or already-joined handle.
func Join(t *Thread) (int, Status) {
	if t == nil {
		return 0, Error
	}
	if !registry.AcquireJoin(t) {
		return 0, Error
	}
	registry.Wait(t)
	return registry.Result(t), Success
}

// Detach releases t's join-ability. A subsequent Join on t fails.
func Detach(t *Thread) Status {
	if t == nil || !registry.Detach(t) {
		return Error
	}
	return Success
}

// Current returns the handle of the calling thread.
func Current() *Thread {
	return registry.Current()
}

// Equal reports whether two handles refer to the same thread.
func Equal(a, b *Thread) bool {
	return a == b
}

// Yield relinquishes the remainder of the calling thread's scheduling slot.
func Yield() {
	runtime.Gosched()
}

// Sleep suspends the calling thread for at least d.
func Sleep(d time.Duration) Status {
	if d < 0 {
		return Error
	}
	time.Sleep(d)
	return Success
}
