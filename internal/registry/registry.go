// File: internal/registry/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bookkeeping for thread handles. Records are keyed by the identity of the
// calling OS thread; threads created by this library run goroutines locked
// to their own OS thread, so the key is stable for the record's lifetime.
// The registry holds no synchronization state of its own beyond the map
// guard: blocking, mutual exclusion and wakeup are delegated to the native
// primitives wrapped by the threads package.

package registry

import (
	"sync"
	"sync/atomic"
)

// Join-ability states of a thread record.
const (
	stateJoinable int32 = iota
	stateJoined
	stateDetached
)

// Thread is one thread record. The public handle type in the threads
// package aliases it; all manipulation goes through package functions so
// nothing here leaks into the exported method set.
type Thread struct {
	id      uint64
	created bool // spawned by this library, OS-thread-locked
	done    chan struct{}
	res     int // published before done closes
	state   atomic.Int32

	tlsMu sync.Mutex
	tls   map[*Key]any
}

var (
	mu     sync.RWMutex
	byTID  = make(map[uint64]*Thread)
	nextID atomic.Uint64
)

// NewRecord allocates a record for a thread about to be spawned.
// The spawning goroutine must call Bind before running user code.
func NewRecord() *Thread {
	return &Thread{
		id:      nextID.Add(1),
		created: true,
		done:    make(chan struct{}),
	}
}

// Bind associates the record with the calling OS thread. Must run on the
// spawned thread itself, after it has been locked to its OS thread.
func Bind(t *Thread) {
	tid := threadID()
	mu.Lock()
	byTID[tid] = t
	mu.Unlock()
}

// Current returns the record for the calling thread, adopting a foreign
// caller on first sight. Adopted records are not joinable and remain
// stable only while the caller stays on its current OS thread.
func Current() *Thread {
	tid := threadID()
	mu.RLock()
	t := byTID[tid]
	mu.RUnlock()
	if t != nil {
		return t
	}

	mu.Lock()
	defer mu.Unlock()
	if t = byTID[tid]; t != nil {
		return t
	}
	t = &Thread{
		id:   nextID.Add(1),
		done: make(chan struct{}),
	}
	t.state.Store(stateDetached)
	byTID[tid] = t
	return t
}

// SetResult records the exit code of the calling thread. The value becomes
// visible to joiners once the record is finalized.
func SetResult(t *Thread, res int) {
	t.res = res
}

// Result returns the recorded exit code. Valid only after Wait.
func Result(t *Thread) int {
	return t.res
}

// Finalize runs on the spawned thread as it terminates: TLS destructors
// fire for non-nil values, the OS-thread binding is dropped, and joiners
// are released.
func Finalize(t *Thread) {
	runDestructors(t)

	tid := threadID()
	mu.Lock()
	delete(byTID, tid)
	mu.Unlock()

	close(t.done)
}

// Wait blocks until the record's thread has terminated.
func Wait(t *Thread) {
	<-t.done
}

// AcquireJoin claims the one permitted join. It fails on detached records,
// on a second join, and on records not created by this library.
func AcquireJoin(t *Thread) bool {
	if !t.created {
		return false
	}
	return t.state.CompareAndSwap(stateJoinable, stateJoined)
}

// Detach releases join-ability. Fails if the record was already joined
// or detached.
func Detach(t *Thread) bool {
	if !t.created {
		return false
	}
	return t.state.CompareAndSwap(stateJoinable, stateDetached)
}

// ID returns the registry-assigned identity of the record.
func ID(t *Thread) uint64 {
	return t.id
}
