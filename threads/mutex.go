// File: threads/mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutual exclusion adapted onto sync.Mutex. The adapter tracks the owning
// thread only to detect self-deadlock (reported as Busy, the EDEADLK
// mapping) and unlock by a non-owner (reported as Error); the lock itself
// is the delegated native primitive.

package threads

import (
	"sync"
	"sync/atomic"
)

// Mutex is a mutual-exclusion lock with exactly one owner at a time.
type Mutex struct {
	kind  MutexKind
	inner sync.Mutex
	owner atomic.Pointer[Thread]
}

// NewMutex initializes a mutex of the given kind. Kinds are accepted for
// source compatibility; behavior beyond the delegated primitive's default
// is not differentiated.
func NewMutex(kind MutexKind) (*Mutex, Status) {
	switch kind {
	case MutexPlain, MutexRecursive, MutexTimed, MutexTry:
		return &Mutex{kind: kind}, Success
	default:
		return nil, Error
	}
}

// Kind returns the kind requested at init.
func (m *Mutex) Kind() MutexKind {
	return m.kind
}

// Destroy releases the mutex. The mutex must not be held.
func (m *Mutex) Destroy() {
	if m != nil {
		m.owner.Store(nil)
	}
}

// Lock acquires the mutex, blocking while it is held by another thread.
// Returns Busy when the calling thread already holds it.
func (m *Mutex) Lock() Status {
	if m == nil {
		return Error
	}
	self := Current()
	if m.owner.Load() == self {
		return Busy
	}
	m.inner.Lock()
	m.owner.Store(self)
	return Success
}

// TryLock acquires the mutex without blocking. Returns Busy when it is
// already held.
func (m *Mutex) TryLock() Status {
	if m == nil {
		return Error
	}
	if !m.inner.TryLock() {
		return Busy
	}
	m.owner.Store(Current())
	return Success
}

// Unlock releases the mutex. Returns Error when the calling thread does
// not hold it.
func (m *Mutex) Unlock() Status {
	if m == nil {
		return Error
	}
	if m.owner.Load() != Current() {
		return Error
	}
	m.owner.Store(nil)
	m.inner.Unlock()
	return Success
}

// heldBy reports whether t currently owns the mutex.
func (m *Mutex) heldBy(t *Thread) bool {
	return m.owner.Load() == t
}

// release drops ownership and the underlying lock. Caller must own m.
func (m *Mutex) release() {
	m.owner.Store(nil)
	m.inner.Unlock()
}

// reacquire takes the underlying lock and records self as owner.
func (m *Mutex) reacquire(self *Thread) {
	m.inner.Lock()
	m.owner.Store(self)
}
