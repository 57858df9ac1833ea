// File: threads/cond.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Condition variables. Waiters queue as per-waiter channels in FIFO order;
// a wait enqueues under the cond's guard before the associated mutex is
// released, so a wakeup issued after the release cannot be lost. The cond
// is associated with one mutex at a time by convention only; no mutex
// reference is stored.

package threads

import (
	"sync"

	"github.com/eapache/queue"
)

// Cond is a wait/notify signal used together with a Mutex.
type Cond struct {
	mu      sync.Mutex
	waiters *queue.Queue // of chan struct{}
}

// NewCond initializes a condition variable.
func NewCond() (*Cond, Status) {
	return &Cond{waiters: queue.New()}, Success
}

// Destroy releases the condition variable, waking any remaining waiters.
func (c *Cond) Destroy() {
	if c == nil {
		return
	}
	c.mu.Lock()
	for c.waiters.Length() > 0 {
		close(c.waiters.Remove().(chan struct{}))
	}
	c.mu.Unlock()
}

// Signal wakes at least one waiter, if any.
func (c *Cond) Signal() Status {
	if c == nil {
		return Error
	}
	c.mu.Lock()
	if c.waiters.Length() > 0 {
		close(c.waiters.Remove().(chan struct{}))
	}
	c.mu.Unlock()
	return Success
}

// Broadcast wakes all current waiters.
func (c *Cond) Broadcast() Status {
	if c == nil {
		return Error
	}
	c.mu.Lock()
	for c.waiters.Length() > 0 {
		close(c.waiters.Remove().(chan struct{}))
	}
	c.mu.Unlock()
	return Success
}

// Wait atomically releases m and blocks the calling thread until woken by
// Signal or Broadcast, then reacquires m before returning. The caller
// must hold m on entry; Error otherwise.
func (c *Cond) Wait(m *Mutex) Status {
	if c == nil || m == nil {
		return Error
	}
	self := Current()
	if !m.heldBy(self) {
		return Error
	}

	ch := make(chan struct{})
	c.mu.Lock()
	c.waiters.Add(ch)
	c.mu.Unlock()

	m.release()
	<-ch
	m.reacquire(self)
	return Success
}
