// File: workers/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool dispatches tasks across a fixed set of adapter threads. The pool
// is deliberately built on the threads package's own primitives (mutex,
// condition variable, create/join/exit) rather than bare goroutines, so
// it doubles as an end-to-end consumer of the adapter surface. Tasks
// queue in FIFO order on an eapache/queue guarded by the pool mutex.

package workers

import (
	"runtime"

	"github.com/eapache/queue"

	"github.com/momentics/nthreads/api"
	"github.com/momentics/nthreads/sched"
	"github.com/momentics/nthreads/threads"
)

type TaskFunc func()

// Pool manages a fixed set of worker threads.
type Pool struct {
	mu       *threads.Mutex
	notEmpty *threads.Cond
	tasks    *queue.Queue // of TaskFunc
	workers  []*threads.Thread
	closed   bool
	pinCPUs  bool
}

// NewPool creates a pool with the given number of worker threads. A
// non-positive count defaults to runtime.NumCPU. With pinCPUs set, each
// worker pins itself round-robin to a logical CPU where the platform
// supports it.
func NewPool(numWorkers int, pinCPUs bool) (*Pool, error) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	mu, st := threads.NewMutex(threads.MutexPlain)
	if st != threads.Success {
		return nil, api.NewError(api.ErrCodeInternal, "pool mutex init failed")
	}
	notEmpty, st := threads.NewCond()
	if st != threads.Success {
		return nil, api.NewError(api.ErrCodeInternal, "pool cond init failed")
	}
	p := &Pool{
		mu:       mu,
		notEmpty: notEmpty,
		tasks:    queue.New(),
		pinCPUs:  pinCPUs,
	}
	for i := 0; i < numWorkers; i++ {
		t, st := threads.Create(p.run, i)
		if st != threads.Success {
			p.Close()
			return nil, api.NewError(api.ErrCodeResourceExhausted, "worker create failed").
				WithContext("worker", i)
		}
		p.workers = append(p.workers, t)
	}
	return p, nil
}

// Submit enqueues a task for asynchronous execution. Returns an error
// after Close.
func (p *Pool) Submit(task TaskFunc) error {
	if task == nil {
		return ErrTaskNil
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.tasks.Add(task)
	p.notEmpty.Signal()
	p.mu.Unlock()
	return nil
}

// NumWorkers returns the number of worker threads.
func (p *Pool) NumWorkers() int {
	return len(p.workers)
}

// Close drains the queue, stops the workers, and joins every worker
// thread. Tasks already submitted still execute.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.notEmpty.Broadcast()
	p.mu.Unlock()

	for _, t := range p.workers {
		_, _ = threads.Join(t)
	}
}

// run is the worker entry: wait for work, execute, repeat until the pool
// is closed and the queue is drained.
func (p *Pool) run(arg any) {
	if p.pinCPUs {
		_ = sched.Pin(arg.(int) % runtime.NumCPU())
	}
	for {
		p.mu.Lock()
		for p.tasks.Length() == 0 && !p.closed {
			p.notEmpty.Wait(p.mu)
		}
		if p.tasks.Length() == 0 {
			p.mu.Unlock()
			threads.Exit(0)
		}
		task := p.tasks.Remove().(TaskFunc)
		p.mu.Unlock()
		p.safeExecute(task)
	}
}

func (p *Pool) safeExecute(task TaskFunc) {
	defer func() { recover() }()
	task()
}
