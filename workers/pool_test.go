// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// pool_test.go — task dispatch across adapter threads.
package workers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllTasks(t *testing.T) {
	pool, err := NewPool(4, false)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	const ntasks = 200
	var ran atomic.Int64
	for i := 0; i < ntasks; i++ {
		if err := pool.Submit(func() { ran.Add(1) }); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	pool.Close()

	if ran.Load() != ntasks {
		t.Errorf("ran %d tasks, want %d", ran.Load(), ntasks)
	}
}

func TestPoolDefaultsWorkerCount(t *testing.T) {
	pool, err := NewPool(0, false)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close()

	if pool.NumWorkers() <= 0 {
		t.Errorf("NumWorkers = %d, want > 0", pool.NumWorkers())
	}
}

func TestSubmitAfterClose(t *testing.T) {
	pool, err := NewPool(2, false)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	pool.Close()

	if err := pool.Submit(func() {}); err != ErrPoolClosed {
		t.Errorf("Submit after Close = %v, want ErrPoolClosed", err)
	}
}

func TestSubmitNilTask(t *testing.T) {
	pool, err := NewPool(1, false)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close()

	if err := pool.Submit(nil); err != ErrTaskNil {
		t.Errorf("Submit(nil) = %v, want ErrTaskNil", err)
	}
}

func TestPoolSurvivesPanickingTask(t *testing.T) {
	pool, err := NewPool(1, false)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	var ran atomic.Int64
	pool.Submit(func() { panic("task failure") })
	pool.Submit(func() { ran.Add(1) })
	pool.Close()

	if ran.Load() != 1 {
		t.Errorf("task after panic did not run")
	}
}

func TestPoolConcurrentSubmitters(t *testing.T) {
	pool, err := NewPool(4, false)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	const submitters = 8
	const perSubmitter = 100
	var ran atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perSubmitter; j++ {
				pool.Submit(func() { ran.Add(1) })
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		pool.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Timeout: possible deadlock in pool")
	}

	if ran.Load() != submitters*perSubmitter {
		t.Errorf("ran %d tasks, want %d", ran.Load(), submitters*perSubmitter)
	}
}
