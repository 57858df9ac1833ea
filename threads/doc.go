// Package threads
// Author: momentics <momentics@gmail.com>
//
// C11-threads-style primitive set adapted onto Go's native facilities.
// Threads are goroutines locked to dedicated OS threads, mutexes and
// once-flags delegate to the sync package, condition variables use a
// FIFO of waiter channels, and thread-local storage is keyed by the
// calling OS thread.
//
// Every fallible operation returns a Status from the closed set
// Success, Busy, Error, NoMem. The package stores no state of its own
// beyond handle bookkeeping; lifecycle and ordering guarantees are
// those of the delegated primitives.
//
// Handles for threads not created by this package are adopted lazily
// and are stable only while the caller remains on its OS thread; pin
// with runtime.LockOSThread for stable identity on foreign goroutines.
package threads
