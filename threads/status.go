// File: threads/status.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Closed result enumeration for every fallible primitive operation,
// mirroring the C11 thrd_success/thrd_busy/thrd_error/thrd_nomem set.

package threads

// Status is the result code returned by every fallible threading operation.
type Status int

const (
	// Success indicates the operation completed.
	Success Status = iota

	// Busy indicates lock contention or a detected self-deadlock;
	// the operation did not block and did not take effect.
	Busy

	// Error indicates any other native failure.
	Error

	// NoMem is reserved for allocation failure. No current mapping path
	// produces it; allocation-related native failures surface as Error.
	NoMem
)

// String returns the canonical name of the status code.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Busy:
		return "busy"
	case Error:
		return "error"
	case NoMem:
		return "nomem"
	default:
		return "unknown"
	}
}

// MutexKind selects the mutex flavor requested at init. Kinds are accepted
// for source compatibility; behavior beyond the default delegated primitive
// is not differentiated.
type MutexKind int

const (
	MutexPlain MutexKind = iota
	MutexRecursive
	MutexTimed
	MutexTry
)
