// File: threads/tss.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread-local storage. A Key is a process-wide slot; each thread holds
// its own independent value for it. Destructors registered at key
// creation run with a thread's non-nil stored values when that thread
// terminates.

package threads

import (
	"github.com/momentics/nthreads/internal/registry"
)

// Key is an opaque process-wide thread-local slot identifier.
type Key = registry.Key

// CreateKey allocates a thread-local slot. dtor, if non-nil, is invoked
// with a thread's stored value when that thread terminates, provided the
// value is non-nil.
func CreateKey(dtor func(any)) (*Key, Status) {
	return registry.NewKey(dtor), Success
}

// DeleteKey releases the slot. Values stored under the key are not freed
// and their destructors do not run.
func DeleteKey(k *Key) {
	if k != nil {
		registry.DeleteKey(k)
	}
}

// Set stores the calling thread's value for k.
func Set(k *Key, v any) Status {
	if k == nil || !registry.TLSSet(registry.Current(), k, v) {
		return Error
	}
	return Success
}

// Get returns the calling thread's value for k, or nil when unset or the
// key has been deleted.
func Get(k *Key) any {
	if k == nil {
		return nil
	}
	return registry.TLSGet(registry.Current(), k)
}
