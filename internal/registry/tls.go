// File: internal/registry/tls.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread-local storage slots. A Key is a process-wide slot identifier;
// each thread record carries its own value map for the keys it has set.
// Destructors run on thread exit, re-scanning up to the POSIX-style
// iteration bound so a destructor may store fresh values a bounded
// number of times.

package registry

import "sync/atomic"

// destructorIterations bounds the exit-time destructor re-scan, matching
// the usual PTHREAD_DESTRUCTOR_ITERATIONS value.
const destructorIterations = 4

// Key identifies one process-wide thread-local slot.
type Key struct {
	dtor func(any)
	dead atomic.Bool
}

// NewKey allocates a slot with an optional destructor.
func NewKey(dtor func(any)) *Key {
	return &Key{dtor: dtor}
}

// DeleteKey releases the slot. Stored values are not freed and their
// destructors will not run.
func DeleteKey(k *Key) {
	k.dead.Store(true)
}

// KeyDeleted reports whether the slot has been released.
func KeyDeleted(k *Key) bool {
	return k.dead.Load()
}

// TLSSet stores the calling thread's value for the key.
func TLSSet(t *Thread, k *Key, v any) bool {
	if k == nil || k.dead.Load() {
		return false
	}
	t.tlsMu.Lock()
	if t.tls == nil {
		t.tls = make(map[*Key]any)
	}
	t.tls[k] = v
	t.tlsMu.Unlock()
	return true
}

// TLSGet returns the calling thread's value for the key, or nil.
func TLSGet(t *Thread, k *Key) any {
	if k == nil || k.dead.Load() {
		return nil
	}
	t.tlsMu.Lock()
	v := t.tls[k]
	t.tlsMu.Unlock()
	return v
}

// runDestructors fires destructors for every non-nil value whose key is
// still live. Destructors may set new values; the scan repeats until no
// non-nil values remain or the iteration bound is reached.
func runDestructors(t *Thread) {
	for i := 0; i < destructorIterations; i++ {
		t.tlsMu.Lock()
		var pendingKeys []*Key
		var pendingVals []any
		for k, v := range t.tls {
			if v == nil || k.dead.Load() || k.dtor == nil {
				continue
			}
			pendingKeys = append(pendingKeys, k)
			pendingVals = append(pendingVals, v)
			t.tls[k] = nil
		}
		t.tlsMu.Unlock()

		if len(pendingKeys) == 0 {
			return
		}
		for j, k := range pendingKeys {
			k.dtor(pendingVals[j])
		}
	}
}
