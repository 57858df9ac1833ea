// File: threads/once.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-time initialization delegated to sync.Once, which already provides
// the not-run / running / done gate: the initializer runs to completion
// exactly once, and every racing caller returns only after it finishes.

package threads

import "sync"

// OnceFlag gates one-time initialization. The zero value is ready for use
// and must not be copied after first use.
type OnceFlag struct {
	once sync.Once
}

// CallOnce runs fn exactly once across all callers sharing f. Callers
// racing with the initializer block until it completes.
func CallOnce(f *OnceFlag, fn func()) {
	if f == nil || fn == nil {
		return
	}
	f.once.Do(fn)
}
