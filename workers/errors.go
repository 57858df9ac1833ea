// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the workers module.

package workers

import "errors"

var (
	// ErrPoolClosed indicates the pool has been shut down
	ErrPoolClosed = errors.New("pool is closed")

	// ErrTaskNil indicates a nil task was submitted
	ErrTaskNil = errors.New("task must not be nil")
)
