// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sentinel error definitions shared across the ioexec packages.

package api

import "errors"

var (
	// ErrReactorClosed indicates the reactor has been shut down and no
	// longer accepts work or endpoint construction.
	ErrReactorClosed = errors.New("reactor is closed")

	// ErrLoopStopped indicates the underlying event loop has stopped and
	// the submitted task was dropped.
	ErrLoopStopped = errors.New("event loop is stopped")

	// ErrInvalidPoolSize indicates a pool was requested with fewer than
	// one slot.
	ErrInvalidPoolSize = errors.New("pool size must be at least 1")
)
