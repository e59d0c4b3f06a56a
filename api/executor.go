// File: api/executor.go
// Author: momentics <momentics@gmail.com>
//
// Executor contract for submitting opaque work onto a reactor loop thread.

package api

// Executor abstracts submission of work onto an event-loop thread.
//
// Tasks submitted from the same goroutine run in FIFO order; no ordering
// is promised across submitters beyond "eventually runs on the loop thread".
type Executor interface {
	// Submit schedules task for execution on the loop thread.
	// It never blocks the caller. It returns ErrReactorClosed once the
	// owning reactor has been closed.
	Submit(task func()) error
}
