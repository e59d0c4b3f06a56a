// File: internal/affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Optional CPU pinning and thread identification for reactor loop threads.
// Pure-Go implementations only; platforms without support report
// ErrNotSupported and the reactor carries on unpinned.

// Package affinity pins reactor loop threads to CPU cores where the
// platform allows it.
package affinity

import "errors"

// ErrNotSupported indicates CPU affinity is not supported on this platform.
var ErrNotSupported = errors.New("CPU affinity not supported")

// PinCurrentThread binds the calling OS thread to the given CPU core.
// The caller must already hold runtime.LockOSThread.
func PinCurrentThread(cpuID int) error {
	return platformPinCurrentThread(cpuID)
}

// ThreadID returns the OS identifier of the calling thread, or -1 when the
// platform exposes none. Diagnostic use only.
func ThreadID() int {
	return platformThreadID()
}
