// File: api/shutdown.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "time"

// Close-timeout sentinels shared by Reactor.Close and Pool.CloseAll.
//
// A zero timeout signals stop and returns without waiting; WaitForever (or
// any negative duration) blocks until the loop thread has exited. Positive
// values bound the caller's wait only: a loop that misses the deadline keeps
// tearing down on its own.
const (
	// NoWait signals stop and returns immediately.
	NoWait time.Duration = 0

	// WaitForever blocks until loop exit is observed.
	WaitForever time.Duration = -1
)

// GracefulShutdown unifies graceful termination of aggregate components.
type GracefulShutdown interface {
	// Shutdown stops all internal services and releases resources.
	Shutdown() error
}
