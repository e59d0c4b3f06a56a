// File: endpoint/timer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// DeadlineTimer: a one-shot timer whose wait handler runs on the owning
// reactor's loop thread. One wait may be pending at a time; re-arming after
// fire or cancel is allowed.

package endpoint

import (
	"sync"
	"time"

	"github.com/momentics/ioexec/api"
)

// DeadlineTimer schedules a single handler after a deadline.
type DeadlineTimer struct {
	exec api.Executor

	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func(error)
}

// NewDeadlineTimer binds a disarmed timer to exec.
func NewDeadlineTimer(exec api.Executor) *DeadlineTimer {
	return &DeadlineTimer{exec: exec}
}

// ExpiresAfter sets the delay used by the next AsyncWait. Calling it while a
// wait is pending cancels that wait first, delivering ErrTimerCanceled.
func (t *DeadlineTimer) ExpiresAfter(d time.Duration) {
	t.Cancel()
	t.mu.Lock()
	t.delay = d
	t.mu.Unlock()
}

// AsyncWait arms the timer with the configured delay. When the deadline
// passes, fn(nil) is posted to the loop thread; on cancellation fn receives
// ErrTimerCanceled instead. An AsyncWait issued while another is pending
// cancels the earlier one.
//
// The expiry callback identifies its own arming through the timer pointer:
// a runtime timer that already fired when the wait is canceled or re-armed
// finds t.timer pointing elsewhere and backs off, so a stale expiry can
// never consume a newer wait's handler.
func (t *DeadlineTimer) AsyncWait(fn func(error)) {
	t.Cancel()
	t.mu.Lock()
	t.pending = fn
	var armed *time.Timer
	armed = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		// armed is written before the arming releases t.mu, so reading
		// it under the lock is ordered.
		if t.timer != armed {
			t.mu.Unlock()
			return // superseded while the runtime timer was firing
		}
		fired := t.pending
		t.pending = nil
		t.timer = nil
		t.mu.Unlock()
		if fired != nil {
			_ = t.exec.Submit(func() { fired(nil) })
		}
	})
	t.timer = armed
	t.mu.Unlock()
}

// Cancel revokes a pending wait, delivering ErrTimerCanceled to its handler
// on the loop thread. It returns true when a pending wait was revoked.
// Clearing t.timer wins even against a runtime timer that already fired:
// the in-flight expiry sees the arming superseded and delivers nothing.
func (t *DeadlineTimer) Cancel() bool {
	t.mu.Lock()
	armed, fn := t.timer, t.pending
	if armed == nil {
		t.mu.Unlock()
		return false
	}
	armed.Stop()
	t.timer = nil
	t.pending = nil
	t.mu.Unlock()

	if fn != nil {
		_ = t.exec.Submit(func() { fn(ErrTimerCanceled) })
	}
	return true
}
