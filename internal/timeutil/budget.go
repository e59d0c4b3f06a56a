// File: internal/timeutil/budget.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Budget tracks the wall time left for a sequence of sequential bounded
// waits, so closing N reactors in a row never waits longer in total than the
// original allowance.

// Package timeutil provides the shrinking timeout budget used by pool-wide
// shutdown.
package timeutil

import "time"

// Budget apportions one aggregate timeout across successive waits.
//
// A negative total is a sentinel meaning "wait indefinitely" and is never
// decremented. A zero total means "do not wait" and stays zero. Positive
// budgets shrink by the elapsed wall time of each Begin/End interval,
// flooring at zero.
type Budget struct {
	remaining time.Duration
	started   time.Time
}

// NewBudget returns a Budget holding the given total allowance.
func NewBudget(total time.Duration) *Budget {
	return &Budget{remaining: total}
}

// Begin marks the start of a tracked interval.
func (b *Budget) Begin() {
	b.started = time.Now()
}

// End charges the elapsed time of the current interval against the budget.
func (b *Budget) End() {
	if b.remaining <= 0 {
		return // sentinel or already exhausted
	}
	b.remaining -= time.Since(b.started)
	if b.remaining < 0 {
		b.remaining = 0
	}
}

// Remaining returns the allowance left for the next wait.
func (b *Budget) Remaining() time.Duration {
	return b.remaining
}
