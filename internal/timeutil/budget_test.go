// File: internal/timeutil/budget_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/ioexec/internal/timeutil"
)

func TestBudgetShrinksByElapsedTime(t *testing.T) {
	b := timeutil.NewBudget(500 * time.Millisecond)

	b.Begin()
	time.Sleep(50 * time.Millisecond)
	b.End()

	left := b.Remaining()
	require.Less(t, left, 500*time.Millisecond)
	require.Greater(t, left, time.Duration(0))

	// Successive intervals keep shrinking, never grow.
	b.Begin()
	time.Sleep(10 * time.Millisecond)
	b.End()
	require.Less(t, b.Remaining(), left)
}

func TestBudgetFloorsAtZero(t *testing.T) {
	b := timeutil.NewBudget(10 * time.Millisecond)
	b.Begin()
	time.Sleep(30 * time.Millisecond)
	b.End()
	require.Equal(t, time.Duration(0), b.Remaining())

	// Exhausted budgets stay exhausted.
	b.Begin()
	time.Sleep(5 * time.Millisecond)
	b.End()
	require.Equal(t, time.Duration(0), b.Remaining())
}

func TestBudgetNegativeIsIndefiniteSentinel(t *testing.T) {
	b := timeutil.NewBudget(-1)
	b.Begin()
	time.Sleep(20 * time.Millisecond)
	b.End()
	require.Equal(t, time.Duration(-1), b.Remaining(), "sentinel must never be decremented")
}

func TestBudgetZeroStaysNonBlocking(t *testing.T) {
	b := timeutil.NewBudget(0)
	b.Begin()
	time.Sleep(10 * time.Millisecond)
	b.End()
	require.Equal(t, time.Duration(0), b.Remaining())
}
