// File: internal/ioloop/loop_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ioloop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/ioexec/api"
	"github.com/momentics/ioexec/internal/ioloop"
)

func TestLoopExecutesTasksInFIFOOrder(t *testing.T) {
	l := ioloop.New()
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run() }()

	var got []int
	done := make(chan struct{})
	for i := 0; i < 100; i++ {
		i := i
		require.NoError(t, l.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, l.Post(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not drain tasks")
	}
	require.Len(t, got, 100)
	for i, v := range got {
		require.Equal(t, i, v, "tasks ran out of order")
	}

	l.Stop()
	require.NoError(t, <-errCh)
}

func TestLoopPostAfterStopFails(t *testing.T) {
	l := ioloop.New()
	go func() { _ = l.Run() }()

	l.Stop()
	err := l.Post(func() {})
	require.ErrorIs(t, err, api.ErrLoopStopped)
	require.True(t, l.Stopped())
}

func TestLoopTaskPanicTerminatesLoop(t *testing.T) {
	l := ioloop.New()
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run() }()

	require.NoError(t, l.Post(func() { panic("boom") }))

	select {
	case err := <-errCh:
		require.Error(t, err)
		require.Contains(t, err.Error(), "boom")
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not terminate on task panic")
	}

	// The dead loop rejects further work instead of crashing.
	require.ErrorIs(t, l.Post(func() {}), api.ErrLoopStopped)
}

func TestLoopSecondRunIsNoOp(t *testing.T) {
	l := ioloop.New()
	go func() { _ = l.Run() }()

	// Give the first Run a moment to claim the loop.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, l.Run(), "second Run must return immediately")
	l.Stop()
}

func TestLoopRetainsTasksPostedBeforeRun(t *testing.T) {
	l := ioloop.New()
	done := make(chan struct{})
	require.NoError(t, l.Post(func() { close(done) }))
	require.Equal(t, 1, l.Pending())

	go func() { _ = l.Run() }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pre-run task never executed")
	}
	l.Stop()
}
