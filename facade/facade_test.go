// File: facade/facade_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/momentics/ioexec/facade"
)

// Test the full lifecycle: construction, work submission, reactor
// acquisition, and graceful shutdown.
func TestIOExecFullLifecycle(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.Reactors = 2
	cfg.EnableMetrics = true
	cfg.ShutdownTimeout = time.Second

	x, err := facade.New(cfg)
	require.NoError(t, err)
	require.NotNil(t, x.Pool())
	require.NotNil(t, x.Logger())
	require.NotNil(t, x.Metrics())

	done := make(chan struct{})
	require.NoError(t, x.Submit(func() { close(done) }))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("submitted task never ran")
	}

	r, err := x.Acquire()
	require.NoError(t, err)
	require.NotEmpty(t, r.ID())

	require.NoError(t, x.Shutdown())
}

func TestIOExecNilConfigUsesDefaults(t *testing.T) {
	x, err := facade.New(nil)
	require.NoError(t, err)
	require.NoError(t, x.Shutdown())
}

func TestIOExecPrestart(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.Reactors = 2
	cfg.Prestart = true
	cfg.ShutdownTimeout = time.Second

	x, err := facade.New(cfg)
	require.NoError(t, err)

	first, err := x.Acquire()
	require.NoError(t, err)
	second, err := x.Acquire()
	require.NoError(t, err)
	require.NotEqual(t, first.ID(), second.ID())

	require.NoError(t, x.Shutdown())
}

// Two runtimes instrumented onto one caller-supplied registry must share
// its collectors instead of fighting over registration.
func TestIOExecSharedRegistererAcrossRuntimes(t *testing.T) {
	reg := prometheus.NewRegistry()

	cfg := facade.DefaultConfig()
	cfg.EnableMetrics = true
	cfg.Registerer = reg

	first, err := facade.New(cfg)
	require.NoError(t, err)

	var second *facade.IOExec
	require.NotPanics(t, func() { second, err = facade.New(cfg) })
	require.NoError(t, err)

	require.NoError(t, first.Shutdown())
	require.NoError(t, second.Shutdown())
}

func TestIOExecRejectsInvalidReactorCount(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.Reactors = 0
	_, err := facade.New(cfg)
	require.Error(t, err)
}
