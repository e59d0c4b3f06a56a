// File: facade/facade.go
// Unified facade layer for the ioexec library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the IOExec struct, which aggregates the reactor pool,
// logging, and metrics behind a single facade built from immutable
// configuration. The facade exposes methods to acquire reactors, submit
// work, reach the instrumentation, and shut everything down under the
// configured aggregate timeout.

package facade

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/ioexec/logging"
	"github.com/momentics/ioexec/metrics"
	"github.com/momentics/ioexec/pool"
	"github.com/momentics/ioexec/reactor"
)

// Config holds parameters immutable per run.
type Config struct {
	Reactors         int                   // Number of reactor slots in the pool
	Prestart         bool                  // Whether to populate all slots eagerly at New
	ShutdownTimeout  time.Duration         // Aggregate budget for closing all reactors
	LogLevel         string                // Logging level: debug, info, warn, error
	LogFormat        string                // Logging format: json or console
	EnableMetrics    bool                  // Whether to collect Prometheus metrics
	MetricsNamespace string                // Namespace prefix for metric names
	Registerer       prometheus.Registerer // Metrics registry; nil uses a private one
}

// DefaultConfig returns default configuration values.
// These sane defaults support typical use cases without extensive tuning.
func DefaultConfig() *Config {
	return &Config{
		Reactors:         runtime.NumCPU(), // One reactor per CPU
		Prestart:         false,            // Lazy slot population
		ShutdownTimeout:  10 * time.Second, // 10-second graceful shutdown
		LogLevel:         "info",           // Informational logging
		LogFormat:        "json",           // JSON log lines
		EnableMetrics:    false,            // Metrics off unless asked for
		MetricsNamespace: "ioexec",         // Metric name prefix
	}
}

// IOExec is the main facade type.
// It implements api.GracefulShutdown to allow unified shutdown logic.
type IOExec struct {
	cfg  *Config
	log  logging.Logger
	met  *metrics.Metrics
	pool *pool.Pool
}

// New builds the facade from cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config) (*IOExec, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	log, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: "stderr",
	})
	if err != nil {
		return nil, err
	}

	var met *metrics.Metrics
	if cfg.EnableMetrics {
		reg := cfg.Registerer
		if reg == nil {
			reg = prometheus.NewRegistry()
		}
		met = metrics.New(cfg.MetricsNamespace, reg)
	}

	p, err := pool.New(cfg.Reactors,
		pool.WithLogger(log),
		pool.WithReactorOptions(
			reactor.WithLogger(log),
			reactor.WithMetrics(met),
		),
	)
	if err != nil {
		return nil, err
	}

	x := &IOExec{cfg: cfg, log: log, met: met, pool: p}
	if cfg.Prestart {
		if err := p.Prestart(context.Background()); err != nil {
			p.CloseAll(cfg.ShutdownTimeout)
			return nil, err
		}
	}
	return x, nil
}

// Acquire returns the next reactor in round-robin order.
func (x *IOExec) Acquire() (*reactor.Reactor, error) {
	return x.pool.Acquire()
}

// Submit acquires a reactor and schedules task on its loop thread.
func (x *IOExec) Submit(task func()) error {
	r, err := x.pool.Acquire()
	if err != nil {
		return err
	}
	return r.Submit(task)
}

// Pool returns the underlying reactor pool.
func (x *IOExec) Pool() *pool.Pool { return x.pool }

// Logger returns the facade's structured logger.
func (x *IOExec) Logger() logging.Logger { return x.log }

// Metrics returns the Prometheus instrumentation, or nil when disabled.
func (x *IOExec) Metrics() *metrics.Metrics { return x.met }

// Shutdown closes every reactor under the configured aggregate timeout and
// flushes the logger.
func (x *IOExec) Shutdown() error {
	x.pool.CloseAll(x.cfg.ShutdownTimeout)
	_ = x.log.Sync() // sync failures on tty sinks are expected noise
	return nil
}
