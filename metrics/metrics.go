// File: metrics/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Prometheus instrumentation for reactors and pools. All methods are
// nil-safe so a nil *Metrics disables instrumentation without branching at
// every call site.

// Package metrics exposes Prometheus collectors for the ioexec runtime.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for the ioexec runtime.
type Metrics struct {
	tasksSubmitted prometheus.Counter
	loopRestarts   prometheus.Counter
	loopErrors     prometheus.Counter
	closeTimeouts  prometheus.Counter
	activeReactors prometheus.Gauge
}

// New creates a Metrics instance registered on reg. An empty namespace
// defaults to "ioexec". Registering twice on the same registry is fine:
// collectors already present are reused, so independently constructed
// runtimes can share one Registerer.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "ioexec"
	}

	return &Metrics{
		tasksSubmitted: registerCounter(reg, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_submitted_total",
			Help:      "Total number of tasks submitted to reactor loops",
		}),
		loopRestarts: registerCounter(reg, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loop_restarts_total",
			Help:      "Total number of reactor loop restarts, implicit and explicit",
		}),
		loopErrors: registerCounter(reg, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loop_errors_total",
			Help:      "Total number of reactor loops terminated by an error",
		}),
		closeTimeouts: registerCounter(reg, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "close_timeouts_total",
			Help:      "Total number of bounded close waits that elapsed before loop exit",
		}),
		activeReactors: registerGauge(reg, prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_reactors",
			Help:      "Number of reactors currently owning a live loop thread",
		}),
	}
}

// registerCounter registers a counter on reg, reusing an existing collector
// when the registry already carries one under the same descriptor.
func registerCounter(reg prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

// registerGauge is the gauge counterpart of registerCounter.
func registerGauge(reg prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	if reg == nil {
		return g
	}
	if err := reg.Register(g); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Gauge)
		}
		panic(err)
	}
	return g
}

// TaskSubmitted counts one accepted task submission.
func (m *Metrics) TaskSubmitted() {
	if m != nil {
		m.tasksSubmitted.Inc()
	}
}

// LoopRestarted counts one reactor restart.
func (m *Metrics) LoopRestarted() {
	if m != nil {
		m.loopRestarts.Inc()
	}
}

// LoopErrored counts one loop terminated by an error.
func (m *Metrics) LoopErrored() {
	if m != nil {
		m.loopErrors.Inc()
	}
}

// CloseTimedOut counts one bounded close wait that elapsed.
func (m *Metrics) CloseTimedOut() {
	if m != nil {
		m.closeTimeouts.Inc()
	}
}

// ReactorStarted moves the active reactor gauge up.
func (m *Metrics) ReactorStarted() {
	if m != nil {
		m.activeReactors.Inc()
	}
}

// ReactorStopped moves the active reactor gauge down.
func (m *Metrics) ReactorStopped() {
	if m != nil {
		m.activeReactors.Dec()
	}
}
