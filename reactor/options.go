// File: reactor/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package reactor

import (
	"fmt"

	"github.com/momentics/ioexec/logging"
	"github.com/momentics/ioexec/metrics"
)

// Option configures a Reactor at construction time.
type Option func(*config)

type config struct {
	log    logging.Logger
	met    *metrics.Metrics
	pinCPU int
}

func defaultConfig() *config {
	return &config{
		log:    logging.NewNop(),
		met:    nil,
		pinCPU: -1, // unpinned
	}
}

func (c *config) validate() error {
	if c.log == nil {
		return fmt.Errorf("reactor: logger must not be nil")
	}
	return nil
}

// WithLogger sets the structured logger for loop diagnostics.
func WithLogger(log logging.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithMetrics attaches Prometheus instrumentation. A nil Metrics disables it.
func WithMetrics(met *metrics.Metrics) Option {
	return func(c *config) { c.met = met }
}

// WithPinCPU pins the loop thread to the given CPU core on platforms that
// support it. Negative values leave the thread unpinned.
func WithPinCPU(cpuID int) Option {
	return func(c *config) { c.pinCPU = cpuID }
}
