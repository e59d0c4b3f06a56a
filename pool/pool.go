// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Round-robin reactor pool. Selection is counter mod size under the pool
// mutex: deterministic, no load tracking. The workload distributed here is
// I/O-bound connection ownership, so an even connection count per loop
// thread is all the balancing needed.

package pool

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/ioexec/api"
	"github.com/momentics/ioexec/internal/timeutil"
	"github.com/momentics/ioexec/logging"
	"github.com/momentics/ioexec/reactor"
)

// Pool owns a fixed-length collection of reactor slots. Slot count never
// changes after construction; slots fill lazily on first demand and empty
// only through CloseAll.
type Pool struct {
	mu    sync.Mutex
	slots []*reactor.Reactor
	next  uint64

	log   logging.Logger
	ropts []reactor.Option
}

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithLogger sets the pool's structured logger.
func WithLogger(log logging.Logger) Option {
	return func(p *Pool) { p.log = log }
}

// WithReactorOptions passes options through to every reactor the pool
// creates.
func WithReactorOptions(opts ...reactor.Option) Option {
	return func(p *Pool) { p.ropts = opts }
}

// New allocates a pool with size empty slots. Sizes below 1 are rejected
// with api.ErrInvalidPoolSize rather than left to divide by zero later.
func New(size int, opts ...Option) (*Pool, error) {
	if size < 1 {
		return nil, api.ErrInvalidPoolSize
	}
	p := &Pool{
		slots: make([]*reactor.Reactor, size),
		log:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Size returns the fixed slot count.
func (p *Pool) Size() int {
	return len(p.slots)
}

// Acquire returns the next reactor in round-robin order, creating it on
// first use of its slot. Selection is deterministic given the counter's
// prior value; the mutex serializes concurrent callers.
func (p *Pool) Acquire() (*reactor.Reactor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := int(p.next % uint64(len(p.slots)))
	p.next++
	if p.slots[idx] == nil {
		r, err := reactor.New(p.ropts...)
		if err != nil {
			return nil, err
		}
		p.slots[idx] = r
		p.log.Debug("reactor created",
			logging.Int("slot", idx), logging.String("reactor_id", r.ID()))
	}
	return p.slots[idx], nil
}

// Prestart eagerly populates every empty slot, creating the reactors
// concurrently. Lazy creation on Acquire remains the default path; this is
// for callers that want launch cost paid up front.
func (p *Pool) Prestart(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	built := make([]*reactor.Reactor, len(p.slots))
	for i := range p.slots {
		if p.slots[i] != nil {
			continue
		}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := reactor.New(p.ropts...)
			if err != nil {
				return err
			}
			built[i] = r
			return nil
		})
	}
	err := g.Wait()
	for i, r := range built {
		if r != nil {
			p.slots[i] = r
		}
	}
	return err
}

// CloseAll closes every populated reactor in slot order under one aggregate
// timeout, apportioning the remaining budget as it goes. Zero and negative
// totals are sentinels and reach each reactor unchanged. Every slot is
// released regardless of whether its close finished in budget; a subsequent
// Acquire recreates reactors lazily.
func (p *Pool) CloseAll(timeout time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	budget := timeutil.NewBudget(timeout)
	for i, r := range p.slots {
		budget.Begin()
		if r != nil {
			r.Close(budget.Remaining())
		}
		budget.End()
		p.slots[i] = nil
	}
}
