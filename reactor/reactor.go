// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reactor owns one background OS thread driving an event loop until stopped,
// and hands out endpoint objects bound to that loop. Close is idempotent via
// an atomic compare-and-swap; loop exit is observed through a done channel,
// which gives the same no-wait / bounded-wait / unbounded-wait tri-state as
// a condition variable would, with select as the timed wait.

package reactor

import (
	"crypto/tls"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/momentics/ioexec/api"
	"github.com/momentics/ioexec/endpoint"
	"github.com/momentics/ioexec/internal/affinity"
	"github.com/momentics/ioexec/internal/ioloop"
	"github.com/momentics/ioexec/logging"
	"github.com/momentics/ioexec/metrics"
)

// Reactor is a single-thread-owned asynchronous execution context.
//
// A Reactor is never observable in an unstarted state: New launches the loop
// thread before returning. The same handle stays valid across any number of
// restarts; each restart installs a fresh internal loop object.
type Reactor struct {
	id     string
	log    logging.Logger
	met    *metrics.Metrics
	pinCPU int

	// closed flips false->true exactly once per active lifetime. The CAS
	// lets reentrant Close calls fast-exit without taking mu.
	closed atomic.Bool

	// restartMu serializes Restart so two recovering callers cannot launch
	// two live loop threads against one handle.
	restartMu sync.Mutex

	mu   sync.Mutex    // guards loop and done
	loop *ioloop.Loop  // current loop object, replaced on restart
	done chan struct{} // closed when the current loop thread exits
}

// New constructs a Reactor and immediately launches its loop thread.
func New(opts ...Option) (*Reactor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := &Reactor{
		id:     uuid.NewString(),
		met:    cfg.met,
		pinCPU: cfg.pinCPU,
		loop:   ioloop.New(),
		done:   make(chan struct{}),
	}
	r.log = cfg.log.With(logging.String("reactor_id", r.id))
	r.launch(r.loop, r.done)
	// A handle dropped without Close still stops its loop thread, the way
	// the destructor path does: fire-and-forget. The loop goroutine only
	// captures copies of the reactor's fields, so an abandoned handle
	// becomes collectable while its loop is parked.
	runtime.SetFinalizer(r, func(r *Reactor) { r.Close(api.NoWait) })
	return r, nil
}

// ID returns the reactor's stable identifier, used for log correlation.
func (r *Reactor) ID() string { return r.id }

// launch starts the background thread for the given loop generation. The
// thread detaches from its creator; done is the only join point. The
// goroutine works on copies of the reactor's fields, never the handle
// itself, so it does not keep an abandoned handle alive.
func (r *Reactor) launch(loop *ioloop.Loop, done chan struct{}) {
	log, met, pinCPU := r.log, r.met, r.pinCPU
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if pinCPU >= 0 {
			if err := affinity.PinCurrentThread(pinCPU); err != nil {
				log.Warn("failed to pin loop thread",
					logging.Int("cpu", pinCPU), logging.Error(err))
			}
		}
		log.Debug("event loop started", logging.Int("tid", affinity.ThreadID()))
		met.ReactorStarted()

		err := loop.Run()
		if err != nil {
			log.Error("event loop terminated", logging.Error(err))
			met.LoopErrored()
		} else {
			log.Debug("event loop exited")
		}

		met.ReactorStopped()
		close(done)
	}()
}

// Submit enqueues task for execution on the loop thread. It never blocks.
// Tasks submitted from one goroutine run in FIFO order. After Close the
// task is dropped and api.ErrReactorClosed is returned; a task hitting a
// stopped loop is dropped with api.ErrLoopStopped.
func (r *Reactor) Submit(task func()) error {
	if r.closed.Load() {
		return api.ErrReactorClosed
	}
	r.mu.Lock()
	loop := r.loop
	r.mu.Unlock()

	if err := loop.Post(task); err != nil {
		return err
	}
	r.met.TaskSubmitted()
	return nil
}

// NewStreamSocket returns an unconnected stream socket whose completion
// handlers run on the loop thread. If the loop has died, the reactor
// restarts itself before returning the wrapped error, so the next call on
// the same handle succeeds.
func (r *Reactor) NewStreamSocket() (*endpoint.StreamSocket, error) {
	if err := r.endpointReady(); err != nil {
		return nil, r.recoverFactory("stream socket", err)
	}
	return endpoint.NewStreamSocket(r), nil
}

// NewResolver returns a name resolver bound to the loop.
func (r *Reactor) NewResolver() (*endpoint.Resolver, error) {
	if err := r.endpointReady(); err != nil {
		return nil, r.recoverFactory("resolver", err)
	}
	return endpoint.NewResolver(r), nil
}

// NewDeadlineTimer returns a deadline timer whose wait handlers run on the
// loop thread.
func (r *Reactor) NewDeadlineTimer() (*endpoint.DeadlineTimer, error) {
	if err := r.endpointReady(); err != nil {
		return nil, r.recoverFactory("deadline timer", err)
	}
	return endpoint.NewDeadlineTimer(r), nil
}

// NewEncryptedStream wraps an already-connected socket with a TLS layer
// bound to the supplied configuration. Pure construction: no loop
// interaction, no handshake, and never a restart.
func (r *Reactor) NewEncryptedStream(sock *endpoint.StreamSocket, cfg *tls.Config) (*endpoint.EncryptedStream, error) {
	return endpoint.NewEncryptedStream(sock, cfg)
}

// endpointReady reports whether the loop can accept endpoint bindings.
func (r *Reactor) endpointReady() error {
	if r.closed.Load() {
		return api.ErrReactorClosed
	}
	if r.loopExited() {
		return api.ErrLoopStopped
	}
	return nil
}

// recoverFactory applies the implicit-restart policy to a failed endpoint
// construction. A reactor closed by its owner is not resurrected; a reactor
// whose loop died on its own is relaunched so the next factory call finds a
// working loop.
func (r *Reactor) recoverFactory(kind string, err error) error {
	if errors.Is(err, api.ErrReactorClosed) {
		return fmt.Errorf("create %s: %w", kind, err)
	}
	r.log.Warn("endpoint construction failed, restarting loop",
		logging.String("endpoint", kind), logging.Error(err))
	r.Restart()
	return fmt.Errorf("create %s: %w", kind, err)
}

// loopExited reports whether the current loop thread has exited.
func (r *Reactor) loopExited() bool {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	select {
	case <-done:
		return true
	default:
		return false
	}
}

// Close stops the loop and optionally waits for the thread to exit.
//
//	timeout == 0 (api.NoWait): signal stop, return immediately.
//	timeout > 0:               signal stop, wait up to timeout; no error
//	                           when the wait elapses.
//	timeout < 0 (api.WaitForever): signal stop, wait until loop exit.
//
// Close is idempotent: concurrent or repeated calls after the first are
// no-ops. The timeout bounds the caller's wait only; a loop missing the
// deadline keeps tearing down on its own.
func (r *Reactor) Close(timeout time.Duration) {
	if !r.closed.CompareAndSwap(false, true) {
		return
	}

	r.mu.Lock()
	loop, done := r.loop, r.done
	r.mu.Unlock()

	loop.Stop()
	if timeout == 0 {
		return
	}
	if timeout < 0 {
		<-done
		return
	}
	select {
	case <-done:
	case <-time.After(timeout):
		r.met.CloseTimedOut()
		r.log.Debug("close wait elapsed before loop exit",
			logging.Duration("timeout", timeout))
	}
}

// Restart forces a synchronous close of the current loop, waits for its
// thread to exit, then installs a fresh loop object and relaunches. The
// handle's identity is preserved. Safe to call any number of times; used
// internally on endpoint construction failure and available to owners
// recovering from a loop error.
func (r *Reactor) Restart() {
	r.restartMu.Lock()
	defer r.restartMu.Unlock()

	r.Close(api.WaitForever) // make sure it's closed
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	<-done // the old thread is fully gone before a new one launches

	r.mu.Lock()
	r.loop = ioloop.New()
	r.done = make(chan struct{})
	loop, fresh := r.loop, r.done
	r.mu.Unlock()

	r.closed.Store(false)
	r.launch(loop, fresh)
	r.met.LoopRestarted()
	r.log.Info("reactor restarted")
}
