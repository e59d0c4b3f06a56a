// File: internal/ioloop/loop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Loop is a run-until-stopped executor of posted callables with FIFO
// ordering and graceful stop. Completion handlers of every endpoint object
// funnel through Post, so anything scheduled on a reactor runs on the single
// goroutine sitting in Run.

package ioloop

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/ioexec/api"
)

// Loop executes posted tasks on the goroutine that calls Run.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   *queue.Queue
	stopped bool
	running atomic.Bool
}

// New returns a Loop ready to accept posts. Tasks posted before Run starts
// are retained and executed once Run begins.
func New() *Loop {
	l := &Loop{tasks: queue.New()}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Post enqueues task for execution on the loop goroutine. It never blocks.
// Posting to a stopped loop returns api.ErrLoopStopped and drops the task.
func (l *Loop) Post(task func()) error {
	if task == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return api.ErrLoopStopped
	}
	l.tasks.Add(task)
	l.cond.Signal()
	return nil
}

// Run drains and executes tasks until Stop is called. It returns nil on a
// clean stop. A panicking task terminates the loop and is returned as the
// loop error; the loop is stopped so subsequent posts fail fast.
func (l *Loop) Run() error {
	if !l.running.CompareAndSwap(false, true) {
		return nil // already driven by another goroutine
	}
	for {
		l.mu.Lock()
		for l.tasks.Length() == 0 && !l.stopped {
			l.cond.Wait()
		}
		if l.stopped {
			l.mu.Unlock()
			return nil
		}
		task := l.tasks.Remove().(func())
		l.mu.Unlock()

		if err := l.invoke(task); err != nil {
			l.Stop()
			return err
		}
	}
}

func (l *Loop) invoke(task func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("loop task panicked: %v", rec)
		}
	}()
	task()
	return nil
}

// Stop signals Run to exit and rejects further posts. Tasks still queued at
// stop time are abandoned.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.cond.Broadcast()
	l.mu.Unlock()
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}

// Pending returns the count of tasks queued but not yet executed.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tasks.Length()
}
