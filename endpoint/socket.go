// File: endpoint/socket.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// StreamSocket: an asynchronous stream connection whose completion handlers
// run on the owning reactor's loop thread. At most one read and one write
// may be outstanding at a time; the socket does not queue overlapping
// operations.

package endpoint

import (
	"context"
	"net"
	"sync"

	"github.com/momentics/ioexec/api"
)

// StreamSocket is a stream endpoint bound to a reactor loop. It is created
// unconnected; ConnectAsync establishes the connection. Once closed, a
// socket stays closed: a dial still in flight is closed on arrival instead
// of being stored.
type StreamSocket struct {
	exec   api.Executor
	dialer net.Dialer

	mu     sync.Mutex
	conn   net.Conn
	closed bool
}

// NewStreamSocket binds a fresh, unconnected socket to exec.
func NewStreamSocket(exec api.Executor) *StreamSocket {
	return &StreamSocket{exec: exec}
}

// post schedules a completion on the loop thread. Completions racing a
// reactor close are dropped by contract.
func (s *StreamSocket) post(fn func()) {
	_ = s.exec.Submit(fn)
}

// ConnectAsync dials network/addr and posts the completion to the loop
// thread. The dial itself runs off-loop so the loop is never blocked on
// connection establishment.
func (s *StreamSocket) ConnectAsync(ctx context.Context, network, addr string, fn func(error)) {
	go func() {
		conn, err := s.dialer.DialContext(ctx, network, addr)
		if err == nil {
			s.mu.Lock()
			if s.closed {
				// Close won the race with the dial: the fresh
				// connection must not outlive the socket.
				s.mu.Unlock()
				_ = conn.Close()
				s.post(func() { fn(net.ErrClosed) })
				return
			}
			s.conn = conn
			s.mu.Unlock()
		}
		s.post(func() { fn(err) })
	}()
}

// ReadAsync reads into buf and posts the completion with the byte count.
func (s *StreamSocket) ReadAsync(buf []byte, fn func(int, error)) {
	conn := s.Conn()
	if conn == nil {
		s.post(func() { fn(0, ErrNotConnected) })
		return
	}
	go func() {
		n, err := conn.Read(buf)
		s.post(func() { fn(n, err) })
	}()
}

// WriteAsync writes buf and posts the completion with the byte count.
func (s *StreamSocket) WriteAsync(buf []byte, fn func(int, error)) {
	conn := s.Conn()
	if conn == nil {
		s.post(func() { fn(0, ErrNotConnected) })
		return
	}
	go func() {
		n, err := conn.Write(buf)
		s.post(func() { fn(n, err) })
	}()
}

// Conn returns the established connection, or nil before ConnectAsync has
// completed successfully.
func (s *StreamSocket) Conn() net.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

// Close closes the underlying connection, unblocking any outstanding reads
// or writes, and marks the socket closed so an in-flight dial cannot
// resurrect it. Closing an unconnected socket is a no-op.
func (s *StreamSocket) Close() error {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.closed = true
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}
