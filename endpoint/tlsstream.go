// File: endpoint/tlsstream.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// EncryptedStream wraps an established stream socket with a TLS client
// layer bound to a caller-supplied configuration. Construction only: the
// handshake is driven by the caller through the stream's I/O, never here.

package endpoint

import (
	"crypto/tls"
	"fmt"

	"github.com/momentics/ioexec/api"
)

// EncryptedStream is a TLS wrapper over a connected StreamSocket, sharing
// the socket's loop for completion delivery.
type EncryptedStream struct {
	exec  api.Executor
	tconn *tls.Conn
}

// NewEncryptedStream wraps sock's connection with tls.Client against cfg.
// The socket must be connected; cfg must not be nil.
func NewEncryptedStream(sock *StreamSocket, cfg *tls.Config) (*EncryptedStream, error) {
	if cfg == nil {
		return nil, fmt.Errorf("encrypted stream: nil TLS config")
	}
	conn := sock.Conn()
	if conn == nil {
		return nil, fmt.Errorf("encrypted stream: %w", ErrNotConnected)
	}
	return &EncryptedStream{exec: sock.exec, tconn: tls.Client(conn, cfg)}, nil
}

// Conn returns the underlying TLS connection for the caller to drive.
func (e *EncryptedStream) Conn() *tls.Conn { return e.tconn }

// ReadAsync reads from the TLS layer and posts the completion to the loop
// thread. The first read triggers the handshake on the off-loop goroutine.
func (e *EncryptedStream) ReadAsync(buf []byte, fn func(int, error)) {
	go func() {
		n, err := e.tconn.Read(buf)
		_ = e.exec.Submit(func() { fn(n, err) })
	}()
}

// WriteAsync writes through the TLS layer and posts the completion.
func (e *EncryptedStream) WriteAsync(buf []byte, fn func(int, error)) {
	go func() {
		n, err := e.tconn.Write(buf)
		_ = e.exec.Submit(func() { fn(n, err) })
	}()
}

// Close closes the TLS connection and the transport beneath it.
func (e *EncryptedStream) Close() error {
	return e.tconn.Close()
}
