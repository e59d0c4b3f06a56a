// File: endpoint/tlsstream_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package endpoint_test

import (
	"context"
	"crypto/tls"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/ioexec/endpoint"
)

func TestEncryptedStreamWrapsConnectedSocket(t *testing.T) {
	r := newReactor(t)
	ln := echoListener(t)

	sock, err := r.NewStreamSocket()
	require.NoError(t, err)
	defer sock.Close()

	connected := make(chan error, 1)
	sock.ConnectAsync(context.Background(), "tcp", ln.Addr().String(),
		func(err error) { connected <- err })
	select {
	case err := <-connected:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("connect never completed")
	}

	// Construction only: no handshake happens here, so a plain echo peer
	// is a perfectly fine counterpart.
	stream, err := r.NewEncryptedStream(sock, &tls.Config{InsecureSkipVerify: true})
	require.NoError(t, err)
	require.NotNil(t, stream.Conn())
	require.NoError(t, stream.Close())
}

func TestEncryptedStreamRequiresConnectedSocket(t *testing.T) {
	r := newReactor(t)

	sock, err := r.NewStreamSocket()
	require.NoError(t, err)

	_, err = r.NewEncryptedStream(sock, &tls.Config{})
	require.ErrorIs(t, err, endpoint.ErrNotConnected)
}

func TestEncryptedStreamRequiresConfig(t *testing.T) {
	r := newReactor(t)

	sock, err := r.NewStreamSocket()
	require.NoError(t, err)

	_, err = r.NewEncryptedStream(sock, nil)
	require.Error(t, err)
}
