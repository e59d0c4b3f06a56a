// File: endpoint/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package endpoint

import "errors"

var (
	// ErrTimerCanceled is delivered to a pending wait handler when its
	// deadline timer is canceled before firing.
	ErrTimerCanceled = errors.New("deadline timer canceled")

	// ErrNotConnected indicates an operation that needs an established
	// connection was invoked on an unconnected socket.
	ErrNotConnected = errors.New("socket is not connected")
)
