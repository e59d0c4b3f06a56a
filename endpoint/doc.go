// File: endpoint/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package endpoint provides the network objects bound to a reactor loop:
// stream sockets, name resolvers, deadline timers, and encrypted stream
// wrappers. Blocking I/O runs off-loop; every completion handler is posted
// back so it executes on the single loop thread of the owning reactor.
//
// If the reactor closes while an operation is in flight, its completion is
// dropped silently: the handler is simply never invoked.
package endpoint
