// File: endpoint/resolver.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package endpoint

import (
	"context"
	"net"
	"net/netip"

	"github.com/momentics/ioexec/api"
)

// Resolver performs name resolution off-loop and delivers results on the
// owning reactor's loop thread.
type Resolver struct {
	exec api.Executor
	res  *net.Resolver
}

// NewResolver binds a resolver to exec using the platform resolver.
func NewResolver(exec api.Executor) *Resolver {
	return &Resolver{exec: exec, res: net.DefaultResolver}
}

// ResolveAsync looks up host and posts the completion to the loop thread.
// ctx bounds the lookup, not the completion delivery.
func (rv *Resolver) ResolveAsync(ctx context.Context, host string, fn func([]netip.Addr, error)) {
	go func() {
		addrs, err := rv.res.LookupNetIP(ctx, "ip", host)
		_ = rv.exec.Submit(func() { fn(addrs, err) })
	}()
}
