// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides the managed asynchronous I/O execution context:
// a handle owning exactly one background loop thread, endpoint factories
// bound to that loop, work submission, idempotent bounded-wait close, and
// restart-based failure recovery.
package reactor
