// File: logging/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package logging provides structured, diagnostic-only logging for ioexec
// on top of zap. Log emission never affects control flow: reactors log loop
// start, exit, errors and restarts, and nothing more.
package logging
