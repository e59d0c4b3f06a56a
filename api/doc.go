// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api defines the small, stable contracts of the ioexec library:
// work submission, graceful shutdown, close-timeout sentinels, and the
// sentinel errors shared across packages.
package api
