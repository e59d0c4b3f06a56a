// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-size, lazily populated, round-robin pool of reactors. Callers that
// need an I/O execution context Acquire one; shutdown closes every reactor
// under a single aggregate timeout budget.
package pool
