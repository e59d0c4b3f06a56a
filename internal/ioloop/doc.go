// File: internal/ioloop/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-threaded task loop underlying a reactor. One Loop instance is
// driven by exactly one Run call; a reactor restart builds a fresh Loop
// rather than rewinding an old one.
package ioloop
