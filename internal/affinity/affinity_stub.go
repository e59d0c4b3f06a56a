//go:build !linux
// +build !linux

// File: internal/affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without a pure-Go affinity path.

package affinity

func platformPinCurrentThread(cpuID int) error {
	if cpuID < 0 {
		return nil
	}
	return ErrNotSupported
}

func platformThreadID() int {
	return -1
}
