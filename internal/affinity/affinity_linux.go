//go:build linux
// +build linux

// File: internal/affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation on sched_setaffinity(2) and gettid(2) via x/sys,
// avoiding the cgo/libnuma route so the module builds without a C toolchain.

package affinity

import "golang.org/x/sys/unix"

func platformPinCurrentThread(cpuID int) error {
	if cpuID < 0 {
		return nil
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	// Pid 0 targets the calling thread.
	return unix.SchedSetaffinity(0, &set)
}

func platformThreadID() int {
	return unix.Gettid()
}
