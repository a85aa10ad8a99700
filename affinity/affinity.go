// File: affinity/affinity.go
//
// Platform-neutral CPU affinity for pool worker goroutines. Platform
// specifics live in affinity_linux.go / affinity_linux_nocgo.go /
// affinity_windows.go / affinity_other.go, selected by build tags.

package affinity

import "runtime"

// Pin locks the calling goroutine to its current OS thread and attempts to
// pin that thread to cpuID. Pinning is a placement hint for cache locality,
// never a correctness requirement: a failure here must not be treated as
// fatal by callers.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	if cpuID < 0 {
		return nil
	}
	return pinPlatform(cpuID)
}

// Unpin releases any affinity constraint set by Pin and unlocks the OS
// thread. Safe to call even if Pin was never called or failed.
func Unpin() {
	unpinPlatform()
	runtime.UnlockOSThread()
}

// NumCPU is a thin re-export so callers don't need a second import just to
// pick an affinity base.
func NumCPU() int {
	return runtime.NumCPU()
}
