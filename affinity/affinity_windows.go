//go:build windows

// File: affinity/affinity_windows.go
//
// Windows implementation using SetThreadAffinityMask via golang.org/x/sys/windows.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

var (
	modkernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = modkernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread      = modkernel32.NewProc("GetCurrentThread")
)

func pinPlatform(cpuID int) error {
	handle, _, _ := procGetCurrentThread.Call()
	mask := uintptr(1) << uint(cpuID)
	old, _, err := procSetThreadAffinityMask.Call(handle, mask)
	if old == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask failed: %w", err)
	}
	return nil
}

func unpinPlatform() {
	handle, _, _ := procGetCurrentThread.Call()
	total := runtime.NumCPU()
	if total <= 0 {
		total = 1
	}
	mask := (uintptr(1) << uint(total)) - 1
	procSetThreadAffinityMask.Call(handle, mask)
}
