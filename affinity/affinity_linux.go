//go:build linux && cgo

// File: affinity/affinity_linux.go
//
// Linux implementation using pthread_setaffinity_np via cgo.

package affinity

/*
#define _GNU_SOURCE
#include <sched.h>
#include <pthread.h>
#include <errno.h>

int go_setaffinity(int cpu) {
	cpu_set_t set;
	CPU_ZERO(&set);
	CPU_SET(cpu, &set);
	return pthread_setaffinity_np(pthread_self(), sizeof(set), &set);
}

int go_clearaffinity(int ncpu) {
	cpu_set_t set;
	CPU_ZERO(&set);
	for (int i = 0; i < ncpu; i++) {
		CPU_SET(i, &set);
	}
	return pthread_setaffinity_np(pthread_self(), sizeof(set), &set);
}
*/
import "C"

import (
	"fmt"
	"runtime"
)

func pinPlatform(cpuID int) error {
	ret := C.go_setaffinity(C.int(cpuID))
	if ret != 0 {
		return fmt.Errorf("affinity: pthread_setaffinity_np failed, code %d", ret)
	}
	return nil
}

func unpinPlatform() {
	C.go_clearaffinity(C.int(runtime.NumCPU()))
}
