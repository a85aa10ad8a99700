// Copyright (c) 2025

// Package queue provides the completion-queue abstraction the pool package
// schedules on: a FIFO packet queue with kernel-style thread-gating
// semantics. A real Windows I/O completion port backs it on windows; a
// portable channel/semaphore implementation backs it everywhere else.
package queue
