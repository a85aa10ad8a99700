// Package tpool implements a per-instance, elastic worker pool whose
// scheduling substrate is a completion-queue primitive (an OS I/O completion
// port on Windows, a portable channel/semaphore equivalent elsewhere).
//
// A dedicated dispatcher goroutine owns submission order and forwards work
// into a concurrency-capped worker queue; a maintenance tick grows and
// shrinks the worker set between configured bounds. See the queue, affinity,
// control and auxqueue subpackages for the collaborators this package
// composes.
package tpool
