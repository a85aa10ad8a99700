package tpool

import (
	"fmt"
	"strings"
)

// Sentinel errors returned by Pool. Wrap with errors.Is/As via PoolError.
var (
	// ErrRejected is returned by Submit/SubmitEmpty once the pool has begun
	// shutting down. Submission after shutdown is an expected race, not a
	// caller bug, so it is a plain sentinel rather than a panic.
	ErrRejected = &PoolError{msg: "pool: submission rejected, pool is shut down"}

	// ErrInvalidConfig is returned by New when 1 <= minThreads <= maxThreads
	// doesn't hold, maxConcurrency is 0, or an Option sets a non-positive
	// dispatchTimeout/maintPeriod or a negative maxIdleThreads/
	// maxThreadsDispatchTimeout.
	ErrInvalidConfig = &PoolError{msg: "pool: invalid configuration"}

	// ErrNilCallback is returned by New when no callback was supplied.
	ErrNilCallback = &PoolError{msg: "pool: callback must not be nil"}

	// ErrQueueCreate is returned by New when the underlying completion
	// queue could not be created (construction error, spec-mandated to
	// propagate to the caller).
	ErrQueueCreate = &PoolError{msg: "pool: completion queue creation failed"}
)

// PoolError is the error type returned for all pool-level failures. It wraps
// an optional underlying error so callers can use errors.Is/errors.As while
// still getting a readable message.
type PoolError struct {
	msg string
	err error
}

func (e *PoolError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap exposes the wrapped error for errors.Is/errors.As.
func (e *PoolError) Unwrap() error {
	return e.err
}

// Is lets errors.Is match a PoolError built by wrapConfigErr or wrapQueueErr
// against the sentinel whose message it carries or extends, so an Option
// validation failure matches ErrInvalidConfig and a queue creation failure
// matches ErrQueueCreate.
func (e *PoolError) Is(target error) bool {
	t, ok := target.(*PoolError)
	if !ok || t.err != nil {
		return false
	}
	return e.msg == t.msg || strings.HasPrefix(e.msg, t.msg+":")
}

func wrapConfigErr(msg string) error {
	return &PoolError{msg: "pool: invalid configuration: " + msg}
}

func wrapQueueErr(err error) error {
	return &PoolError{msg: "pool: completion queue creation failed", err: err}
}
