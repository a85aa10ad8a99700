package queue

import (
	"errors"
	"time"
)

// ErrTimeout is returned by Wait when no packet arrived within the timeout.
var ErrTimeout = errors.New("queue: wait timed out")

// ErrClosed is returned by Post/Wait once Close has been called.
var ErrClosed = errors.New("queue: queue is closed")

// Key is the small control-channel integer carried alongside a payload,
// used by callers to distinguish ordinary packets from sentinels.
type Key uint32

// Packet is the unit handed back by Wait: a key plus the opaque payload
// handed to Post.
type Packet struct {
	Key     Key
	Payload any
}

// Done must be called exactly once after a caller has finished processing a
// Packet returned by Wait. It is the Go analogue of a thread re-entering
// GetQueuedCompletionStatus: until Done is called, that thread's
// concurrency slot stays occupied.
type Done func()

// Queue is the completion-queue contract from the pool's dispatch/worker
// pipeline: create with a concurrency cap, post payloads non-blockingly,
// wait for the head packet (gated so that at most `concurrency` callers are
// ever mid-processing at once), and close to release the underlying
// resources.
type Queue interface {
	// Post enqueues a packet. Non-blocking; preserves FIFO order relative
	// to other Post calls. Returns ErrClosed after Close.
	Post(key Key, payload any) error

	// Wait blocks up to timeout for the head packet. A timeout <= 0 means
	// wait forever. Returns ErrTimeout on expiry, ErrClosed once the queue
	// has been closed (including while a Wait call is blocked). The
	// returned Done must be invoked once the caller is finished with the
	// packet — see Done's doc comment.
	Wait(timeout time.Duration) (Packet, Done, error)

	// Close releases the queue. Any blocked Wait call wakes with ErrClosed.
	// Idempotent.
	Close() error
}

// New creates a completion queue gated to at most `concurrency` simultaneous
// in-flight Wait callers. The backend is platform-selected: a real I/O
// completion port on windows, a portable channel/semaphore queue elsewhere.
func New(concurrency uint32) (Queue, error) {
	return newPlatformQueue(concurrency)
}
