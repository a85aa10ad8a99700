//go:build !windows

// File: queue/queue_portable.go
//
// Portable completion-queue backend for platforms without an IOCP-style
// kernel primitive. FIFO ordering and storage come from eapache/queue's
// auto-growing ring buffer, guarded by a mutex; thread-gating comes from a
// counting semaphore sized to the concurrency cap, acquired before a packet
// is handed to a Wait caller and released by that caller's Done func — the
// Go equivalent of a thread re-entering GetQueuedCompletionStatus before it
// counts against the gate again.
//
// Post never blocks: the backing queue grows to hold whatever is posted,
// matching a real completion port, which has no notion of a full submission
// queue either (PostQueuedCompletionStatus only fails on a bad handle).

package queue

import (
	"sync"
	"time"

	equeue "github.com/eapache/queue"
)

func newPlatformQueue(concurrency uint32) (Queue, error) {
	return newPortableQueue(concurrency)
}

type portableQueue struct {
	mu     sync.Mutex
	items  *equeue.Queue
	notify chan struct{}

	tokens chan struct{}
	closed chan struct{}
	once   sync.Once
}

func newPortableQueue(concurrency uint32) (*portableQueue, error) {
	if concurrency == 0 {
		concurrency = 1
	}
	q := &portableQueue{
		items:  equeue.New(),
		notify: make(chan struct{}, 1),
		tokens: make(chan struct{}, concurrency),
		closed: make(chan struct{}),
	}
	for i := uint32(0); i < concurrency; i++ {
		q.tokens <- struct{}{}
	}
	return q, nil
}

func (q *portableQueue) Post(key Key, payload any) error {
	select {
	case <-q.closed:
		return ErrClosed
	default:
	}

	q.mu.Lock()
	q.items.Add(Packet{Key: key, Payload: payload})
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return nil
}

func (q *portableQueue) Wait(timeout time.Duration) (Packet, Done, error) {
	var timer *time.Timer
	var timeoutCh <-chan time.Time
	if timeout > 0 {
		timer = time.NewTimer(timeout)
		timeoutCh = timer.C
		defer timer.Stop()
	}

	select {
	case <-q.closed:
		return Packet{}, nil, ErrClosed
	case <-q.tokens:
	case <-timeoutCh:
		return Packet{}, nil, ErrTimeout
	}

	released := false
	release := func() {
		if released {
			return
		}
		released = true
		select {
		case q.tokens <- struct{}{}:
		case <-q.closed:
		}
	}

	for {
		q.mu.Lock()
		if q.items.Length() > 0 {
			pkt := q.items.Remove().(Packet)
			more := q.items.Length() > 0
			q.mu.Unlock()
			if more {
				// notify holds a single signal, so several Posts can leave
				// packets behind with only one waiter woken; pass the
				// wakeup on to the next waiter.
				select {
				case q.notify <- struct{}{}:
				default:
				}
			}
			return pkt, release, nil
		}
		q.mu.Unlock()

		select {
		case <-q.closed:
			release()
			return Packet{}, nil, ErrClosed
		case <-q.notify:
			// Something was posted; loop back and re-check under the
			// lock. A racing waiter may have taken it first, in which
			// case this just waits again.
		case <-timeoutCh:
			release()
			return Packet{}, nil, ErrTimeout
		}
	}
}

func (q *portableQueue) Close() error {
	q.once.Do(func() {
		close(q.closed)
	})
	return nil
}
