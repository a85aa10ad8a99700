//go:build windows

// File: queue/queue_windows.go
//
// Windows I/O completion port backend. Concurrency is enforced by the
// kernel itself: NumberOfConcurrentThreads is passed straight through to
// CreateIoCompletionPort, so GetQueuedCompletionStatus only releases that
// many waiting threads at once, exactly as spec'd for the completion-queue
// abstraction. Payloads ride in a sync.Map keyed by a monotonically
// increasing ticket posted as the completion key; Go's GC already keeps the
// payload alive, so — unlike the pinned-pointer source pattern — no manual
// pin/unpin step is needed.

package queue

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sys/windows"
)

func newPlatformQueue(concurrency uint32) (Queue, error) {
	return newIOCPQueue(concurrency)
}

type iocpQueue struct {
	port     windows.Handle
	payloads sync.Map // ticket (uint64) -> any
	ticket   uint64
	closed   atomic.Bool
	closeMu  sync.Once
}

func newIOCPQueue(concurrency uint32) (*iocpQueue, error) {
	port, err := windows.CreateIoCompletionPort(windows.InvalidHandle, 0, 0, concurrency)
	if err != nil {
		return nil, err
	}
	return &iocpQueue{port: port}, nil
}

func (q *iocpQueue) Post(key Key, payload any) error {
	if q.closed.Load() {
		return ErrClosed
	}
	ticket := atomic.AddUint64(&q.ticket, 1)
	q.payloads.Store(ticket, payload)
	// qty carries the caller's control key; the completion key carries the
	// payload ticket, since qty is only a uint32 and a ticket needs the
	// full uintptr width.
	if err := windows.PostQueuedCompletionStatus(q.port, uint32(key), uintptr(ticket), nil); err != nil {
		q.payloads.Delete(ticket)
		return err
	}
	return nil
}

func (q *iocpQueue) Wait(timeout time.Duration) (Packet, Done, error) {
	ms := uint32(windows.INFINITE)
	if timeout > 0 {
		ms = uint32(timeout / time.Millisecond)
	}

	var bytes uint32
	var key uintptr
	var overlapped *windows.Overlapped

	err := windows.GetQueuedCompletionStatus(q.port, &bytes, &key, &overlapped, ms)
	if err != nil {
		if q.closed.Load() {
			return Packet{}, nil, ErrClosed
		}
		if err == windows.WAIT_TIMEOUT {
			return Packet{}, nil, ErrTimeout
		}
		return Packet{}, nil, err
	}

	_ = overlapped
	ticket := uint64(key)
	val, _ := q.payloads.LoadAndDelete(ticket)

	release := func() {
		// The Windows backend's concurrency slot is released by the kernel
		// itself the moment GetQueuedCompletionStatus hands the packet
		// back; Done exists only to satisfy the Queue interface
		// symmetrically with the portable backend.
	}
	return Packet{Key: Key(bytes), Payload: val}, release, nil
}

func (q *iocpQueue) Close() error {
	q.closeMu.Do(func() {
		q.closed.Store(true)
		windows.CloseHandle(q.port)
	})
	return nil
}
