package auxqueue

import (
	"sync"

	"github.com/eapache/queue"
)

// SimpleQueue is a single-consumer FIFO work queue: any number of producers
// may call Push concurrently, but only one goroutine may call Pop at a time
// (the ring buffer inside eapache/queue is not itself safe for concurrent
// readers). Push is mutex-guarded to serialize producers against the
// consumer's Pop/Len.
type SimpleQueue struct {
	mu    sync.Mutex
	items *queue.Queue
}

// NewSimpleQueue creates an empty single-consumer queue.
func NewSimpleQueue() *SimpleQueue {
	return &SimpleQueue{items: queue.New()}
}

// Push enqueues a value. Safe for concurrent producers.
func (q *SimpleQueue) Push(v any) {
	q.mu.Lock()
	q.items.Add(v)
	q.mu.Unlock()
}

// Pop removes and returns the oldest value, or (nil, false) if empty. Must
// only be called from the single consumer goroutine.
func (q *SimpleQueue) Pop() (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.items.Length() == 0 {
		return nil, false
	}
	return q.items.Remove(), true
}

// Len returns the current number of queued items.
func (q *SimpleQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}
