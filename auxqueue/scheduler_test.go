package auxqueue

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_BoundsConcurrency(t *testing.T) {
	s := NewScheduler(2)
	defer s.Close()

	var running, maxSeen atomic.Int64
	done := make(chan struct{})
	var count atomic.Int64

	for i := 0; i < 6; i++ {
		_ = s.Submit(func() {
			n := running.Add(1)
			for {
				old := maxSeen.Load()
				if n <= old || maxSeen.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			running.Add(-1)
			if count.Add(1) == 6 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks did not complete in time")
	}

	if maxSeen.Load() > 2 {
		t.Errorf("expected at most 2 concurrent tasks, saw %d", maxSeen.Load())
	}
}

func TestScheduler_RejectsAfterClose(t *testing.T) {
	s := NewScheduler(1)
	s.Close()
	if err := s.Submit(func() {}); err == nil {
		t.Errorf("expected Submit to fail after Close")
	}
}
