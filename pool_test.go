package tpool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_RejectsBadConfig(t *testing.T) {
	if _, err := New(1, 1, 1, nil); err != ErrNilCallback {
		t.Errorf("expected ErrNilCallback, got %v", err)
	}
	if _, err := New(1, 0, 1, func(any) {}); err == nil {
		t.Errorf("expected error for minThreads=0")
	}
	if _, err := New(1, 4, 2, func(any) {}); err == nil {
		t.Errorf("expected error for minThreads>maxThreads")
	}
	if _, err := New(0, 1, 1, func(any) {}); err == nil {
		t.Errorf("expected error for maxConcurrency=0")
	}
}

func TestSubmit_RunsCallback(t *testing.T) {
	var got atomic.Int64
	var wg sync.WaitGroup
	wg.Add(1)

	p, err := New(4, 1, 2, func(payload any) {
		got.Store(int64(payload.(int)))
		wg.Done()
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Shutdown()

	if err := p.Submit(42); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	wg.Wait()
	if got.Load() != 42 {
		t.Errorf("expected callback to observe 42, got %d", got.Load())
	}
}

func TestSubmit_RejectedAfterShutdown(t *testing.T) {
	p, err := New(2, 1, 1, func(any) {})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.Shutdown()

	if err := p.Submit("x"); err != ErrRejected {
		t.Errorf("expected ErrRejected after shutdown, got %v", err)
	}
}

func TestShutdown_Idempotent(t *testing.T) {
	p, err := New(2, 1, 1, func(any) {})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.Shutdown()
	p.Shutdown()
	if p.CurrentThreads() != 0 {
		t.Errorf("expected 0 threads after shutdown, got %d", p.CurrentThreads())
	}
}

func TestScaleUp_UnderSustainedLoad(t *testing.T) {
	block := make(chan struct{})
	started := make(chan struct{}, 16)

	p, err := New(16, 1, 4, func(any) {
		started <- struct{}{}
		<-block
	}, WithDispatchTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() {
		close(block)
		p.Shutdown()
	}()

	for i := 0; i < 4; i++ {
		if err := p.Submit(i); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	deadline := time.After(2 * time.Second)
	for n := 0; n < 4; n++ {
		select {
		case <-started:
		case <-deadline:
			t.Fatalf("timed out waiting for worker %d to start", n)
		}
	}

	if got := p.CurrentThreads(); got < 4 {
		t.Errorf("expected pool to have scaled to at least 4 threads, got %d", got)
	}
}

func TestStats_ReflectsSubmissions(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(3)
	p, err := New(4, 1, 2, func(any) { wg.Done() })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Shutdown()

	for i := 0; i < 3; i++ {
		if err := p.Submit(i); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	wg.Wait()

	st := p.Stats()
	if st.Submitted != 3 {
		t.Errorf("expected Submitted=3, got %d", st.Submitted)
	}
	if !st.Healthy {
		t.Errorf("expected pool to report healthy")
	}
}

func TestCallback_PanicIsContained(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	p, err := New(4, 1, 1, func(any) {
		defer wg.Done()
		panic("boom")
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Shutdown()

	if err := p.Submit(nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	wg.Wait()

	time.Sleep(20 * time.Millisecond)
	if p.CurrentThreads() == 0 {
		t.Errorf("expected worker to survive a panicking callback")
	}
}
