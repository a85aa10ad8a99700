package queue

import (
	"testing"
	"time"
)

func TestPostWait_FIFO(t *testing.T) {
	q, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer q.Close()

	if err := q.Post(1, "a"); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if err := q.Post(2, "b"); err != nil {
		t.Fatalf("Post: %v", err)
	}

	pkt, done, err := q.Wait(time.Second)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if done != nil {
		done()
	}
	if pkt.Key != 1 || pkt.Payload != "a" {
		t.Errorf("expected first packet {1,a}, got {%v,%v}", pkt.Key, pkt.Payload)
	}

	pkt, done, err = q.Wait(time.Second)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if done != nil {
		done()
	}
	if pkt.Key != 2 || pkt.Payload != "b" {
		t.Errorf("expected second packet {2,b}, got {%v,%v}", pkt.Key, pkt.Payload)
	}
}

func TestWait_Timeout(t *testing.T) {
	q, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer q.Close()

	_, _, err = q.Wait(20 * time.Millisecond)
	if err != ErrTimeout {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestClose_WakesBlockedWait(t *testing.T) {
	q, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := make(chan error, 1)
	go func() {
		_, _, err := q.Wait(5 * time.Second)
		result <- err
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case err := <-result:
		if err != ErrClosed {
			t.Errorf("expected ErrClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not wake blocked Wait")
	}
}

func TestPost_FailsAfterClose(t *testing.T) {
	q, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	q.Close()

	if err := q.Post(1, nil); err != ErrClosed {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestConcurrencyGate(t *testing.T) {
	q, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer q.Close()

	for i := 0; i < 3; i++ {
		if err := q.Post(Key(i), i); err != nil {
			t.Fatalf("Post: %v", err)
		}
	}

	_, done1, err := q.Wait(time.Second)
	if err != nil {
		t.Fatalf("Wait 1: %v", err)
	}
	_, done2, err := q.Wait(time.Second)
	if err != nil {
		t.Fatalf("Wait 2: %v", err)
	}

	// Third slot is exhausted: a bounded wait must time out.
	if _, _, err := q.Wait(20 * time.Millisecond); err != ErrTimeout {
		t.Errorf("expected ErrTimeout with both slots held, got %v", err)
	}

	if done1 != nil {
		done1()
	}
	if done2 != nil {
		done2()
	}

	if _, _, err := q.Wait(time.Second); err != nil {
		t.Errorf("expected a slot to free up after Done, got %v", err)
	}
}
