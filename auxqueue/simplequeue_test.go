package auxqueue

import "testing"

func TestSimpleQueue_FIFO(t *testing.T) {
	q := NewSimpleQueue()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	if q.Len() != 3 {
		t.Errorf("expected len 3, got %d", q.Len())
	}

	for _, want := range []int{1, 2, 3} {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("expected Pop to succeed")
		}
		if got.(int) != want {
			t.Errorf("expected %d, got %v", want, got)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Errorf("expected Pop on empty queue to return false")
	}
}
