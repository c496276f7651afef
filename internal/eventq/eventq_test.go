package eventq

import "testing"

func TestQueuePopEmpty(t *testing.T) {
	var q Queue[int]

	_, ok := q.Pop()
	if ok {
		t.Fatalf("Pop() ok = true, want false")
	}
}

func TestQueuePushFull(t *testing.T) {
	var q Queue[int]

	for i := 0; i < Slots; i++ {
		if ok := q.Push(i); !ok {
			t.Fatalf("Push() ok = false at slot %d, want true", i)
		}
	}
	if ok := q.Push(-1); ok {
		t.Fatalf("Push() ok = true when full, want false")
	}
	if q.Len() != Slots {
		t.Fatalf("Len() = %d, want %d", q.Len(), Slots)
	}

	for i := 0; i < Slots; i++ {
		v, ok := q.Pop()
		if !ok || v != i {
			t.Fatalf("Pop() = %d,%v at slot %d", v, ok, i)
		}
	}
}

func TestQueueWrapsAround(t *testing.T) {
	var q Queue[string]
	for round := 0; round < 3*Slots; round++ {
		q.Push("a")
		q.Push("b")
		if v, _ := q.Pop(); v != "a" {
			t.Fatalf("round %d: got %q want a", round, v)
		}
		if v, _ := q.Pop(); v != "b" {
			t.Fatalf("round %d: got %q want b", round, v)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d after balanced rounds", q.Len())
	}
}

func TestQueueDrainOrder(t *testing.T) {
	var q Queue[int]
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	var got []int
	if n := q.Drain(func(v int) { got = append(got, v) }); n != 5 {
		t.Fatalf("Drain() = %d, want 5", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got %v, want FIFO order", got)
		}
	}
}
