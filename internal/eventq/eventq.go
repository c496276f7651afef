// Package eventq is a fixed-slot FIFO used to hand input actions from the
// input handlers to the frame step. It never allocates after construction.
package eventq

// Slots is the queue capacity.
const Slots = 64

// Queue is a single-goroutine ring buffer. Push fails when full; the caller
// decides whether to drop.
type Queue[T any] struct {
	head  uint32
	tail  uint32
	slots [Slots]T
}

// Push enqueues v, returning false if the queue is full.
func (q *Queue[T]) Push(v T) bool {
	if q.head-q.tail >= Slots {
		return false
	}
	q.slots[q.head%Slots] = v
	q.head++
	return true
}

// Pop dequeues the oldest value, returning false if empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.tail == q.head {
		return zero, false
	}
	v := q.slots[q.tail%Slots]
	q.slots[q.tail%Slots] = zero
	q.tail++
	return v, true
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return int(q.head - q.tail) }

// Drain pops every queued value into fn in FIFO order.
func (q *Queue[T]) Drain(fn func(T)) int {
	n := 0
	for {
		v, ok := q.Pop()
		if !ok {
			return n
		}
		fn(v)
		n++
	}
}
