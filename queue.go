package async

import "github.com/gammazero/deque"

// Queue is a bounded FIFO connecting coroutines. Push and Pop are
// await conditions: a full queue blocks producers, an empty queue
// blocks consumers. A capacity of zero means unbounded, in which
// case Push never blocks.
type Queue[T any] struct {
	noCopy noCopy
	cap    int
	d      deque.Deque[T]
}

// NewQueue returns a queue holding at most capacity elements, or
// unbounded if capacity is zero.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{cap: capacity}
}

// Push returns a condition that enqueues v once there is room.
func (q *Queue[T]) Push(v T) Cond {
	return func() bool {
		if q.cap > 0 && q.d.Len() >= q.cap {
			return false
		}
		q.d.PushBack(v)
		return true
	}
}

// Pop returns a condition that dequeues the oldest element into *dst
// once one is available. dst should point into a stack block so the
// value survives the await.
func (q *Queue[T]) Pop(dst *T) Cond {
	return func() bool {
		if q.d.Len() == 0 {
			return false
		}
		*dst = q.d.PopFront()
		return true
	}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.d.Len()
}

// Cap returns the queue capacity, zero meaning unbounded.
func (q *Queue[T]) Cap() int {
	return q.cap
}
