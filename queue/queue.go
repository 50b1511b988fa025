// Package queue provides a mutex-guarded FIFO for cross-goroutine handoff
package queue

import "sync"

const minCapacity = 16

// Queue is an unbounded FIFO ring buffer
// Thread-Safety:
//   - Push: any number of producers
//   - Pop: any number of consumers, non-blocking
//
// Capacity doubles when full and is kept a power of two so indices wrap with a mask
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
	head  int // index of the oldest item
	count int
}

// New creates an empty queue
func New[T any]() *Queue[T] {
	return &Queue[T]{items: make([]T, minCapacity)}
}

// Push appends v at the tail
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items == nil {
		q.items = make([]T, minCapacity)
	}
	if q.count == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.count)&(len(q.items)-1)] = v
	q.count++
}

// Pop removes and returns the oldest item; ok is false when the queue is empty
func (q *Queue[T]) Pop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return v, false
	}
	var zero T
	v = q.items[q.head]
	q.items[q.head] = zero // release references held by the slot
	q.head = (q.head + 1) & (len(q.items) - 1)
	q.count--
	return v, true
}

// Len returns the number of pending items
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Empty reports whether no items are pending
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Clear drops all pending items
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	clear(q.items)
	q.head = 0
	q.count = 0
}

// grow doubles capacity, unwrapping items so head moves to 0
func (q *Queue[T]) grow() {
	next := make([]T, len(q.items)*2)
	n := copy(next, q.items[q.head:])
	copy(next[n:], q.items[:q.head])
	q.items = next
	q.head = 0
}
