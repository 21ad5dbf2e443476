// Package pqueue provides a stable, ordered priority queue used by Dijkstra.
//
// Items are kept in a doubly linked list sorted by ascending cost. A new item
// is inserted immediately before the first item whose cost is strictly
// greater than its own, so items of equal cost leave in insertion order.
// There is no decrease-key: callers push a fresh item and ignore stale ones.
//
// Complexity:
//
//   - Enqueue:        O(n) (linear scan for the insertion point).
//   - Dequeue / Peek: O(1).
package pqueue

import (
	"errors"

	"github.com/zyedidia/generic/list"
)

// ErrEmptyQueue is returned by Peek and Dequeue on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// Item pairs a value with its priority cost.
type Item[T any] struct {
	Value T
	Cost  int64
}

// Queue is a min-cost priority queue with FIFO tie-breaking.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	items *list.List[Item[T]]
	size  int
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{items: list.New[Item[T]]()}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Enqueue inserts v with the given cost, behind every queued item of equal cost.
func (q *Queue[T]) Enqueue(v T, cost int64) {
	item := Item[T]{Value: v, Cost: cost}
	q.size++

	at := q.items.Front
	for at != nil && at.Value.Cost <= cost {
		at = at.Next
	}
	switch {
	case at == nil:
		q.items.PushBack(item)
	case at.Prev == nil:
		q.items.PushFront(item)
	default:
		n := &list.Node[Item[T]]{Value: item, Prev: at.Prev, Next: at}
		at.Prev.Next = n
		at.Prev = n
	}
}

// Peek returns the minimum-cost item without removing it.
func (q *Queue[T]) Peek() (Item[T], error) {
	if q.size == 0 {
		return Item[T]{}, ErrEmptyQueue
	}

	return q.items.Front.Value, nil
}

// Dequeue removes and returns the minimum-cost item.
func (q *Queue[T]) Dequeue() (Item[T], error) {
	if q.size == 0 {
		return Item[T]{}, ErrEmptyQueue
	}
	front := q.items.Front
	q.items.Remove(front)
	q.size--

	return front.Value, nil
}

// Each calls fn for every item in dequeue order without consuming them.
func (q *Queue[T]) Each(fn func(Item[T])) {
	for n := q.items.Front; n != nil; n = n.Next {
		fn(n.Value)
	}
}
