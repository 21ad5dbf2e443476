// Package bfs computes single-source shortest paths under the fewest-edges
// metric, writing the result into the Dist and Prev fields of every vertex
// of a core.Graph.
//
// The search is deterministic: a FIFO queue and adjacency-list order fix
// both the visit order and which of several equal-length predecessors wins.
package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/labyrinth/core"
)

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	opts  Options[T]
	queue *queue.Queue[*core.Vertex[T]]
}

// Unweighted runs breadth-first search on g from start.
//
// Every vertex is reset first; then start gets Dist 0 and each newly
// discovered neighbour gets Dist = current.Dist + 1 and Prev = current.
// A vertex is enqueued at most once (only while its Dist is still
// core.Infinity). Edge costs are ignored.
//
// Returns ErrStartVertexNotFound if start is not in g.
//
// Complexity: O(V + E) time, O(V) space.
func Unweighted[T comparable](g *core.Graph[T], start T, opts ...Option[T]) error {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := g.Vertex(start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	g.Reset()
	w := &walker[T]{opts: o, queue: queue.New[*core.Vertex[T]]()}
	s.Dist = 0
	w.queue.Enqueue(s)
	w.loop()

	return nil
}

// loop processes the queue until empty.
func (w *walker[T]) loop() {
	for !w.queue.Empty() {
		v := w.queue.Dequeue()
		w.opts.OnVisit(v.Name, v.Dist)
		for _, e := range v.Adj {
			next := e.Dest
			if next.Dist != core.Infinity {
				continue
			}
			next.Dist = v.Dist + 1
			next.Prev = v
			w.queue.Enqueue(next)
		}
	}
}
