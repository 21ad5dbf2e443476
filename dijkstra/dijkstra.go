// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// It processes vertices in order of increasing distance using the stable
// linked-list priority queue from package pqueue, relaxing edges and writing
// distances and predecessors into the graph's vertices.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the queue
//     and ignoring entries whose vertex is already settled (Scratch != 0).
//   - Negative costs are detected as edges are traversed, so a negative edge
//     that the search never reaches does not fail the run.
//   - Equal-cost entries leave the queue in insertion order, which makes the
//     resulting tree deterministic.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/pqueue"
)

// Dijkstra computes shortest distances from start to every vertex of g and
// stores them in Vertex.Dist / Vertex.Prev.
//
// Preconditions and validation (in order):
//  1. start must be a vertex of g (ErrStartVertexNotFound).
//  2. No traversed edge may have a negative cost (ErrNegativeWeight).
//
// The run stops when the queue is empty or every vertex has been settled.
//
// Complexity:
//
//   - Time:  O(E · Q) where Q ≤ E is the queue length (linear insertion).
//   - Space: O(V + E)
func Dijkstra[T comparable](g *core.Graph[T], start T, opts ...Option[T]) error {
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := g.Vertex(start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	g.Reset()
	r := &runner[T]{
		options: cfg,
		total:   g.Order(),
		pq:      pqueue.New[*core.Vertex[T]](),
	}
	s.Dist = 0
	r.pq.Enqueue(s, 0)

	return r.process()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T comparable] struct {
	options Options[T]
	total   int // vertex count
	seen    int // settled vertices
	pq      *pqueue.Queue[*core.Vertex[T]]
}

// process is the core loop: pop the cheapest entry, settle it, relax its edges.
func (r *runner[T]) process() error {
	for !r.pq.IsEmpty() && r.seen < r.total {
		item, err := r.pq.Dequeue()
		if err != nil {
			return err
		}
		v := item.Value
		if v.Scratch != 0 {
			// stale entry
			continue
		}
		v.Scratch = 1
		r.seen++
		r.options.OnSettle(v.Name, v.Dist)

		if err := r.relax(v); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbour of the settled vertex v.
func (r *runner[T]) relax(v *core.Vertex[T]) error {
	for _, e := range v.Adj {
		w := e.Dest
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v cost=%d", ErrNegativeWeight, v.Name, w.Name, e.Cost)
		}
		if e.Cost > core.Infinity-v.Dist {
			// unreachable at any representable distance
			continue
		}
		if w.Dist > v.Dist+e.Cost {
			w.Dist = v.Dist + e.Cost
			w.Prev = v
			r.pq.Enqueue(w, w.Dist)
		}
	}

	return nil
}
