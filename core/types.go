// Package core defines the generic Graph, Vertex and Edge types shared by the
// shortest-path algorithms (bfs, dijkstra) and the maze generator.
//
// This file declares the types, the +∞ distance sentinel, sentinel errors
// and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
package core

import (
	"errors"
	"math"
)

// Infinity is the distance of a vertex not (yet) reached by a search.
const Infinity int64 = math.MaxInt64

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("core: vertex not found")

// Edge is a directed, weighted arc to Dest.
type Edge[T comparable] struct {
	// Dest is the vertex this edge leads to.
	Dest *Vertex[T]

	// Cost is the caller-supplied weight (1 for maze passages).
	Cost int64
}

// Vertex is a node of the graph together with the scratch state written by
// the last shortest-path run.
//
// After bfs.Unweighted or dijkstra.Dijkstra, Dist and Prev form a shortest-path
// tree rooted at the source; unreachable vertices keep Dist == Infinity and a
// nil Prev.
type Vertex[T comparable] struct {
	// Name uniquely identifies this Vertex within its Graph.
	Name T

	// Adj lists outgoing edges in insertion order.
	Adj []Edge[T]

	// Dist is the best known distance from the last search source.
	Dist int64

	// Prev is the predecessor on the shortest path, nil for the source
	// and for unreachable vertices.
	Prev *Vertex[T]

	// Scratch marks vertices already settled by Dijkstra.
	Scratch int
}

// reset restores the pre-search state.
func (v *Vertex[T]) reset() {
	v.Dist = Infinity
	v.Prev = nil
	v.Scratch = 0
}

// Graph is an adjacency-list digraph keyed by vertex name.
//
// Vertices are created lazily by AddEdge and remembered in creation order so
// that every traversal of the graph is deterministic. A Graph is owned by a
// single goroutine; it has no internal locking.
type Graph[T comparable] struct {
	vertices map[T]*Vertex[T]
	order    []*Vertex[T]
	edges    int
}

// GraphOption configures a Graph before use.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	capacity int
}

// WithCapacity pre-sizes the vertex storage for n vertices.
func WithCapacity(n int) GraphOption {
	return func(cfg *graphConfig) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity).
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		vertices: make(map[T]*Vertex[T], cfg.capacity),
		order:    make([]*Vertex[T], 0, cfg.capacity),
	}
}
