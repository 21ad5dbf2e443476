// Package bfs provides tunable options and error definitions
// for breadth-first (unweighted) shortest paths over a core.Graph.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// ErrStartVertexNotFound is returned when the start vertex is absent.
// It wraps core.ErrVertexNotFound.
var ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex: %w", core.ErrVertexNotFound)

// Option configures Unweighted via functional arguments.
type Option[T comparable] func(*Options[T])

// Options holds callbacks to observe a search.
type Options[T comparable] struct {
	// OnVisit is called when a vertex is dequeued, with its distance
	// (in edges) from the start.
	OnVisit func(name T, dist int64)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		OnVisit: func(T, int64) {},
	}
}

// WithOnVisit registers a callback run for every dequeued vertex.
func WithOnVisit[T comparable](fn func(name T, dist int64)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
