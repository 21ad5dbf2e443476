// Package dijkstra defines options and sentinel errors for Dijkstra's
// shortest-path algorithm on a core.Graph with non-negative edge costs.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	// It wraps core.ErrVertexNotFound.
	ErrStartVertexNotFound = fmt.Errorf("dijkstra: start vertex: %w", core.ErrVertexNotFound)

	// ErrNegativeWeight indicates that a traversed edge has a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Option represents a functional option for configuring Dijkstra.
type Option[T comparable] func(*Options[T])

// Options configures the behavior of a Dijkstra run.
type Options[T comparable] struct {
	// OnSettle is called once per vertex when its distance becomes final.
	OnSettle func(name T, dist int64)
}

// DefaultOptions returns Options with a no-op OnSettle hook.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		OnSettle: func(T, int64) {},
	}
}

// WithOnSettle registers a callback run when a vertex is settled.
func WithOnSettle[T comparable](fn func(name T, dist int64)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
