// Package disjoint defines sentinel errors for the disjoint-set (union-find)
// structure used to carve spanning-tree mazes.
package disjoint

import "errors"

// Sentinel errors returned by DisjointSet operations.
var (
	// ErrOutOfRange indicates an element id outside [0, Len()).
	ErrOutOfRange = errors.New("disjoint: element out of range")

	// ErrInvalidOperation indicates a Union whose arguments are not two
	// distinct roots.
	ErrInvalidOperation = errors.New("disjoint: invalid operation")
)
