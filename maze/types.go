// Package maze defines the generator states, observer contract, options and
// sentinel errors of the perfect-maze generator.
package maze

import (
	"errors"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Sentinel errors returned by the Generator.
var (
	// ErrInvalidState indicates an operation called in the wrong lifecycle state.
	ErrInvalidState = errors.New("maze: operation not allowed in current state")
	// ErrBadDimensions indicates rows or columns below one.
	ErrBadDimensions = errors.New("maze: rows and columns must be at least 1")
	// ErrNotPerfect indicates a carved maze that is disconnected or has a cycle.
	ErrNotPerfect = errors.New("maze: not a perfect maze")
)

// State is the lifecycle position of a Generator.
type State int

const (
	// StateUninitialized means no walls have been carved since the last Initialize
	// (or Initialize has never been called).
	StateUninitialized State = iota
	// StateGenerating means Generate is running or aborted with an error.
	StateGenerating
	// StateReady means the maze is fully carved and can be solved.
	StateReady
	// StateSolving means Solve is running.
	StateSolving
	// StateSolved means a solution has been reported.
	StateSolved
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateGenerating:
		return "generating"
	case StateReady:
		return "ready"
	case StateSolving:
		return "solving"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// Observer receives generation and solution events, synchronously and in order,
// on the goroutine that called Generate or Solve.
type Observer interface {
	// OnWallRemoved reports that the dir side of cell (row, col) was carved open.
	OnWallRemoved(row, col int, dir gridgraph.Direction)
	// OnPathCellVisited reports one solution cell, entrance first.
	OnPathCellVisited(row, col int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	WallRemoved     func(row, col int, dir gridgraph.Direction)
	PathCellVisited func(row, col int)
}

// OnWallRemoved calls f.WallRemoved when set.
func (f ObserverFuncs) OnWallRemoved(row, col int, dir gridgraph.Direction) {
	if f.WallRemoved != nil {
		f.WallRemoved(row, col, dir)
	}
}

// OnPathCellVisited calls f.PathCellVisited when set.
func (f ObserverFuncs) OnPathCellVisited(row, col int) {
	if f.PathCellVisited != nil {
		f.PathCellVisited(row, col)
	}
}

// Observers fans each event out to every member in slice order.
type Observers []Observer

// OnWallRemoved forwards to every observer.
func (obs Observers) OnWallRemoved(row, col int, dir gridgraph.Direction) {
	for _, o := range obs {
		o.OnWallRemoved(row, col, dir)
	}
}

// OnPathCellVisited forwards to every observer.
func (obs Observers) OnPathCellVisited(row, col int) {
	for _, o := range obs {
		o.OnPathCellVisited(row, col)
	}
}

// Passage is an open wall between two adjacent cells, listed once from the
// lower cell id. Dir is the side of From that was opened.
type Passage struct {
	From gridgraph.GridPoint
	To   gridgraph.GridPoint
	Dir  gridgraph.Direction
}

// Option configures a Generator.
type Option func(*Generator)

// WithObserver sets the event observer. Nil restores the no-op observer.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		if o == nil {
			o = ObserverFuncs{}
		}
		g.observer = o
	}
}

// WithRand sets the random source used to pick directions.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed makes generation deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
