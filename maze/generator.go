// Package maze carves perfect mazes over rectangular grids and solves them.
//
// Generation sweeps the cells in row-major order. Each cell draws a random
// direction and keeps redrawing while the drawn neighbour is out of bounds or
// already in the same disjoint-set component, giving up only when no
// direction leads to a different component. A successful draw unions the two
// components, adds a unit-cost passage both ways to the graph and reports the
// removed wall. Because a passage is only ever added between different
// components, the passages form a spanning tree of the grid: every cell is
// reachable from every other by exactly one path.
package maze

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/disjoint"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// passageCost is the edge cost of every carved passage.
const passageCost = 1

// Generator owns the disjoint set and graph of one maze.
// It is not safe for concurrent use.
type Generator struct {
	grid     gridgraph.Grid
	sets     *disjoint.DisjointSet
	graph    *core.Graph[int]
	state    State
	observer Observer
	rng      *rand.Rand
	logger   *log.Logger
}

// New returns a Generator in StateUninitialized. Initialize must be called
// before Generate.
func New(opts ...Option) *Generator {
	g := &Generator{
		observer: ObserverFuncs{},
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Initialize discards any previous maze and prepares an empty rows×columns
// grid: a fresh disjoint set of rows*columns singletons and an empty graph.
func (g *Generator) Initialize(rows, columns int) error {
	grid, err := gridgraph.NewGrid(rows, columns)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadDimensions, err)
	}
	g.grid = grid
	g.sets = disjoint.New(grid.Size())
	g.graph = core.NewGraph[int](core.WithCapacity(grid.Size()))
	g.state = StateUninitialized
	g.logger.Debug("maze initialized", "rows", rows, "columns", columns)

	return nil
}

// Generate carves the maze, calling OnWallRemoved once per opened wall.
// It requires a fresh Initialize. On error the carving stops where it is,
// already reported walls stay reported and the Generator must be
// re-initialized.
func (g *Generator) Generate() error {
	if g.sets == nil || g.state != StateUninitialized {
		return fmt.Errorf("%w: generate in state %s", ErrInvalidState, g.state)
	}
	g.state = StateGenerating

	var carved, skipped, redraws int
	for id := 0; id < g.grid.Size(); id++ {
		here, err := g.grid.Point(id)
		if err != nil {
			return err
		}

		dir := g.randomDirection()
		for {
			ok, err := g.valid(here, dir)
			if err != nil {
				return err
			}
			if ok {
				break
			}
			exit, err := g.hasValidExit(here)
			if err != nil {
				return err
			}
			if !exit {
				break
			}
			dir = g.randomDirection()
			redraws++
		}

		next, ok := g.grid.Neighbor(here, dir)
		if !ok {
			skipped++
			continue
		}
		joined, err := g.carve(here, next, dir)
		if err != nil {
			return err
		}
		if !joined {
			skipped++
			continue
		}
		carved++
	}

	g.state = StateReady
	g.logger.Debug("carving finished", "walls", carved, "skipped", skipped, "redraws", redraws)
	g.logger.Info("maze generated", "rows", g.grid.Rows, "columns", g.grid.Columns, "passages", carved)

	return nil
}

// randomDirection draws one of the four directions uniformly.
func (g *Generator) randomDirection() gridgraph.Direction {
	return gridgraph.Direction(g.rng.IntN(len(gridgraph.Directions)))
}

// valid reports whether moving from p in direction d reaches an in-bounds
// cell belonging to a different component.
func (g *Generator) valid(p gridgraph.GridPoint, d gridgraph.Direction) (bool, error) {
	q, ok := g.grid.Neighbor(p, d)
	if !ok {
		return false, nil
	}
	a, err := g.root(p)
	if err != nil {
		return false, err
	}
	b, err := g.root(q)
	if err != nil {
		return false, err
	}

	return a != b, nil
}

// hasValidExit reports whether any direction from p is valid.
func (g *Generator) hasValidExit(p gridgraph.GridPoint) (bool, error) {
	for _, d := range gridgraph.Directions {
		ok, err := g.valid(p, d)
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}

// carve joins the components of here and next and opens the wall between
// them. joined is false when the two cells already share a component.
func (g *Generator) carve(here, next gridgraph.GridPoint, dir gridgraph.Direction) (joined bool, err error) {
	a, err := g.root(here)
	if err != nil {
		return false, err
	}
	b, err := g.root(next)
	if err != nil {
		return false, err
	}
	if a == b {
		return false, nil
	}
	if err := g.sets.Union(a, b); err != nil {
		return false, err
	}

	u, _ := g.grid.ID(here)
	v, _ := g.grid.ID(next)
	g.graph.AddEdge(u, v, passageCost)
	g.graph.AddEdge(v, u, passageCost)
	g.observer.OnWallRemoved(here.Row, here.Column, dir)

	return true, nil
}

// root returns the component representative of the cell at p.
func (g *Generator) root(p gridgraph.GridPoint) (int, error) {
	id, err := g.grid.ID(p)
	if err != nil {
		return 0, err
	}

	return g.sets.Find(id)
}

// Graph returns the passage graph. Vertex names are row-major cell ids.
func (g *Generator) Graph() *core.Graph[int] { return g.graph }

// Grid returns the grid geometry of the current maze.
func (g *Generator) Grid() gridgraph.Grid { return g.grid }

// Rows returns the number of rows of the current maze.
func (g *Generator) Rows() int { return g.grid.Rows }

// Columns returns the number of columns of the current maze.
func (g *Generator) Columns() int { return g.grid.Columns }

// State returns the lifecycle state.
func (g *Generator) State() State { return g.state }
