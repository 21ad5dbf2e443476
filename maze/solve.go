package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Solve finds the fewest-step route from the entrance (0,0) to the exit
// (rows-1, columns-1), reports each cell on it through OnPathCellVisited in
// entrance-to-exit order and returns it.
//
// If the exit cannot be reached no cell is reported and the returned path is
// empty; this is not an error. A generated maze never hits that case.
func (g *Generator) Solve() ([]gridgraph.GridPoint, error) {
	if g.state != StateReady && g.state != StateSolved {
		return nil, fmt.Errorf("%w: solve in state %s", ErrInvalidState, g.state)
	}
	g.state = StateSolving

	path, err := g.shortestPath()
	if err != nil {
		g.state = StateReady
		return nil, err
	}
	for _, p := range path {
		g.observer.OnPathCellVisited(p.Row, p.Column)
	}

	g.state = StateSolved
	g.logger.Info("maze solved", "cells", len(path), "cost", max(len(path)-1, 0))

	return path, nil
}

// shortestPath runs the search and converts the id path to coordinates.
func (g *Generator) shortestPath() ([]gridgraph.GridPoint, error) {
	if g.grid.Size() == 1 {
		return []gridgraph.GridPoint{{}}, nil
	}

	exit := g.grid.Size() - 1
	if !g.graph.HasVertex(0) || !g.graph.HasVertex(exit) {
		g.logger.Warn("exit unreachable", "exit", exit)
		return nil, nil
	}
	if err := bfs.Unweighted(g.graph, 0); err != nil {
		return nil, err
	}
	ids, ok, err := g.graph.Path(exit)
	if err != nil {
		return nil, err
	}
	if !ok {
		g.logger.Warn("exit unreachable", "exit", exit)
		return nil, nil
	}

	path := make([]gridgraph.GridPoint, 0, len(ids))
	for _, id := range ids {
		p, err := g.grid.Point(id)
		if err != nil {
			return nil, err
		}
		path = append(path, p)
	}

	return path, nil
}
