package cli

import (
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/maze"
)

// built is a generated and optionally solved maze.
type built struct {
	gen  *maze.Generator
	path []gridgraph.GridPoint
	cost int64
}

// buildMaze generates a cfg-sized maze, reporting events to obs, and solves
// it when solve is set.
func (c *CLI) buildMaze(cfg config.Config, obs maze.Observer, solve bool) (*built, error) {
	opts := []maze.Option{maze.WithLogger(c.Logger), maze.WithObserver(obs)}
	if cfg.Seed != 0 {
		opts = append(opts, maze.WithSeed(cfg.Seed))
	}
	gen := maze.New(opts...)
	if err := gen.Initialize(cfg.Rows, cfg.Columns); err != nil {
		return nil, err
	}
	if err := gen.Generate(); err != nil {
		return nil, err
	}
	if err := gen.Verify(); err != nil {
		return nil, err
	}

	b := &built{gen: gen}
	if !solve {
		return b, nil
	}
	path, err := gen.Solve()
	if err != nil {
		return nil, err
	}
	b.path = path
	if cost, err := gen.Graph().Cost(gen.Grid().Size() - 1); err == nil {
		b.cost = cost
	}

	return b, nil
}
