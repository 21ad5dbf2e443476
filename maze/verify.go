package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Verify checks that the carved maze is perfect: the passages connect every
// cell to cell 0 and there are exactly rows*columns-1 of them, so no cycle
// exists. It reads the graph only and leaves search results untouched.
func (g *Generator) Verify() error {
	if g.state < StateReady {
		return fmt.Errorf("%w: verify in state %s", ErrInvalidState, g.state)
	}

	n := g.grid.Size()
	passages := g.Passages()
	if len(passages) != n-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrNotPerfect, len(passages), n)
	}

	reached := mapset.New[int]()
	reached.Put(0)
	pending := queue.New[int]()
	pending.Enqueue(0)
	for !pending.Empty() {
		id := pending.Dequeue()
		v, err := g.graph.Vertex(id)
		if err != nil {
			// cell without passages
			continue
		}
		for _, e := range v.Adj {
			if !reached.Has(e.Dest.Name) {
				reached.Put(e.Dest.Name)
				pending.Enqueue(e.Dest.Name)
			}
		}
	}
	if reached.Size() != n {
		return fmt.Errorf("%w: %d of %d cells reachable from the entrance", ErrNotPerfect, reached.Size(), n)
	}

	return nil
}

// Passages lists every open wall once, ordered by the lower cell id and then
// by carving order.
func (g *Generator) Passages() []Passage {
	if g.graph == nil {
		return nil
	}

	type pair struct{ u, v int }
	seen := mapset.New[pair]()
	var out []Passage
	for id := 0; id < g.grid.Size(); id++ {
		v, err := g.graph.Vertex(id)
		if err != nil {
			continue
		}
		from, _ := g.grid.Point(id)
		for _, e := range v.Adj {
			if e.Dest.Name < id {
				continue
			}
			key := pair{id, e.Dest.Name}
			if seen.Has(key) {
				continue
			}
			seen.Put(key)
			to, _ := g.grid.Point(e.Dest.Name)
			dir, _ := from.DirectionTo(to)
			out = append(out, Passage{From: from, To: to, Dir: dir})
		}
	}

	return out
}

// Open reports whether the dir side of cell (row, col) has been carved.
// Boundary sides are never open.
func (g *Generator) Open(row, col int, dir gridgraph.Direction) bool {
	if g.graph == nil {
		return false
	}
	here := gridgraph.GridPoint{Row: row, Column: col}
	next, ok := g.grid.Neighbor(here, dir)
	if !ok {
		return false
	}
	u, _ := g.grid.ID(here)
	w, _ := g.grid.ID(next)
	v, err := g.graph.Vertex(u)
	if err != nil {
		return false
	}
	for _, e := range v.Adj {
		if e.Dest.Name == w {
			return true
		}
	}

	return false
}
