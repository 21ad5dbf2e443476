// Package gridgraph provides the geometry of a rectangular maze grid:
//
//   - row-major cell ids and their (row, column) coordinates
//   - bounds checks and orthogonal neighbours
//   - conversion of the full 4-connected lattice to a *core.Graph[int]
//   - pixel wall segments for drawing surfaces
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// NewGrid constructs a Grid of the given size.
// Returns ErrEmptyGrid if rows or columns is below one.
func NewGrid(rows, columns int) (Grid, error) {
	if rows < 1 || columns < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, columns)
	}

	return Grid{Rows: rows, Columns: columns}, nil
}

// Size returns the number of cells.
func (gr Grid) Size() int {
	return gr.Rows * gr.Columns
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (gr Grid) InBounds(p GridPoint) bool {
	return p.Row >= 0 && p.Row < gr.Rows && p.Column >= 0 && p.Column < gr.Columns
}

// ID maps p to its row-major cell id: row*Columns + column.
// Complexity: O(1).
func (gr Grid) ID(p GridPoint) (int, error) {
	if !gr.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d", ErrCellIndex, p, gr.Rows, gr.Columns)
	}

	return p.Row*gr.Columns + p.Column, nil
}

// Point converts a row-major cell id back to its coordinate.
// Complexity: O(1).
func (gr Grid) Point(id int) (GridPoint, error) {
	if id < 0 || id >= gr.Size() {
		return GridPoint{}, fmt.Errorf("%w: id %d in %dx%d", ErrCellIndex, id, gr.Rows, gr.Columns)
	}

	return GridPoint{Row: id / gr.Columns, Column: id % gr.Columns}, nil
}

// Neighbor returns the cell adjacent to p in direction d.
// ok is false when d is invalid or the neighbour falls outside the grid.
func (gr Grid) Neighbor(p GridPoint, d Direction) (GridPoint, bool) {
	if !d.Valid() {
		return GridPoint{}, false
	}
	q := p.Move(d)

	return q, gr.InBounds(q)
}

// Exit returns the coordinate of the last cell in row-major order.
func (gr Grid) Exit() GridPoint {
	return GridPoint{Row: gr.Rows - 1, Column: gr.Columns - 1}
}

// ToCoreGraph builds the full 4-connected lattice as a directed graph with a
// unit-cost edge each way between orthogonal neighbours. Vertex names are cell
// ids; every cell is present even on a 1×1 grid.
// Complexity: O(R×C) time and memory.
func (gr Grid) ToCoreGraph() *core.Graph[int] {
	g := core.NewGraph[int](core.WithCapacity(gr.Size()))
	for id := 0; id < gr.Size(); id++ {
		g.AddVertex(id)
	}
	for r := 0; r < gr.Rows; r++ {
		for c := 0; c < gr.Columns; c++ {
			p := GridPoint{Row: r, Column: c}
			u := r*gr.Columns + c
			for _, d := range Directions {
				q, ok := gr.Neighbor(p, d)
				if !ok {
					continue
				}
				g.AddEdge(u, q.Row*gr.Columns+q.Column, 1)
			}
		}
	}

	return g
}
