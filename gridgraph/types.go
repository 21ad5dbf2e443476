// Package gridgraph defines the coordinate, direction and sentinel error
// types shared by the maze generator and its renderers.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrCellIndex indicates a cell id or coordinate outside the grid.
	ErrCellIndex = errors.New("gridgraph: cell out of range")
	// ErrInvalidDirection indicates a Direction value other than Up, Right, Down or Left.
	ErrInvalidDirection = errors.New("gridgraph: invalid direction")
	// ErrSquareSize indicates a wall geometry square too small to draw.
	ErrSquareSize = errors.New("gridgraph: square size must be at least 2")
)

// Direction names one of the four sides of a cell.
// The numeric values match the order in which random directions are drawn.
type Direction int

const (
	// Up points to the previous row.
	Up Direction = iota
	// Right points to the next column.
	Right
	// Down points to the next row.
	Down
	// Left points to the previous column.
	Left
)

// Directions lists every direction in draw order.
var Directions = [...]Direction{Up, Right, Down, Left}

// DefaultSquareSize is the pixel edge of a cell in wall geometry.
const DefaultSquareSize = 20

// GridPoint is a (row, column) coordinate.
type GridPoint struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Grid describes an R×C orthogonal grid with row-major cell ids.
// It is immutable once built.
type Grid struct {
	Rows, Columns int
}

// Segment is a wall line in pixel space. X runs along columns, Y along rows.
type Segment struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}
