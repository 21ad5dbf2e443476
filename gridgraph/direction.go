package gridgraph

import "fmt"

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// String returns the upper-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Delta returns the row and column offsets of one step in direction d.
// An invalid direction yields (0, 0).
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the direction facing back at d.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}

	return (d + 2) % 4
}

// Move returns the point one step away from p in direction d.
// The result may lie outside any particular grid.
func (p GridPoint) Move(d Direction) GridPoint {
	dr, dc := d.Delta()

	return GridPoint{Row: p.Row + dr, Column: p.Column + dc}
}

// DirectionTo returns the direction leading from p to an orthogonally adjacent q.
// ok is false when q is not adjacent to p.
func (p GridPoint) DirectionTo(q GridPoint) (Direction, bool) {
	for _, d := range Directions {
		if p.Move(d) == q {
			return d, true
		}
	}

	return 0, false
}

// String formats p as "(row,column)".
func (p GridPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}
