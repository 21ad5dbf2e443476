package gridgraph

import "fmt"

// WallSegment returns the pixel line covering the dir side of cell (row, col)
// when each cell is drawn as a size×size square whose top-left corner is at
// (col*size, row*size). The segment excludes both corner pixels so that erasing
// it leaves the neighbouring walls' corners intact.
func WallSegment(row, col int, dir Direction, size int) (Segment, error) {
	if size < 2 {
		return Segment{}, fmt.Errorf("%w: %d", ErrSquareSize, size)
	}
	switch dir {
	case Up:
		return Segment{X1: col*size + 1, Y1: row * size, X2: (col+1)*size - 1, Y2: row * size}, nil
	case Right:
		return Segment{X1: (col + 1) * size, Y1: row*size + 1, X2: (col + 1) * size, Y2: (row+1)*size - 1}, nil
	case Down:
		return Segment{X1: col*size + 1, Y1: (row + 1) * size, X2: (col+1)*size - 1, Y2: (row + 1) * size}, nil
	case Left:
		return Segment{X1: col * size, Y1: row*size + 1, X2: col * size, Y2: (row+1)*size - 1}, nil
	default:
		return Segment{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
}
