// Package gridgraph is the coordinate layer of the labyrinth module.
//
// A maze lives on an R×C orthogonal grid. Each cell has a row-major id
//
//	id = row*Columns + column,   0 ≤ id < R*C
//
// which is the vertex name used by the disjoint-set and graph engines.
// Cell 0 is the entrance and cell R*C-1 the exit.
//
// Directions are numbered Up=0, Right=1, Down=2, Left=3. Delta gives the
// (row, column) step, Opposite the reverse side.
//
// WallSegment reproduces the pixel geometry a drawing surface needs to erase a
// wall: with square size s, the Up wall of (r, c) runs from (c*s+1, r*s) to
// ((c+1)*s-1, r*s).
//
// Grid.ToCoreGraph builds the complete lattice; a perfect maze is a spanning
// tree of that lattice.
package gridgraph
