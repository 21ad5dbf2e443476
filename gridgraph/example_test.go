package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// ExampleGrid_ID shows the row-major cell numbering.
func ExampleGrid_ID() {
	gr, _ := gridgraph.NewGrid(2, 3)
	for r := 0; r < gr.Rows; r++ {
		row := make([]int, 0, gr.Columns)
		for c := 0; c < gr.Columns; c++ {
			id, _ := gr.ID(gridgraph.GridPoint{Row: r, Column: c})
			row = append(row, id)
		}
		fmt.Println(row)
	}
	fmt.Println("exit:", gr.Exit())
	// Output:
	// [0 1 2]
	// [3 4 5]
	// exit: (1,2)
}

// ExampleWallSegment prints the line erased when the top wall of (0,0) is removed.
func ExampleWallSegment() {
	seg, _ := gridgraph.WallSegment(0, 0, gridgraph.Up, gridgraph.DefaultSquareSize)
	fmt.Printf("%+v\n", seg)
	// Output: {X1:1 Y1:0 X2:19 Y2:0}
}
