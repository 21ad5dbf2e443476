package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
)

// ExampleUnweighted solves a 2×2 maze whose passages form a U shape:
//
//	0 1
//	| |
//	2─3
func ExampleUnweighted() {
	g := core.NewGraph[int]()
	for _, p := range [][2]int{{0, 2}, {2, 3}, {3, 1}} {
		g.AddEdge(p[0], p[1], 1)
		g.AddEdge(p[1], p[0], 1)
	}

	if err := bfs.Unweighted(g, 0); err != nil {
		fmt.Println("error:", err)
		return
	}
	path, ok, _ := g.Path(1)
	fmt.Println(path, ok)
	// Output:
	// [0 2 3 1] true
}
