package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// BenchmarkToCoreGraph measures lattice construction on a 20×20 grid.
func BenchmarkToCoreGraph(b *testing.B) {
	gr := gridgraph.Grid{Rows: 20, Columns: 20}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = gr.ToCoreGraph()
	}
}

// BenchmarkLatticeBFS measures a full BFS over a 20×20 lattice.
func BenchmarkLatticeBFS(b *testing.B) {
	g := gridgraph.Grid{Rows: 20, Columns: 20}.ToCoreGraph()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := bfs.Unweighted(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
