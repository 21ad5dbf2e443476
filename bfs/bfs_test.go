package bfs_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
)

// undirected adds both directions of an edge with cost 1.
func undirected(g *core.Graph[string], u, v string) {
	g.AddEdge(u, v, 1)
	g.AddEdge(v, u, 1)
}

// TestUnweighted_Errors verifies that an unknown start is rejected.
func TestUnweighted_Errors(t *testing.T) {
	g := core.NewGraph[string]()
	err := bfs.Unweighted(g, "missing")
	if !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("missing start should wrap core.ErrVertexNotFound, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should name the start vertex, got %v", err)
	}
}

// TestUnweighted_CycleDepths covers a 4-cycle with a tail and checks hop counts.
func TestUnweighted_CycleDepths(t *testing.T) {
	// A–B–C–D–A, C–E
	g := core.NewGraph[string]()
	undirected(g, "A", "B")
	undirected(g, "B", "C")
	undirected(g, "C", "D")
	undirected(g, "D", "A")
	undirected(g, "C", "E")

	if err := bfs.Unweighted(g, "A"); err != nil {
		t.Fatal(err)
	}
	want := map[string]int64{"A": 0, "B": 1, "D": 1, "C": 2, "E": 3}
	for name, d := range want {
		got, err := g.Cost(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != d {
			t.Errorf("Dist[%s] = %d; want %d", name, got, d)
		}
	}

	// C is discovered from B first (adjacency order of A lists B before D).
	path, ok, err := g.Path("E")
	if err != nil || !ok {
		t.Fatalf("Path(E): ok=%v err=%v", ok, err)
	}
	if wantPath := []string{"A", "B", "C", "E"}; !reflect.DeepEqual(path, wantPath) {
		t.Errorf("Path(E) = %v; want %v", path, wantPath)
	}
}

// TestUnweighted_IgnoresCosts shows BFS counts edges, not weights.
func TestUnweighted_IgnoresCosts(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("S", "T", 100)
	g.AddEdge("S", "M", 1)
	g.AddEdge("M", "T", 1)

	if err := bfs.Unweighted(g, "S"); err != nil {
		t.Fatal(err)
	}
	if d, _ := g.Cost("T"); d != 1 {
		t.Errorf("Dist[T] = %d; want 1", d)
	}
}

// TestUnweighted_Unreachable keeps the +∞ sentinel on the unreached side.
func TestUnweighted_Unreachable(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "A", 1) // directed: C is not reachable from A

	if err := bfs.Unweighted(g, "A"); err != nil {
		t.Fatal(err)
	}
	if d, _ := g.Cost("C"); d != core.Infinity {
		t.Errorf("Dist[C] = %d; want Infinity", d)
	}
	if _, ok, _ := g.Path("C"); ok {
		t.Error("Path(C) should be unreachable")
	}
}

// TestUnweighted_ResetsPreviousRun re-runs from another source.
func TestUnweighted_ResetsPreviousRun(t *testing.T) {
	g := core.NewGraph[string]()
	undirected(g, "A", "B")
	undirected(g, "B", "C")

	_ = bfs.Unweighted(g, "A")
	if err := bfs.Unweighted(g, "C"); err != nil {
		t.Fatal(err)
	}
	path, ok, _ := g.Path("A")
	if !ok || !reflect.DeepEqual(path, []string{"C", "B", "A"}) {
		t.Errorf("Path(A) from C = %v (ok=%v)", path, ok)
	}
	v, _ := g.Vertex("C")
	if v.Prev != nil || v.Dist != 0 {
		t.Errorf("source state not reset: dist=%d prev=%v", v.Dist, v.Prev)
	}
}

// TestUnweighted_OnVisitOrder records the FIFO visit order.
func TestUnweighted_OnVisitOrder(t *testing.T) {
	g := core.NewGraph[string]()
	undirected(g, "A", "B")
	undirected(g, "A", "C")
	undirected(g, "B", "D")
	undirected(g, "B", "D") // parallel edge: D still enqueued once

	var order []string
	var dists []int64
	err := bfs.Unweighted(g, "A", bfs.WithOnVisit(func(name string, d int64) {
		order = append(order, name)
		dists = append(dists, d)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v; want %v", order, want)
	}
	if want := []int64{0, 1, 1, 2}; !reflect.DeepEqual(dists, want) {
		t.Errorf("dists = %v; want %v", dists, want)
	}
}
