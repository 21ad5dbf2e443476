// Package core provides a small generic graph engine: an adjacency-list
// digraph whose vertices carry the distance, predecessor and scratch fields
// written by single-source shortest-path searches.
//
// Overview:
//
//   - Graph[T] is keyed by any comparable vertex name (maze cells use int).
//   - AddEdge creates vertices lazily and keeps parallel edges.
//   - bfs.Unweighted and dijkstra.Dijkstra fill Vertex.Dist and Vertex.Prev.
//   - Path rebuilds source → dest from the Prev chain; an unreachable dest is
//     reported with ok == false rather than an error.
//
// Thread safety:
//
//   - A Graph belongs to one goroutine. Searches mutate per-vertex state, so
//     concurrent searches on the same Graph are not supported.
//
// Example:
//
//	g := core.NewGraph[int]()
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(1, 0, 1)
//	_ = bfs.Unweighted(g, 0)
//	path, ok, _ := g.Path(1) // [0 1], true
package core
