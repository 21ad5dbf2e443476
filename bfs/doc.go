// Package bfs implements the unweighted single-source shortest-path search
// used to solve mazes.
//
// What:
//
//   - Unweighted(g, start) labels every vertex reachable from start with its
//     hop count (Vertex.Dist) and BFS-tree parent (Vertex.Prev).
//   - Unreached vertices keep core.Infinity and a nil Prev.
//   - g.Path(dest) then yields the route start → dest.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V) for the queue.
//
// Errors:
//
//   - ErrStartVertexNotFound: start is not a vertex of g (wraps core.ErrVertexNotFound).
package bfs
