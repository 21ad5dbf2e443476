// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over core.Graph for non-negative edge costs.
//
// Overview:
//
//   - Dijkstra(g, start) writes the minimum total cost from start into every
//     reachable vertex's Dist and the matching predecessor into Prev.
//   - Unreached vertices keep core.Infinity; g.Path reports them as unreachable.
//   - The priority queue (package pqueue) breaks cost ties by insertion order.
//     Correctness does not depend on the tie order; determinism does.
//
// Error handling (sentinel errors):
//
//   - ErrStartVertexNotFound: start is not a vertex of g.
//   - ErrNegativeWeight:      a traversed edge has cost < 0. Distances written
//     before the failure are left as they are.
//
// Thread safety:
//
//   - Dijkstra mutates per-vertex state; do not run it concurrently with any
//     other search or mutation of the same graph.
package dijkstra
