// Package labyrinth generates perfect mazes and finds the shortest way through them.
//
// A perfect maze is a spanning tree of a rectangular grid: every cell can be
// reached from every other by exactly one path. labyrinth carves one with a
// disjoint-set forest and solves it with breadth-first search, reporting each
// removed wall and each solution cell to an observer as it goes.
//
// Packages:
//
//	disjoint/   union by height with path compression over cell ids
//	pqueue/     stable min-cost queue (FIFO among equal costs)
//	core/       generic adjacency-list Graph, Vertex, Edge, path reconstruction
//	bfs/        fewest-edges shortest paths
//	dijkstra/   weighted shortest paths with lazy deletion
//	gridgraph/  cell ids, directions, lattice, wall pixel geometry
//	maze/       the Generator state machine and Observer contract
//	render/     ASCII terminal drawing and Graphviz DOT/SVG export
//	stream/     websocket event feed
//	config/     TOML configuration with dimension clamping
//
// Quick ASCII example (2×3, solved):
//
//	+---+---+---+
//	  *   *     |
//	+---+   +---+
//	|     *   *
//	+---+---+---+
//
// The command in cmd/labyrinth wraps all of it:
//
//	go run ./cmd/labyrinth generate -r 8 -c 12
package labyrinth
