// Package maze generates perfect mazes with a disjoint-set spanning tree and
// solves them with breadth-first search.
//
// Lifecycle of a Generator:
//
//	New → Initialize(rows, cols) → Generate → Solve [→ Solve ...]
//	          ↑___________________________________|
//
// States: StateUninitialized (fresh grid, nothing carved), StateGenerating,
// StateReady, StateSolving, StateSolved. Generate runs once per Initialize;
// Solve may be repeated. Calling an operation out of order returns
// ErrInvalidState.
//
// Events are delivered to an Observer synchronously on the calling goroutine:
//
//   - OnWallRemoved(row, col, dir) once per carved wall, R*C-1 calls in total;
//   - OnPathCellVisited(row, col) once per solution cell, entrance first.
//
// The entrance is cell (0,0), the exit cell (R-1, C-1). Dimensions are not
// clamped here; callers that accept user input clamp them first (see package
// config).
//
// Example:
//
//	gen := maze.New(maze.WithSeed(7), maze.WithObserver(obs))
//	if err := gen.Initialize(10, 10); err != nil { ... }
//	if err := gen.Generate(); err != nil { ... }
//	path, err := gen.Solve()
package maze
