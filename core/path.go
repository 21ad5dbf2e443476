package core

// Path reconstructs the shortest path to dest found by the last search.
//
// Returns:
//
//   - path: vertex names from the search source to dest, inclusive.
//   - ok:   false if dest is unreachable (Dist == Infinity); path is nil.
//   - err:  ErrVertexNotFound if dest is unknown.
//
// Path walks Prev pointers iteratively and reverses the result, so deep
// paths do not grow the call stack. It never mutates the graph.
func (g *Graph[T]) Path(dest T) ([]T, bool, error) {
	w, err := g.Vertex(dest)
	if err != nil {
		return nil, false, err
	}
	if w.Dist == Infinity {
		return nil, false, nil
	}

	var path []T
	for v := w; v != nil; v = v.Prev {
		path = append(path, v.Name)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true, nil
}

// Cost returns the distance recorded for dest by the last search,
// Infinity if it was not reached.
func (g *Graph[T]) Cost(dest T) (int64, error) {
	w, err := g.Vertex(dest)
	if err != nil {
		return 0, err
	}

	return w.Dist, nil
}
