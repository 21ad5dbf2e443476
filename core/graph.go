package core

import "fmt"

// AddEdge appends the directed edge source → dest with the given cost,
// creating either vertex if it does not exist yet. Parallel edges are kept.
// For an undirected connection call AddEdge in both directions.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(source, dest T, cost int64) {
	v := g.vertex(source)
	w := g.vertex(dest)
	v.Adj = append(v.Adj, Edge[T]{Dest: w, Cost: cost})
	g.edges++
}

// AddVertex creates name if absent and reports whether it was created.
func (g *Graph[T]) AddVertex(name T) bool {
	if _, ok := g.vertices[name]; ok {
		return false
	}
	g.vertex(name)

	return true
}

// vertex returns the vertex for name, creating it on first reference.
func (g *Graph[T]) vertex(name T) *Vertex[T] {
	if v, ok := g.vertices[name]; ok {
		return v
	}
	v := &Vertex[T]{Name: name}
	v.reset()
	g.vertices[name] = v
	g.order = append(g.order, v)

	return v
}

// Vertex looks up an existing vertex.
// Returns ErrVertexNotFound if name is unknown.
func (g *Graph[T]) Vertex(name T) (*Vertex[T], error) {
	v, ok := g.vertices[name]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, name)
	}

	return v, nil
}

// HasVertex reports whether name is a known vertex.
func (g *Graph[T]) HasVertex(name T) bool {
	_, ok := g.vertices[name]

	return ok
}

// Vertices returns every vertex in creation order.
// The slice is a copy; the vertices are shared.
func (g *Graph[T]) Vertices() []*Vertex[T] {
	out := make([]*Vertex[T], len(g.order))
	copy(out, g.order)

	return out
}

// Order returns the number of vertices.
func (g *Graph[T]) Order() int { return len(g.order) }

// EdgeCount returns the number of directed edges, parallel edges included.
func (g *Graph[T]) EdgeCount() int { return g.edges }

// Reset clears Dist, Prev and Scratch on every vertex. Both search
// algorithms call it before running.
func (g *Graph[T]) Reset() {
	for _, v := range g.order {
		v.reset()
	}
}
