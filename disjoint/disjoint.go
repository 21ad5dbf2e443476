// Package disjoint implements a fixed-size disjoint-set forest over the
// integer elements 0..n-1, using union by height and path compression.
//
// Storage is a single slice: parent[i] < 0 marks i as a root and -parent[i]
// is the height counter of its tree (a singleton stores -1); parent[i] >= 0
// is the parent pointer of a non-root. A root is recognised by sign alone,
// so element 0 is an ordinary root like any other.
//
// Complexity:
//
//   - Find:  O(α(n)) amortized.
//   - Union: O(1) (arguments must already be roots).
//   - Space: O(n).
package disjoint

import "fmt"

// DisjointSet is a union-find forest. It is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	count  int // number of components
}

// New returns a DisjointSet holding n singleton sets {0}, {1}, ..., {n-1}.
// A non-positive n yields an empty set on which every id is out of range.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	return &DisjointSet{parent: parent, count: n}
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint components.
func (d *DisjointSet) Count() int { return d.count }

// IsRoot reports whether x is the representative of its component.
// Out-of-range ids are never roots.
func (d *DisjointSet) IsRoot(x int) bool {
	return d.valid(x) && d.parent[x] < 0
}

// Union merges the components whose roots are root1 and root2.
//
// Both arguments must be roots and must be distinct; otherwise Union returns
// ErrInvalidOperation (or ErrOutOfRange for ids outside the set) and leaves
// the forest untouched. The shallower tree is hung under the deeper one; on
// equal height root2 goes under root1 and root1's height grows by one.
func (d *DisjointSet) Union(root1, root2 int) error {
	if err := d.assertRoot(root1); err != nil {
		return err
	}
	if err := d.assertRoot(root2); err != nil {
		return err
	}
	if root1 == root2 {
		return fmt.Errorf("%w: union of %d with itself", ErrInvalidOperation, root1)
	}

	if d.parent[root2] < d.parent[root1] {
		// root2 is deeper
		d.parent[root1] = root2
	} else {
		if d.parent[root1] == d.parent[root2] {
			d.parent[root1]--
		}
		d.parent[root2] = root1
	}
	d.count--

	return nil
}

// Find returns the root of the component containing x, re-pointing every
// node on the walked path directly at that root.
//
// Returns ErrOutOfRange if x is not an element.
func (d *DisjointSet) Find(x int) (int, error) {
	if !d.valid(x) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent))
	}

	// First pass: locate the root.
	root := x
	for d.parent[root] >= 0 {
		root = d.parent[root]
	}
	// Second pass: compress.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root, nil
}

// Connected reports whether x and y share a component.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

func (d *DisjointSet) valid(x int) bool {
	return x >= 0 && x < len(d.parent)
}

func (d *DisjointSet) assertRoot(x int) error {
	if !d.valid(x) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent))
	}
	if d.parent[x] >= 0 {
		return fmt.Errorf("%w: %d is not a root", ErrInvalidOperation, x)
	}

	return nil
}
