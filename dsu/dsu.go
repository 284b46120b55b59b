// Package dsu implements a fixed-size disjoint-set forest (union-find) over
// the integer ids [0, n).
//
// Find uses full path compression: every node visited on the way to the root
// is relinked directly to it. Union attaches the root of the smaller tree
// under the root of the larger one (union by size). Together they give the
// inverse-Ackermann amortized bound that Kruskal-family strategies rely on.
//
// Ids outside [0, n) are a caller contract violation and panic with an index
// error; no operation returns an error.
package dsu

// DisjointSet is a union-find forest. The zero value is an empty set (n = 0).
// A DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent []int // parent[x] == x iff x is a root
	size   []int // meaningful only at roots: number of elements in the tree
	count  int   // number of disjoint components
}

// New returns a DisjointSet of n singleton components.
// Complexity: O(n) time and space.
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements n.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint components.
// After k successful unions on n elements it is n-k.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of x's component.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: relink the whole path to root.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the components of a and b and reports whether a merge
// happened. false means a and b were already connected, i.e. an edge (a,b)
// would close a cycle.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// Connected reports whether a and b share a component.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Size returns the number of elements in x's component.
func (d *DisjointSet) Size(x int) int {
	return d.size[d.Find(x)]
}
