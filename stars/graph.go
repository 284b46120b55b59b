package stars

import (
	"iter"
	"sort"

	"github.com/katalvlaran/kruskal/core"
)

// Graph is an immutable forward-star undirected graph.
// It implements core.StarSource.
type Graph struct {
	n         int
	offsets   []int           // len n+1
	halfEdges []core.HalfEdge // len 2m
}

var _ core.StarSource = (*Graph)(nil)

// New builds a forward-star graph on n vertices from edges. Validation is
// core.Validate: the same classes of core.ErrInvalidEdge as matrix.New,
// duplicates with equal weights collapsed, nothing returned on error.
func New(n int, edges []core.Edge) (*Graph, error) {
	canon, err := core.Validate(n, edges)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		n:         n,
		offsets:   make([]int, n+1),
		halfEdges: make([]core.HalfEdge, 2*len(canon)),
	}

	// Pass 1: degrees, shifted by one so the prefix sum lands in offsets.
	for _, e := range canon {
		g.offsets[e.U+1]++
		g.offsets[e.V+1]++
	}
	for v := 0; v < n; v++ {
		g.offsets[v+1] += g.offsets[v]
	}

	// Pass 2: place half-edges. next[v] is the first free slot of star v.
	next := make([]int, n)
	copy(next, g.offsets[:n])
	for _, e := range canon {
		g.halfEdges[next[e.U]] = core.HalfEdge{To: e.V, Weight: e.Weight}
		next[e.U]++
		g.halfEdges[next[e.V]] = core.HalfEdge{To: e.U, Weight: e.Weight}
		next[e.V]++
	}

	return g, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of undirected edges (half the half-edges).
func (g *Graph) EdgeCount() int { return len(g.halfEdges) / 2 }

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) int { return g.offsets[v+1] - g.offsets[v] }

// Star returns the half-edges of v sorted by neighbour id. The slice aliases
// internal storage and must be treated as read-only.
func (g *Graph) Star(v int) []core.HalfEdge {
	return g.halfEdges[g.offsets[v]:g.offsets[v+1]:g.offsets[v+1]]
}

// Weight returns the weight of (u,v) and whether it exists, by binary search
// in the star of u. Complexity: O(log deg(u)).
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= g.n {
		return 0, false
	}
	star := g.Star(u)
	i := sort.Search(len(star), func(i int) bool { return star[i].To >= v })
	if i < len(star) && star[i].To == v {
		return star[i].Weight, true
	}

	return 0, false
}

// HasEdge reports whether (u,v) is stored.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)
	return ok
}

// Edges yields every undirected edge once, from its lower endpoint's star,
// in row-major order. Restartable; never mutates g.
func (g *Graph) Edges() iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		for u := 0; u < g.n; u++ {
			for _, h := range g.Star(u) {
				if h.To < u {
					continue
				}
				if !yield(core.Edge{U: u, V: h.To, Weight: h.Weight}) {
					return
				}
			}
		}
	}
}

// Neighbors yields (neighbour, weight) pairs of v in ascending neighbour order.
func (g *Graph) Neighbors(v int) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for _, h := range g.Star(v) {
			if !yield(h.To, h.Weight) {
				return
			}
		}
	}
}
