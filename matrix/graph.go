// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"
	"math"

	"github.com/katalvlaran/kruskal/core"
)

// Graph is an immutable dense undirected graph. It implements core.EdgeSource.
type Graph struct {
	n     int
	m     int
	slots []float64 // n(n-1)/2 slots, NaN = no edge
}

var _ core.EdgeSource = (*Graph)(nil)

// New builds a dense graph on n vertices from edges.
//
// Validation (atomic: on error no graph is returned):
//   - n < 0                        → core.ErrNegativeVertexCount
//   - endpoint outside [0,n)       → core.ErrVertexOutOfRange
//   - u == v                       → core.ErrSelfLoop
//   - NaN/±Inf weight              → core.ErrInvalidWeight
//   - same pair, different weight  → core.ErrConflictingWeight
//
// All per-edge failures are *core.EdgeError and match core.ErrInvalidEdge.
// Exact duplicates are stored once.
//
// Complexity: O(n² + m) time, O(n²) space.
func New(n int, edges []core.Edge) (*Graph, error) {
	if n < 0 {
		return nil, core.ErrNegativeVertexCount
	}

	g := &Graph{n: n, slots: make([]float64, n*(n-1)/2)}
	for i := range g.slots {
		g.slots[i] = math.NaN()
	}

	for i, e := range edges {
		if err := core.CheckEdge(n, i, e); err != nil {
			return nil, err
		}
		s := g.slot(e.U, e.V)
		prev := g.slots[s]
		if math.IsNaN(prev) {
			g.slots[s] = e.Weight
			g.m++
			continue
		}
		if prev != e.Weight {
			return nil, &core.EdgeError{Index: i, Edge: e, Reason: core.ErrConflictingWeight}
		}
	}

	return g, nil
}

// slot maps an unordered pair to its index; the caller guarantees u != v.
func (g *Graph) slot(u, v int) int {
	if u > v {
		u, v = v, u
	}

	return u*(2*g.n-u-1)/2 + (v - u - 1)
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of stored undirected edges.
func (g *Graph) EdgeCount() int { return g.m }

// Density returns m / (n(n-1)/2), or 0 when n < 2.
func (g *Graph) Density() float64 {
	if len(g.slots) == 0 {
		return 0
	}

	return float64(g.m) / float64(len(g.slots))
}

// Weight returns the weight of edge (u,v) and whether it exists.
// Out-of-range ids and u == v report false.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u == v || u < 0 || v < 0 || u >= g.n || v >= g.n {
		return 0, false
	}
	w := g.slots[g.slot(u, v)]
	if math.IsNaN(w) {
		return 0, false
	}

	return w, true
}

// HasEdge reports whether (u,v) is stored.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)
	return ok
}

// Edges yields every stored edge once, canonical (U < V), scanning the upper
// triangle row-major: (0,1), (0,2), …, (0,n-1), (1,2), …
// The sequence is restartable and never mutates g.
func (g *Graph) Edges() iter.Seq[core.Edge] {
	return func(yield func(core.Edge) bool) {
		s := 0
		for u := 0; u < g.n; u++ {
			for v := u + 1; v < g.n; v++ {
				w := g.slots[s]
				s++
				if math.IsNaN(w) {
					continue
				}
				if !yield(core.Edge{U: u, V: v, Weight: w}) {
					return
				}
			}
		}
	}
}
