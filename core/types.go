package core

import (
	"fmt"
	"iter"
)

// Edge is an undirected weighted edge between vertices U and V.
// (U, V, w) and (V, U, w) denote the same edge.
type Edge struct {
	U      int
	V      int
	Weight float64
}

// HalfEdge is one direction of an undirected edge as stored in a star:
// the owning vertex is implicit.
type HalfEdge struct {
	To     int
	Weight float64
}

// Canonical returns e with U < V.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		e.U, e.V = e.V, e.U
	}

	return e
}

// Other returns the endpoint of e opposite to x.
func (e Edge) Other(x int) int {
	if e.U == x {
		return e.V
	}

	return e.U
}

// String renders the edge as "(u,v,w)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d,%g)", e.U, e.V, e.Weight)
}

// Less reports whether a precedes b in the (Weight, U, V) order.
// Both edges must be canonical.
func Less(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.U != b.U {
		return a.U < b.U
	}

	return a.V < b.V
}

// Compare is the three-way form of Less, suitable for slices.SortFunc.
func Compare(a, b Edge) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

// EdgeSource is the capability every MST strategy consumes: a fixed vertex
// count and a finite, restartable, deterministic sequence of undirected edges.
// Implementations must not change while a computation reads them.
type EdgeSource interface {
	// VertexCount returns n; vertex ids are in [0, n).
	VertexCount() int

	// EdgeCount returns the number of undirected edges Edges yields.
	EdgeCount() int

	// Edges yields every undirected edge exactly once.
	Edges() iter.Seq[Edge]
}

// StarSource is an EdgeSource with direct access to per-vertex stars.
// Star(v) returns a read-only view sorted by neighbour id; callers must not
// modify it.
type StarSource interface {
	EdgeSource

	// Star returns the half-edges leaving v.
	Star(v int) []HalfEdge

	// Degree returns len(Star(v)).
	Degree(v int) int
}

// Collect materializes src into a freshly allocated slice of canonical edges,
// in the order src yields them. The slice is owned by the caller.
// Complexity: O(m).
func Collect(src EdgeSource) []Edge {
	out := make([]Edge, 0, src.EdgeCount())
	for e := range src.Edges() {
		out = append(out, e.Canonical())
	}

	return out
}
