package mst

import (
	"errors"

	"github.com/katalvlaran/kruskal/core"
)

var (
	// ErrNilSource indicates a nil edge source.
	ErrNilSource = errors.New("mst: nil edge source")

	// ErrEmptyGraph indicates a source with zero vertices.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")

	// ErrUnsupportedSource indicates a strategy that needs a narrower
	// capability (core.StarSource) than the source provides.
	ErrUnsupportedSource = errors.New("mst: unsupported edge source")

	// ErrUnknownMethod indicates an unregistered strategy name.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// Strategy is one way of computing a minimum spanning forest.
type Strategy interface {
	// Name returns the registry name (one of the Method* constants).
	Name() string

	// Solve computes the minimum spanning forest of src. src is only read.
	Solve(src core.EdgeSource) (Result, error)
}

// Stats counts the work a strategy did. Counters a strategy does not use stay zero.
type Stats struct {
	// Examined is the number of union attempts (accepted + rejected edges).
	Examined int

	// Filtered is the number of edges dropped by filtering without being examined.
	Filtered int

	// Partitions is the number of partition steps (quickselect/quicksort).
	Partitions int

	// HeapPops is the number of heap extractions.
	HeapPops int
}

// Result is the output of a strategy. It is owned by the caller.
type Result struct {
	// Vertices is n of the solved graph.
	Vertices int

	// TotalWeight is the sum of Edges' weights.
	TotalWeight float64

	// Edges are the accepted edges, canonical (U < V), in acceptance order,
	// which is non-decreasing (Weight, U, V).
	Edges []core.Edge

	// Stats describes the work done.
	Stats Stats
}

// Spanning reports whether Edges form a single spanning tree,
// i.e. len(Edges) == Vertices-1.
func (r Result) Spanning() bool {
	return r.Vertices > 0 && len(r.Edges) == r.Vertices-1
}

// Components returns the number of trees in the spanning forest.
func (r Result) Components() int {
	return r.Vertices - len(r.Edges)
}
