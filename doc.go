// Package kruskal is a toolkit for computing minimum spanning trees and
// forests of static, undirected, weighted graphs with interchangeable
// Kruskal-family strategies over interchangeable graph representations.
//
// What is in the box?
//
//	core/     Edge, HalfEdge, the (Weight, U, V) total order, validation
//	          and the EdgeSource / StarSource capabilities
//	dsu/      DisjointSet: union by size with full path compression
//	matrix/   dense representation, flattened upper triangle
//	stars/    sparse forward-star representation, stars sorted by neighbour
//	mst/      Kruskal, FilterKruskal, SkewedFilterKruskal, QuickSortKruskal,
//	          StarQuickSortKruskal, a Prim reference and Verify
//	builder/  deterministic random and canonical edge-list generators
//	cmd/mstbench  command-line benchmark driver
//
// Quick example:
//
//	    0 ──1── 1
//	    │ ╲     │
//	   10  4    2
//	    │     ╲ │
//	    3 ──3── 2
//
//	g, _ := stars.New(4, []core.Edge{
//		{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}, {U: 2, V: 3, Weight: 3},
//		{U: 0, V: 3, Weight: 10}, {U: 0, V: 2, Weight: 4},
//	})
//	res, _ := mst.Compute(g)                // FilterKruskal by default
//	fmt.Println(res.TotalWeight, res.Edges) // 6 [(0,1,1) (1,2,2) (2,3,3)]
//
// Determinism:
//
//	Edges are compared by weight, then by the canonical pair (U < V), so the
//	minimum spanning forest is unique. Every strategy on every
//	representation returns the same edges, in the same order for the
//	Kruskal family.
//
// Disconnected graphs are not an error: strategies return a spanning forest
// and Result.Spanning / Result.Components tell the caller what was found.
package kruskal
