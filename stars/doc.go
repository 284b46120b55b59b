// Package stars provides the sparse forward-star graph representation.
//
// All half-edges live in one flat slice; offsets[v] .. offsets[v+1] is the
// star of v. Every undirected edge (u,v,w) is stored twice, as u→v and v→u,
// both with weight w, so neighbour iteration costs O(degree).
//
// Construction is a counting sort over the validated, row-major edge list:
//
//	pass 1: count the degree of every vertex and prefix-sum into offsets;
//	pass 2: drop each half-edge into the next free slot of its star.
//
// Because the input is visited in (U asc, V asc) order, each star ends up
// sorted by neighbour id, and the once-per-edge view (half-edges with To > v)
// is exactly the row-major order used by package matrix.
//
// Complexity: New O(n + m log m) (validation sort dominates), O(n + m) space.
package stars
