// Package core defines the shared vocabulary of the kruskal module: the
// undirected Edge and the HalfEdge used by forward-star layouts, the
// EdgeSource and StarSource capabilities that every strategy consumes, the
// total edge order used for deterministic tie-breaking, and edge-list
// validation.
//
// Edge order:
//
//	Edges compare by (Weight, U, V) of their canonical form (U < V). For a
//	validated graph the canonical pair is unique, so this is a strict total
//	order: ties on weight are broken by the row-major position of the vertex
//	pair, lower pair first. Every strategy in package mst follows it, which is
//	why all of them return the very same edge sequence for the same input.
//
// Capabilities:
//
//	EdgeSource: vertex count, edge count and a lazy, restartable edge sequence.
//	StarSource: an EdgeSource that also exposes each vertex's star
//	            (neighbour list) as a read-only slice.
//
// Errors:
//
//	ErrInvalidEdge         - umbrella class for any rejected input edge.
//	ErrSelfLoop            - edge with U == V.
//	ErrVertexOutOfRange    - endpoint outside [0, n).
//	ErrConflictingWeight   - the same vertex pair listed with two weights.
//	ErrInvalidWeight       - NaN or ±Inf weight.
//	ErrNegativeVertexCount - n < 0.
//
// Every rejected edge is reported as *EdgeError, which matches both
// ErrInvalidEdge and its specific reason under errors.Is.
package core
