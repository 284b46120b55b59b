// SPDX-License-Identifier: MIT
// Package builder generates deterministic edge-list fixtures for the MST
// strategies: random sparse graphs for benchmarking and small canonical
// topologies for tests and examples.
//
// What & Why:
//
//	A generator is a Constructor: a closure that appends vertices and edges
//	to an edge list. Build resolves the functional options once and applies
//	the constructors in order, so several topologies can be layered over the
//	same vertex range, e.g. a Path backbone plus RandomSparse noise to get a
//	connected random graph. Pairs that already exist are skipped, keeping the
//	result free of parallel edges.
//
// Output:
//
//	Build returns (n, edges, err). Vertices are 0..n-1 and every edge is in
//	canonical orientation (U < V), ready for matrix.New or stars.New.
//
// Determinism:
//
//	Same constructors, same options and same seed give the same edge list,
//	byte for byte. Stochastic constructors draw in a fixed order (i asc,
//	then j asc) and weights are drawn only for edges that are kept.
//
// Constructors:
//
//	RandomSparse(n, p)  Erdős–Rényi G(n, p), needs WithSeed or WithRand
//	Complete(n)         K_n
//	Path(n)             0-1-...-(n-1)
//	Cycle(n)            path closed by (0, n-1)
//	Star(n)             hub 0 joined to 1..n-1
//	Wheel(n)            Star(n) plus a cycle over 1..n-1
//	Grid(rows, cols)    4-neighbourhood lattice, vertex r*cols+c
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrInvalidWeightRange and ErrConstructFailed, always wrapped with the
//	constructor name. Option constructors panic on meaningless input.
package builder
