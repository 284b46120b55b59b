// Package mst computes minimum spanning trees (forests) of undirected,
// weighted graphs with a family of interchangeable Kruskal variants, so their
// cost profiles can be compared on the same input.
//
// What & Why
//
//   - Every strategy consumes a core.EdgeSource (matrix.Graph, stars.Graph or
//     any caller type) and returns a Result: the accepted edges in acceptance
//     order, their total weight and a few counters (Stats).
//   - All strategies share one accept/reject rule: process edges in
//     non-decreasing (Weight, U, V) order and keep an edge iff its endpoints
//     are still in different dsu components. Only the way that order is
//     produced differs, and that is what you pay for.
//
// Strategies Provided
//
//   - Kruskal (MethodKruskal)
//     Binary min-heap built in O(m), popped until n-1 edges are accepted.
//     Time O(m + k log m) where k is the number of pops.
//
//   - FilterKruskal (MethodFilter, the default)
//     Quickselect-style divide and conquer over a private buffer: partition
//     around a median-of-three pivot, finish the light side first, then drop
//     ("filter") every heavy edge whose endpoints are already connected before
//     touching it again. Ranges of at most Options.Cutoff edges are sorted
//     directly. Expected O(m + n log n log(m/n)).
//
//   - SkewedFilterKruskal (MethodSkewed)
//     FilterKruskal whose pivot is the minimum of a few random samples, so the
//     light side is deliberately small and filtering starts earlier
//     (Righini & Righini, 2022). The skew is fixed by SkewSampleDivisor and
//     SkewMaxSamples.
//
//   - QuickSortKruskal (MethodQuickSort)
//     In-place iterative quicksort of the whole buffer, then a linear scan.
//     Always O(m log m).
//
//   - StarQuickSortKruskal (MethodSQSK)
//     Needs a core.StarSource. Keeps each vertex's canonical star half
//     lazily ordered by incremental quickselect and merges the per-vertex
//     minima through a heap of at most n candidates. Never builds a flat edge
//     list.
//
//   - Prim (MethodPrim)
//     Not a Kruskal variant: heap-based Prim restarted per component, kept as
//     an independent reference for verification.
//
// Determinism
//
//	Edges are totally ordered by core.Less, so every strategy accepts exactly
//	the same edges in the same order on any representation of the same graph,
//	and repeated runs are identical. Pivot randomness (SkewedFilterKruskal)
//	only changes Stats, never the Result edges.
//
// Disconnected graphs
//
//	Not an error: the result is a minimum spanning forest with fewer than n-1
//	edges. Use Result.Spanning or Result.Components to tell.
//
// Verification
//
//	Verify(src, res) certifies a result without recomputing it: every edge
//	belongs to src, the edges form a forest, no src edge joins two trees, and
//	the cycle property holds for every src edge.
//
// Errors
//
//	ErrNilSource         - src is nil.
//	ErrEmptyGraph        - src has zero vertices.
//	ErrUnsupportedSource - StarQuickSortKruskal given a source without stars.
//	ErrUnknownMethod     - New/Compute with an unregistered method name.
//	ErrResultMismatch, ErrNotForest, ErrNotSpanning, ErrNotMinimal - Verify.
//
// Concurrency
//
//	A Solve call allocates its own DisjointSet and working buffer and only
//	reads src, so one representation may be solved from several goroutines at
//	once. Strategy values are immutable and safe to share.
package mst
