// SPDX-License-Identifier: MIT
// Package matrix provides the dense graph representation: every potential
// edge of an n-vertex undirected graph has one slot in a flattened upper
// triangle of n(n-1)/2 float64 values.
//
// Layout:
//
//	slot(u,v), u < v  =  u*(2n-u-1)/2 + (v-u-1)
//
// i.e. row-major over the strict upper triangle. (u,v) and (v,u) resolve to
// the same slot, so the two directions can never disagree. An empty slot
// holds NaN; NaN weights are rejected on input, so the sentinel is
// unambiguous.
//
// Use it for dense graphs where O(n²) memory is acceptable in exchange for
// O(1) adjacency and weight queries and a cache-friendly edge scan.
//
// Complexity:
//
//	New      O(n² + m) time, O(n²) space
//	Weight   O(1)
//	Edges    O(n²) per full scan, lazy and restartable
package matrix
