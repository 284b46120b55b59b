package core

import (
	"cmp"
	"math"
	"slices"
)

// CheckEdge validates a single edge against vertex count n.
// It returns nil or an *EdgeError carrying index i.
// Complexity: O(1).
func CheckEdge(n, i int, e Edge) error {
	switch {
	case e.U < 0 || e.U >= n || e.V < 0 || e.V >= n:
		return &EdgeError{Index: i, Edge: e, Reason: ErrVertexOutOfRange}
	case e.U == e.V:
		return &EdgeError{Index: i, Edge: e, Reason: ErrSelfLoop}
	case math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0):
		return &EdgeError{Index: i, Edge: e, Reason: ErrInvalidWeight}
	}

	return nil
}

// Validate checks edges against vertex count n and returns the canonical,
// de-duplicated edge list in row-major pair order (U asc, then V asc).
//
// Rules:
//   - n < 0 → ErrNegativeVertexCount.
//   - the first edge (by input index) that is out of range, a self-loop or has
//     a NaN/Inf weight is reported.
//   - a pair listed twice with the same weight is kept once; with different
//     weights the later occurrence is reported as ErrConflictingWeight. If
//     several pairs conflict, the one with the smallest index wins.
//
// The input slice is not modified. Complexity: O(m log m) time, O(m) space.
func Validate(n int, edges []Edge) ([]Edge, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	type indexed struct {
		e   Edge
		idx int
	}
	work := make([]indexed, len(edges))
	for i, e := range edges {
		if err := CheckEdge(n, i, e); err != nil {
			return nil, err
		}
		work[i] = indexed{e: e.Canonical(), idx: i}
	}

	// Stable so that, within a pair, occurrences keep input order.
	slices.SortStableFunc(work, func(a, b indexed) int {
		if c := cmp.Compare(a.e.U, b.e.U); c != 0 {
			return c
		}
		return cmp.Compare(a.e.V, b.e.V)
	})

	var conflict *EdgeError
	out := make([]Edge, 0, len(work))
	for i, w := range work {
		if i > 0 {
			prev := work[i-1].e
			if prev.U == w.e.U && prev.V == w.e.V {
				if prev.Weight != w.e.Weight && (conflict == nil || w.idx < conflict.Index) {
					conflict = &EdgeError{Index: w.idx, Edge: edges[w.idx], Reason: ErrConflictingWeight}
				}
				continue
			}
		}
		out = append(out, w.e)
	}
	if conflict != nil {
		return nil, conflict
	}

	return out, nil
}
