package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/kruskal/core"
)

// StarQuickSortKruskal (SQSK) runs QuickSortKruskal's sort-then-scan idea
// directly on forward stars: each vertex's canonical half-edges (To > v) are
// ordered lazily by incremental quickselect, and a heap merges the per-vertex
// minima into one global (Weight, U, V) stream.
type StarQuickSortKruskal struct{}

// NewStarQuickSortKruskal returns the SQSK strategy.
func NewStarQuickSortKruskal() *StarQuickSortKruskal { return &StarQuickSortKruskal{} }

// Name returns MethodSQSK.
func (*StarQuickSortKruskal) Name() string { return MethodSQSK }

// Solve computes the minimum spanning forest of src, which must implement
// core.StarSource; otherwise ErrUnsupportedSource is returned.
func (s *StarQuickSortKruskal) Solve(src core.EdgeSource) (Result, error) {
	if src == nil {
		return Result{}, ErrNilSource
	}
	ss, ok := src.(core.StarSource)
	if !ok {
		return Result{}, fmt.Errorf("%s needs core.StarSource, got %T: %w", MethodSQSK, src, ErrUnsupportedSource)
	}

	return s.SolveStars(ss)
}

// SolveStars is Solve for a source already known to expose stars.
//
// Steps:
//  1. Copy the canonical half of every star into one private buffer; vertex
//     v owns segment [pos[v], end[v]).
//  2. For every non-empty segment, settle its minimum and push it as v's
//     candidate.
//  3. Pop the global minimum candidate (v, to), offer edge (v, to), advance
//     v's segment and push its next minimum.
//  4. Stop at n-1 accepted edges or when no candidates remain.
//
// Complexity: O(n + m) to copy; each settle is amortized O(1) partition work
// per consumed half-edge plus O(log n) per heap operation.
func (*StarQuickSortKruskal) SolveStars(src core.StarSource) (Result, error) {
	n, err := checkSource(src)
	if err != nil {
		return Result{}, err
	}

	q := newStarQueue(src)
	f := newForest(n)
	for q.Len() > 0 && !f.full() {
		c := heap.Pop(q).(starCandidate)
		f.res.Stats.HeapPops++
		f.offer(core.Edge{U: c.v, V: c.h.To, Weight: c.h.Weight})
		q.advance(c.v)
	}
	f.res.Stats.Partitions = q.partitions

	return f.result(), nil
}

// starCandidate is the current smallest unconsumed half-edge of vertex v.
type starCandidate struct {
	v int
	h core.HalfEdge
}

// lessHalf orders half-edges of one star; the owner is fixed, so (Weight, To)
// matches core.Less on the full edge.
func lessHalf(a, b core.HalfEdge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.To < b.To
}

// starQueue holds the per-vertex incremental quickselect state and is itself
// the candidate heap (heap.Interface).
//
// Incremental quickselect: pivots[v] is a stack of indices whose elements sit
// at their final sorted position, bottom = end[v]. buf[pos[v]] is settled when
// the top of the stack equals pos[v]; until then the range [pos[v], top) is
// partitioned and the pivot index pushed.
type starQueue struct {
	buf        []core.HalfEdge
	pos        []int   // next unconsumed index per vertex
	end        []int   // segment end per vertex
	pivots     [][]int // settled-index stacks per vertex
	cands      []starCandidate
	partitions int
}

func newStarQueue(src core.StarSource) *starQueue {
	n := src.VertexCount()
	q := &starQueue{
		buf:    make([]core.HalfEdge, 0, src.EdgeCount()),
		pos:    make([]int, n),
		end:    make([]int, n),
		pivots: make([][]int, n),
		cands:  make([]starCandidate, 0, n),
	}

	for v := 0; v < n; v++ {
		q.pos[v] = len(q.buf)
		for _, h := range src.Star(v) {
			if h.To > v {
				q.buf = append(q.buf, h)
			}
		}
		q.end[v] = len(q.buf)
		if q.end[v] > q.pos[v] {
			q.pivots[v] = []int{q.end[v]}
			q.settle(v)
			q.cands = append(q.cands, starCandidate{v: v, h: q.buf[q.pos[v]]})
		}
	}
	heap.Init(q)

	return q
}

// settle makes buf[pos[v]] the minimum of v's unconsumed segment.
func (q *starQueue) settle(v int) {
	lo := q.pos[v]
	st := q.pivots[v]
	for top := st[len(st)-1]; top != lo; top = st[len(st)-1] {
		if top-lo <= InsertionSortCutoff {
			insertionSort(q.buf, lo, top, lessHalf)
			for i := top - 1; i >= lo; i-- {
				st = append(st, i)
			}
			break
		}
		p := partition(q.buf, lo, top, medianOfThree(q.buf, lo, top, lessHalf), lessHalf)
		q.partitions++
		st = append(st, p)
	}
	q.pivots[v] = st
}

// advance consumes buf[pos[v]] and, if v has more half-edges, pushes the next
// candidate.
func (q *starQueue) advance(v int) {
	st := q.pivots[v]
	q.pivots[v] = st[:len(st)-1] // top == pos[v]
	q.pos[v]++

	if q.pos[v] == q.end[v] {
		q.pivots[v] = nil
		return
	}
	q.settle(v)
	heap.Push(q, starCandidate{v: v, h: q.buf[q.pos[v]]})
}

func (q *starQueue) Len() int { return len(q.cands) }

func (q *starQueue) Less(i, j int) bool {
	a, b := q.cands[i], q.cands[j]
	if a.h.Weight != b.h.Weight {
		return a.h.Weight < b.h.Weight
	}
	if a.v != b.v {
		return a.v < b.v
	}

	return a.h.To < b.h.To
}

func (q *starQueue) Swap(i, j int) { q.cands[i], q.cands[j] = q.cands[j], q.cands[i] }

func (q *starQueue) Push(x interface{}) { q.cands = append(q.cands, x.(starCandidate)) }

func (q *starQueue) Pop() interface{} {
	old := q.cands
	n := len(old)
	c := old[n-1]
	q.cands = old[:n-1]

	return c
}
