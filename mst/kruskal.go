package mst

import (
	"container/heap"

	"github.com/katalvlaran/kruskal/core"
)

// Kruskal is the baseline strategy: a binary min-heap over all edges.
type Kruskal struct{}

// NewKruskal returns the heap-based Kruskal strategy.
func NewKruskal() *Kruskal { return &Kruskal{} }

// Name returns MethodKruskal.
func (*Kruskal) Name() string { return MethodKruskal }

// Solve computes the minimum spanning forest of src.
//
// Steps:
//  1. Copy the edges of src into a private slice and heapify it (O(m)).
//  2. Pop the minimum; accept it iff its endpoints are in different components.
//  3. Stop at n-1 accepted edges or when the heap is empty.
//
// Complexity: O(m + k log m) time for k pops, O(n + m) space.
func (*Kruskal) Solve(src core.EdgeSource) (Result, error) {
	n, err := checkSource(src)
	if err != nil {
		return Result{}, err
	}

	f := newForest(n)
	h := edgeHeap(core.Collect(src))
	heap.Init(&h)

	for h.Len() > 0 && !f.full() {
		e := heap.Pop(&h).(core.Edge)
		f.res.Stats.HeapPops++
		f.offer(e)
	}

	return f.result(), nil
}

// edgeHeap implements heap.Interface as a min-heap in core.Less order.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int           { return len(h) }
func (h edgeHeap) Less(i, j int) bool { return core.Less(h[i], h[j]) }
func (h edgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is required by heap.Interface; Solve only pops.
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(core.Edge)) }

func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
