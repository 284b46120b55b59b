package mst

import (
	"container/heap"

	"github.com/katalvlaran/kruskal/core"
)

// Prim grows one tree at a time from the lowest unvisited vertex with a
// min-heap of crossing edges. It is not a Kruskal variant; it exists as an
// independent reference to cross-check the other strategies.
type Prim struct{}

// NewPrim returns the Prim reference strategy.
func NewPrim() *Prim { return &Prim{} }

// Name returns MethodPrim.
func (*Prim) Name() string { return MethodPrim }

// Solve computes the minimum spanning forest of src.
//
// Steps:
//  1. Build a CSR adjacency (offsets + half-edges) from src.
//  2. For each root r = 0..n-1 not yet visited: mark it, push its edges.
//  3. Pop the minimum edge; skip it if its far end is visited (lazy deletion);
//     otherwise accept it, mark the far end and push that vertex's edges.
//
// Heap order is core.Less on the canonical edge, so under ties Prim selects
// the same unique tree as the Kruskal strategies; only the edge order differs.
// Result.Edges is therefore in discovery order, not weight order.
//
// Complexity: O(m log m) time, O(n + m) space.
func (*Prim) Solve(src core.EdgeSource) (Result, error) {
	n, err := checkSource(src)
	if err != nil {
		return Result{}, err
	}

	edges := core.Collect(src)
	offsets := make([]int, n+1)
	for _, e := range edges {
		offsets[e.U+1]++
		offsets[e.V+1]++
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}
	adj := make([]int, 2*len(edges)) // indices into edges
	next := make([]int, n)
	copy(next, offsets[:n])
	for i, e := range edges {
		adj[next[e.U]] = i
		next[e.U]++
		adj[next[e.V]] = i
		next[e.V]++
	}

	res := Result{Vertices: n, Edges: make([]core.Edge, 0, n-1)}
	visited := make([]bool, n)
	pq := &primQueue{}

	visit := func(v int) {
		visited[v] = true
		for _, i := range adj[offsets[v]:offsets[v+1]] {
			if !visited[edges[i].Other(v)] {
				heap.Push(pq, edges[i])
			}
		}
	}

	for r := 0; r < n && len(res.Edges) < n-1; r++ {
		if visited[r] {
			continue
		}
		visit(r)
		for pq.Len() > 0 {
			e := heap.Pop(pq).(core.Edge)
			res.Stats.HeapPops++
			res.Stats.Examined++
			far := e.V
			if visited[far] {
				far = e.U
			}
			if visited[far] {
				continue
			}
			res.Edges = append(res.Edges, e)
			res.TotalWeight += e.Weight
			visit(far)
		}
	}

	return res, nil
}

// primQueue implements heap.Interface for a min-heap of edges in core.Less order.
type primQueue []core.Edge

func (pq primQueue) Len() int            { return len(pq) }
func (pq primQueue) Less(i, j int) bool  { return core.Less(pq[i], pq[j]) }
func (pq primQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *primQueue) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

func (pq *primQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
