package mst

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kruskal/core"
)

var (
	// ErrResultMismatch indicates a result that does not describe src: wrong
	// vertex count, an edge src does not have, or a wrong TotalWeight.
	ErrResultMismatch = errors.New("mst: result does not match graph")

	// ErrNotForest indicates result edges that close a cycle.
	ErrNotForest = errors.New("mst: result edges contain a cycle")

	// ErrNotSpanning indicates an edge of src joining two result trees.
	ErrNotSpanning = errors.New("mst: result forest is not spanning")

	// ErrNotMinimal indicates a non-tree edge lighter than the heaviest
	// tree edge on the path it closes.
	ErrNotMinimal = errors.New("mst: result forest is not minimal")
)

// weightTolerance bounds the relative TotalWeight rounding accepted by Verify.
const weightTolerance = 1e-9

// Verify checks that res is a minimum spanning forest of src without
// recomputing one.
//
// Steps:
//  1. Every result edge is canonical and present in src with its lightest
//     weight; TotalWeight matches their sum.
//  2. An iterative DFS over the result edges roots every tree, recording
//     parent, depth and parent-edge weight. Reaching a visited vertex over a
//     non-parent edge is a cycle.
//  3. Every src edge joins two vertices of the same tree (spanning).
//  4. Cycle property: for every src edge (u, v, w) the heaviest tree edge on
//     the u-v path weighs at most w.
//
// Complexity: O(n + m·h) time for tree height h, O(n + m) space.
func Verify(src core.EdgeSource, res Result) error {
	n, err := checkSource(src)
	if err != nil {
		return err
	}
	if res.Vertices != n {
		return fmt.Errorf("result has %d vertices, graph %d: %w", res.Vertices, n, ErrResultMismatch)
	}
	if len(res.Edges) > n-1 {
		return fmt.Errorf("%d edges on %d vertices: %w", len(res.Edges), n, ErrNotForest)
	}

	edges := core.Collect(src)
	lightest := make(map[[2]int]float64, len(edges))
	for _, e := range edges {
		key := [2]int{e.U, e.V}
		if w, ok := lightest[key]; !ok || e.Weight < w {
			lightest[key] = e.Weight
		}
	}

	sum := 0.0
	for i, e := range res.Edges {
		w, ok := lightest[[2]int{e.U, e.V}]
		switch {
		case e.U >= e.V || !ok:
			return fmt.Errorf("edge #%d %v: %w", i, e, ErrResultMismatch)
		case e.Weight != w:
			return fmt.Errorf("edge #%d %v, graph has weight %g: %w", i, e, w, ErrNotMinimal)
		}
		sum += e.Weight
	}
	if math.Abs(sum-res.TotalWeight) > weightTolerance*math.Max(1, math.Abs(sum)) {
		return fmt.Errorf("total %g, edges sum to %g: %w", res.TotalWeight, sum, ErrResultMismatch)
	}

	t, err := rootForest(n, res.Edges)
	if err != nil {
		return err
	}

	for _, e := range edges {
		if t.comp[e.U] != t.comp[e.V] {
			return fmt.Errorf("edge %v joins two trees: %w", e, ErrNotSpanning)
		}
		if heaviest := t.pathMax(e.U, e.V); heaviest > e.Weight {
			return fmt.Errorf("edge %v is lighter than tree edge weight %g on its cycle: %w", e, heaviest, ErrNotMinimal)
		}
	}

	return nil
}

// rootedForest is a forest with every tree hung from its smallest vertex.
type rootedForest struct {
	parent  []int
	weight  []float64 // weight of the edge to parent
	depth   []int
	comp    []int
	parEdge []int
}

func rootForest(n int, edges []core.Edge) (*rootedForest, error) {
	offsets := make([]int, n+1)
	for _, e := range edges {
		offsets[e.U+1]++
		offsets[e.V+1]++
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}
	adj := make([]int, 2*len(edges))
	next := make([]int, n)
	copy(next, offsets[:n])
	for i, e := range edges {
		adj[next[e.U]] = i
		next[e.U]++
		adj[next[e.V]] = i
		next[e.V]++
	}

	t := &rootedForest{
		parent:  make([]int, n),
		weight:  make([]float64, n),
		depth:   make([]int, n),
		comp:    make([]int, n),
		parEdge: make([]int, n),
	}
	for v := range t.comp {
		t.comp[v] = -1
	}

	stack := make([]int, 0, n)
	for r := 0; r < n; r++ {
		if t.comp[r] >= 0 {
			continue
		}
		t.comp[r], t.parent[r], t.parEdge[r] = r, -1, -1
		stack = append(stack, r)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, i := range adj[offsets[v]:offsets[v+1]] {
				if i == t.parEdge[v] {
					continue
				}
				w := edges[i].Other(v)
				if t.comp[w] >= 0 {
					return nil, fmt.Errorf("edge %v closes a cycle: %w", edges[i], ErrNotForest)
				}
				t.comp[w] = r
				t.parent[w] = v
				t.parEdge[w] = i
				t.weight[w] = edges[i].Weight
				t.depth[w] = t.depth[v] + 1
				stack = append(stack, w)
			}
		}
	}

	return t, nil
}

// pathMax returns the heaviest edge weight on the tree path u..v, or -Inf
// when u == v. Both must be in the same tree.
func (t *rootedForest) pathMax(u, v int) float64 {
	best := math.Inf(-1)
	for u != v {
		if t.depth[u] < t.depth[v] {
			u, v = v, u
		}
		best = math.Max(best, t.weight[u])
		u = t.parent[u]
	}
	return best
}
