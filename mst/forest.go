package mst

import (
	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/dsu"
)

// forest is the accept/reject loop every strategy drives: one DisjointSet,
// the growing Result and the n-1 stop condition.
type forest struct {
	ds   *dsu.DisjointSet
	need int // n-1 edges complete a spanning tree
	res  Result
}

func newForest(n int) *forest {
	return &forest{
		ds:   dsu.New(n),
		need: n - 1,
		res: Result{
			Vertices: n,
			Edges:    make([]core.Edge, 0, n-1),
		},
	}
}

// full reports whether n-1 edges have been accepted.
func (f *forest) full() bool {
	return len(f.res.Edges) >= f.need
}

// offer accepts e iff it joins two components. e must be canonical.
func (f *forest) offer(e core.Edge) bool {
	f.res.Stats.Examined++
	if !f.ds.Union(e.U, e.V) {
		return false
	}
	f.res.Edges = append(f.res.Edges, e)
	f.res.TotalWeight += e.Weight

	return true
}

// scan offers sorted edges in order until the forest is full.
func (f *forest) scan(sorted []core.Edge) {
	for _, e := range sorted {
		if f.full() {
			return
		}
		f.offer(e)
	}
}

// filter compacts buf[lo:hi] in place, keeping only edges whose endpoints are
// still in different components, and returns the new end of the range.
func (f *forest) filter(buf []core.Edge, lo, hi int) int {
	w := lo
	for r := lo; r < hi; r++ {
		e := buf[r]
		if f.ds.Find(e.U) != f.ds.Find(e.V) {
			buf[w] = e
			w++
		}
	}
	f.res.Stats.Filtered += hi - w

	return w
}

// result returns the finished Result.
func (f *forest) result() Result {
	return f.res
}

// checkSource enforces the shared preconditions and returns n.
func checkSource(src core.EdgeSource) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	n := src.VertexCount()
	if n <= 0 {
		return 0, ErrEmptyGraph
	}

	return n, nil
}
