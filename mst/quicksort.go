package mst

import "github.com/katalvlaran/kruskal/core"

// QuickSortKruskal sorts every edge up front, then scans once.
type QuickSortKruskal struct{}

// NewQuickSortKruskal returns the QuickSortKruskal strategy.
func NewQuickSortKruskal() *QuickSortKruskal { return &QuickSortKruskal{} }

// Name returns MethodQuickSort.
func (*QuickSortKruskal) Name() string { return MethodQuickSort }

// Solve computes the minimum spanning forest of src.
//
// The private edge buffer is sorted with quickSort (median-of-three,
// insertion sort at or below InsertionSortCutoff), then offered in order.
// No pruning: the full O(m log m) sort is always paid.
func (*QuickSortKruskal) Solve(src core.EdgeSource) (Result, error) {
	n, err := checkSource(src)
	if err != nil {
		return Result{}, err
	}

	f := newForest(n)
	buf := core.Collect(src)
	f.res.Stats.Partitions = quickSort(buf, core.Less)
	f.scan(buf)

	return f.result(), nil
}
