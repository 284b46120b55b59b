package mst_test

import (
	"fmt"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/matrix"
	"github.com/katalvlaran/kruskal/mst"
	"github.com/katalvlaran/kruskal/stars"
)

// exampleEdges is a 4-cycle with one chord:
// 0–1 (1), 1–2 (2), 2–3 (3), 0–3 (10), 0–2 (4).
var exampleEdges = []core.Edge{
	{U: 0, V: 1, Weight: 1},
	{U: 1, V: 2, Weight: 2},
	{U: 2, V: 3, Weight: 3},
	{U: 0, V: 3, Weight: 10},
	{U: 0, V: 2, Weight: 4},
}

// ExampleCompute runs the default strategy (FilterKruskal) on the dense
// representation.
func ExampleCompute() {
	g, err := matrix.New(4, exampleEdges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := mst.Compute(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %g, Edges: %v\n", res.TotalWeight, res.Edges)
	// Output: Total: 6, Edges: [(0,1,1) (1,2,2) (2,3,3)]
}

// ExampleStarQuickSortKruskal runs the star-specialized strategy, which
// requires the forward-star representation.
func ExampleStarQuickSortKruskal() {
	g, err := stars.New(4, exampleEdges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := mst.NewStarQuickSortKruskal().Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %g, Spanning: %t, Edges: %v\n", res.TotalWeight, res.Spanning(), res.Edges)
	// Output: Total: 6, Spanning: true, Edges: [(0,1,1) (1,2,2) (2,3,3)]
}

// ExampleResult_Components shows a forest result on a disconnected graph:
// vertex 3 has no edges, so two trees remain.
func ExampleResult_Components() {
	g, err := stars.New(4, exampleEdges[:2])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := mst.Compute(g, mst.WithMethod(mst.MethodKruskal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(res.Edges), res.Spanning(), res.Components())
	// Output: 2 false 2
}
