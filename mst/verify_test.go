package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskal/builder"
	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/mst"
	"github.com/katalvlaran/kruskal/stars"
)

func TestVerify_AcceptsEveryStrategy(t *testing.T) {
	t.Parallel()

	n, edges, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(17), builder.WithIntWeights(1, 6)},
		builder.RandomSparse(120, 0.04),
	)
	require.NoError(t, err)

	for _, r := range representations {
		src, err := r.build(n, edges)
		require.NoError(t, err)
		for _, s := range strategiesFor(t, src) {
			res, err := s.Solve(src)
			require.NoError(t, err)
			assert.NoError(t, mst.Verify(src, res), "%s/%s", r.name, s.Name())
		}
	}

	// Raw sources with repeated pairs verify against the lightest copy.
	raw := listSource{n: 3, edges: []core.Edge{{U: 1, V: 0, Weight: 9}, {U: 0, V: 1, Weight: 2}, {U: 2, V: 1, Weight: 4}}}
	res, err := mst.NewKruskal().Solve(raw)
	require.NoError(t, err)
	assert.NoError(t, mst.Verify(raw, res))
}

func TestVerify_RejectsTamperedResults(t *testing.T) {
	t.Parallel()

	g, err := stars.New(4, exampleEdges)
	require.NoError(t, err)

	result := func(total float64, edges ...core.Edge) mst.Result {
		return mst.Result{Vertices: 4, TotalWeight: total, Edges: edges}
	}
	e01 := core.Edge{U: 0, V: 1, Weight: 1}
	e12 := core.Edge{U: 1, V: 2, Weight: 2}
	e23 := core.Edge{U: 2, V: 3, Weight: 3}
	e03 := core.Edge{U: 0, V: 3, Weight: 10}
	e02 := core.Edge{U: 0, V: 2, Weight: 4}

	tests := []struct {
		name string
		res  mst.Result
		want error
	}{
		{"valid", result(6, e01, e12, e23), nil},
		{"valid in any order", result(6, e23, e01, e12), nil},
		{"heavier tree", result(13, e01, e12, e03), mst.ErrNotMinimal},
		{"cycle", result(7, e01, e12, e02), mst.ErrNotForest},
		{"too many edges", result(16, e01, e12, e23, e03), mst.ErrNotForest},
		{"missing edge", result(3, e01, e12), mst.ErrNotSpanning},
		{"foreign edge", result(4, e01, e12, core.Edge{U: 1, V: 3, Weight: 1}), mst.ErrResultMismatch},
		{"wrong weight", result(6, e01, e12, core.Edge{U: 2, V: 3, Weight: 2}), mst.ErrNotMinimal},
		{"reversed edge", result(6, e01, e12, core.Edge{U: 3, V: 2, Weight: 3}), mst.ErrResultMismatch},
		{"wrong total", result(7, e01, e12, e23), mst.ErrResultMismatch},
		{"wrong vertices", mst.Result{Vertices: 5, TotalWeight: 6, Edges: []core.Edge{e01, e12, e23}}, mst.ErrResultMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := mst.Verify(g, tc.res)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.ErrorIs(t, mst.Verify(nil, mst.Result{}), mst.ErrNilSource)
}
