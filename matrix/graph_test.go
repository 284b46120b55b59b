package matrix_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/matrix"
)

// sample is the four-vertex graph used across the module's tests.
func sample() []core.Edge {
	return []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
		{U: 0, V: 3, Weight: 10},
		{U: 0, V: 2, Weight: 4},
	}
}

func TestNew_RowMajorEdges(t *testing.T) {
	g, err := matrix.New(4, sample())
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.InDelta(t, 5.0/6.0, g.Density(), 1e-12)

	got := slices.Collect(g.Edges())
	assert.Equal(t, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 4},
		{U: 0, V: 3, Weight: 10},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
	}, got)

	// Restartable.
	assert.Equal(t, got, slices.Collect(g.Edges()))
}

func TestWeight_Symmetric(t *testing.T) {
	g, err := matrix.New(4, sample())
	require.NoError(t, err)

	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			wuv, okuv := g.Weight(u, v)
			wvu, okvu := g.Weight(v, u)
			assert.Equal(t, okuv, okvu)
			assert.Equal(t, wuv, wvu)
		}
	}

	w, ok := g.Weight(3, 0)
	assert.True(t, ok)
	assert.Equal(t, 10.0, w)

	assert.False(t, g.HasEdge(1, 3))
	assert.False(t, g.HasEdge(2, 2))
	assert.False(t, g.HasEdge(-1, 2))
	assert.False(t, g.HasEdge(0, 4))
}

func TestNew_DuplicatesAndConflicts(t *testing.T) {
	g, err := matrix.New(3, []core.Edge{{U: 0, V: 1, Weight: 2}, {U: 1, V: 0, Weight: 2}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	g, err = matrix.New(3, []core.Edge{{U: 0, V: 1, Weight: 2}, {U: 1, V: 0, Weight: 3}})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrInvalidEdge)
	assert.ErrorIs(t, err, core.ErrConflictingWeight)
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		edges  []core.Edge
		reason error
	}{
		{"self-loop", 3, []core.Edge{{U: 1, V: 1, Weight: 1}}, core.ErrSelfLoop},
		{"out of range", 3, []core.Edge{{U: 0, V: 7, Weight: 1}}, core.ErrVertexOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := matrix.New(tc.n, tc.edges)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, core.ErrInvalidEdge)
			assert.ErrorIs(t, err, tc.reason)
		})
	}

	_, err := matrix.New(-2, nil)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestNew_Trivial(t *testing.T) {
	for _, n := range []int{0, 1} {
		g, err := matrix.New(n, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, g.EdgeCount())
		assert.Zero(t, g.Density())
		assert.Empty(t, slices.Collect(g.Edges()))
	}
}

// TestEdges_EarlyStop makes sure breaking out of the range loop is honoured.
func TestEdges_EarlyStop(t *testing.T) {
	g, err := matrix.New(4, sample())
	require.NoError(t, err)

	seen := 0
	for range g.Edges() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
