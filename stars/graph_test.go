package stars_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/matrix"
	"github.com/katalvlaran/kruskal/stars"
)

func sample() []core.Edge {
	return []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
		{U: 0, V: 3, Weight: 10},
		{U: 0, V: 2, Weight: 4},
	}
}

func TestNew_Layout(t *testing.T) {
	g, err := stars.New(4, sample())
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())

	assert.Equal(t, []core.HalfEdge{{To: 1, Weight: 1}, {To: 2, Weight: 4}, {To: 3, Weight: 10}}, g.Star(0))
	assert.Equal(t, []core.HalfEdge{{To: 0, Weight: 1}, {To: 2, Weight: 2}}, g.Star(1))
	assert.Equal(t, []core.HalfEdge{{To: 0, Weight: 4}, {To: 1, Weight: 2}, {To: 3, Weight: 3}}, g.Star(2))
	assert.Equal(t, []core.HalfEdge{{To: 0, Weight: 10}, {To: 2, Weight: 3}}, g.Star(3))

	total := 0
	for v := 0; v < 4; v++ {
		total += g.Degree(v)
	}
	assert.Equal(t, 2*g.EdgeCount(), total)
}

// TestHalfEdgesMirror checks that every half-edge u→v has a twin v→u with the
// same weight.
func TestHalfEdgesMirror(t *testing.T) {
	g, err := stars.New(6, []core.Edge{
		{U: 5, V: 0, Weight: 2}, {U: 3, V: 1, Weight: 7}, {U: 2, V: 4, Weight: 1},
		{U: 0, V: 3, Weight: 4}, {U: 4, V: 5, Weight: 9},
	})
	require.NoError(t, err)

	for u := 0; u < 6; u++ {
		for to, w := range g.Neighbors(u) {
			back, ok := g.Weight(to, u)
			require.True(t, ok, "missing twin %d→%d", to, u)
			assert.Equal(t, w, back)
		}
	}
}

func TestEdges_OncePerEdgeRowMajor(t *testing.T) {
	g, err := stars.New(4, sample())
	require.NoError(t, err)

	got := slices.Collect(g.Edges())
	assert.Equal(t, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 4},
		{U: 0, V: 3, Weight: 10},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
	}, got)
}

// TestMatchesMatrix verifies that both representations yield the same
// sequence (and therefore the same multiset) of undirected edges.
func TestMatchesMatrix(t *testing.T) {
	in := []core.Edge{
		{U: 7, V: 2, Weight: 3}, {U: 1, V: 0, Weight: 1}, {U: 4, V: 6, Weight: 8},
		{U: 3, V: 5, Weight: 2}, {U: 0, V: 7, Weight: 5}, {U: 6, V: 1, Weight: 5},
		{U: 2, V: 7, Weight: 3},
	}
	sg, err := stars.New(8, in)
	require.NoError(t, err)
	mg, err := matrix.New(8, in)
	require.NoError(t, err)

	assert.Equal(t, mg.EdgeCount(), sg.EdgeCount())
	assert.Equal(t, slices.Collect(mg.Edges()), slices.Collect(sg.Edges()))
}

func TestNeighbors(t *testing.T) {
	g, err := stars.New(4, sample())
	require.NoError(t, err)

	got := maps.Collect(g.Neighbors(2))
	assert.Equal(t, map[int]float64{0: 4, 1: 2, 3: 3}, got)

	w, ok := g.Weight(3, 0)
	assert.True(t, ok)
	assert.Equal(t, 10.0, w)
	assert.False(t, g.HasEdge(1, 3))
	assert.False(t, g.HasEdge(9, 0))
}

func TestNew_Rejects(t *testing.T) {
	g, err := stars.New(3, []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 0, Weight: 4}})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrInvalidEdge)
	assert.ErrorIs(t, err, core.ErrConflictingWeight)

	g, err = stars.New(3, []core.Edge{{U: 2, V: 2, Weight: 1}})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestNew_Isolated(t *testing.T) {
	g, err := stars.New(4, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
	for v := 0; v < 4; v++ {
		assert.Empty(t, g.Star(v))
	}
	assert.Empty(t, slices.Collect(g.Edges()))
}
