package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskal/core"
)

// TestValidate_Canonicalizes verifies that Validate swaps endpoints into U<V,
// collapses identical duplicates and returns row-major order.
func TestValidate_Canonicalizes(t *testing.T) {
	in := []core.Edge{
		{U: 3, V: 1, Weight: 5},
		{U: 0, V: 2, Weight: 1},
		{U: 1, V: 3, Weight: 5}, // same pair, same weight
		{U: 2, V: 0, Weight: 1}, // reversed duplicate
		{U: 0, V: 1, Weight: 7},
	}

	out, err := core.Validate(4, in)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{U: 0, V: 1, Weight: 7},
		{U: 0, V: 2, Weight: 1},
		{U: 1, V: 3, Weight: 5},
	}, out)

	// Input untouched.
	assert.Equal(t, 3, in[0].U)
}

// TestValidate_Rejects covers every rejection class and its sentinel pair.
func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		edges  []core.Edge
		reason error
		index  int
	}{
		{"self-loop", 3, []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 2, V: 2, Weight: 1}}, core.ErrSelfLoop, 1},
		{"negative endpoint", 3, []core.Edge{{U: -1, V: 1, Weight: 1}}, core.ErrVertexOutOfRange, 0},
		{"endpoint == n", 3, []core.Edge{{U: 0, V: 3, Weight: 1}}, core.ErrVertexOutOfRange, 0},
		{"NaN weight", 2, []core.Edge{{U: 0, V: 1, Weight: math.NaN()}}, core.ErrInvalidWeight, 0},
		{"Inf weight", 2, []core.Edge{{U: 0, V: 1, Weight: math.Inf(-1)}}, core.ErrInvalidWeight, 0},
		{"conflict", 3, []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 1}, {U: 1, V: 0, Weight: 2}}, core.ErrConflictingWeight, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := core.Validate(tc.n, tc.edges)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, core.ErrInvalidEdge)
			assert.ErrorIs(t, err, tc.reason)

			var ee *core.EdgeError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, tc.index, ee.Index)
		})
	}
}

// TestValidate_SmallestConflictIndexWins checks the deterministic choice among
// several conflicting pairs.
func TestValidate_SmallestConflictIndexWins(t *testing.T) {
	in := []core.Edge{
		{U: 2, V: 3, Weight: 1},
		{U: 0, V: 1, Weight: 1},
		{U: 3, V: 2, Weight: 9}, // index 2, pair (2,3)
		{U: 1, V: 0, Weight: 9}, // index 3, pair (0,1)
	}

	_, err := core.Validate(4, in)
	var ee *core.EdgeError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 2, ee.Index)
}

func TestValidate_NegativeN(t *testing.T) {
	_, err := core.Validate(-1, nil)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestValidate_Empty(t *testing.T) {
	out, err := core.Validate(0, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
