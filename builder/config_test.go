// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weight())
}

// TestRNGOptions verifies WithSeed reproducibility and WithRand identity.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	require.NotNil(t, a.rng)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithWeightFn(nil) })
	assert.Panics(t, func() { WithIntWeights(5, 1) })
}

// TestWeightOptionsOverride checks that the last weight option wins.
func TestWeightOptionsOverride(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithConstantWeight(3), WithConstantWeight(9))
	assert.Equal(t, 9.0, cfg.weight())

	cfg = newBuilderConfig(WithSeed(1), WithIntWeights(4, 4))
	assert.Equal(t, 4.0, cfg.weight())
}
