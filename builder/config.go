// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng      = nil               (no randomness unless seeded)
//   - weightFn = DefaultWeightFn   (every edge weighs DefaultEdgeWeight)
//
// newBuilderConfig applies options in order; later options win.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices and weights; nil means "no randomness".
	rng *rand.Rand
	// Weight generator, called once per emitted edge.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
