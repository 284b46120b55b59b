// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi G(n, p) sampler.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0,1}.
//   - Trial order: i asc, then j > i asc. One Bernoulli draw per pair,
//     followed by one weight draw when the pair is kept.
//
// Complexity: O(n²) trials, O(m) output.

package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each of the n(n-1)/2
// pairs independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		l.Grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					l.link(i, j, cfg)
				}
			}
		}

		return nil
	}
}
