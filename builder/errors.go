// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// errors.go - sentinel errors of the builder package.
//
// Constructors wrap these with their method name:
//
//	fmt.Errorf("%s: ...: %w", methodX, ErrY)
//
// Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeightRange indicates a weight interval that is empty or not
// finite.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrConstructFailed indicates that Build could not run a constructor at all,
// e.g. a nil Constructor in the list.
var ErrConstructFailed = errors.New("builder: construction failed")
