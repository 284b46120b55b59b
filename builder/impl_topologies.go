// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// impl_topologies.go - deterministic canonical topologies.
//
// Every constructor here emits its edges in a fixed order and draws one
// weight per new edge from cfg.weightFn, so with the default weight policy
// the output is fully deterministic even without an RNG.

package builder

import "fmt"

const (
	methodComplete = "Complete"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodGrid     = "Grid"

	minCompleteVertices = 1
	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 2
	minWheelVertices    = 4
	minGridDim          = 1
)

func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}

// Complete returns a Constructor for K_n: every pair (i, j), i < j, in
// row-major order.
func Complete(n int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < minCompleteVertices {
			return tooFew(methodComplete, n, minCompleteVertices)
		}
		l.Grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				l.link(i, j, cfg)
			}
		}

		return nil
	}
}

// Path returns a Constructor for the path 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < minPathVertices {
			return tooFew(methodPath, n, minPathVertices)
		}
		l.Grow(n)
		for i := 0; i+1 < n; i++ {
			l.link(i, i+1, cfg)
		}

		return nil
	}
}

// Cycle returns a Constructor for the n-cycle: Path(n) closed by (0, n-1).
func Cycle(n int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < minCycleVertices {
			return tooFew(methodCycle, n, minCycleVertices)
		}
		l.Grow(n)
		for i := 0; i+1 < n; i++ {
			l.link(i, i+1, cfg)
		}
		l.link(0, n-1, cfg)

		return nil
	}
}

// Star returns a Constructor joining hub 0 to every leaf 1..n-1.
func Star(n int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < minStarVertices {
			return tooFew(methodStar, n, minStarVertices)
		}
		l.Grow(n)
		for i := 1; i < n; i++ {
			l.link(0, i, cfg)
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: hub 0 joined to a rim cycle over
// 1..n-1. Spokes are emitted first, then the rim.
func Wheel(n int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < minWheelVertices {
			return tooFew(methodWheel, n, minWheelVertices)
		}
		l.Grow(n)
		for i := 1; i < n; i++ {
			l.link(0, i, cfg)
		}
		for i := 1; i+1 < n; i++ {
			l.link(i, i+1, cfg)
		}
		l.link(1, n-1, cfg)

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice. Cell (r, c) is vertex
// r*cols+c; for each cell in row-major order the right then the bottom
// neighbour is linked.
func Grid(rows, cols int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		l.Grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					l.link(v, v+1, cfg)
				}
				if r+1 < rows {
					l.link(v, v+cols, cfg)
				}
			}
		}

		return nil
	}
}
