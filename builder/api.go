// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// api.go - the Build orchestrator and the edge list constructors write to.
//
// Contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg once, runs cons in order.
//   - Constructors validate parameters before touching the list.
//   - Same inputs, options, seed and constructor order give identical output.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kruskal/core"
)

// Constructor appends vertices and edges to l using the resolved config.
// Constructors validate their parameters first and return sentinel errors
// instead of panicking.
type Constructor func(l *EdgeList, cfg builderConfig) error

// EdgeList accumulates the output of a sequence of constructors. The vertex
// range only grows; an edge whose pair is already present is skipped.
type EdgeList struct {
	n     int
	edges []core.Edge
	seen  map[[2]int]struct{}
}

// VertexCount returns the current vertex range 0..n-1.
func (l *EdgeList) VertexCount() int { return l.n }

// EdgeCount returns the number of edges appended so far.
func (l *EdgeList) EdgeCount() int { return len(l.edges) }

// Has reports whether the unordered pair {u, v} is present.
func (l *EdgeList) Has(u, v int) bool {
	_, ok := l.seen[pairKey(u, v)]
	return ok
}

// Grow extends the vertex range to at least n.
func (l *EdgeList) Grow(n int) {
	if n > l.n {
		l.n = n
	}
}

// Add appends the canonical edge {u, v} with weight w and reports whether it
// was new. The vertex range grows to cover both endpoints.
func (l *EdgeList) Add(u, v int, w float64) bool {
	key := pairKey(u, v)
	if _, dup := l.seen[key]; dup {
		return false
	}
	if l.seen == nil {
		l.seen = make(map[[2]int]struct{})
	}
	l.seen[key] = struct{}{}
	l.edges = append(l.edges, core.Edge{U: key[0], V: key[1], Weight: w})
	l.Grow(key[1] + 1)

	return true
}

// link adds {u, v} unless present, drawing the weight only when the edge is
// new so duplicate pairs do not shift the RNG stream.
func (l *EdgeList) link(u, v int, cfg builderConfig) {
	if l.Has(u, v) {
		return
	}
	l.Add(u, v, cfg.weight())
}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// Build resolves opts, applies every constructor in order and returns the
// vertex count with the accumulated edges. Any constructor error is wrapped
// with "Build: %w" and returned immediately.
//
// Complexity: O(len(opts)) plus the sum of the constructors' costs; the
// duplicate check is O(1) expected per edge.
func Build(opts []BuilderOption, cons ...Constructor) (n int, edges []core.Edge, err error) {
	cfg := newBuilderConfig(opts...)
	var l EdgeList
	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&l, cfg); err != nil {
			return 0, nil, fmt.Errorf("Build: %w", err)
		}
	}

	return l.n, l.edges, nil
}
