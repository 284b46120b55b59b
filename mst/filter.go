package mst

import (
	"math/rand"

	"github.com/katalvlaran/kruskal/core"
)

// FilterKruskal partitions around quasi-median pivots and filters the heavy
// side before recursing into it.
type FilterKruskal struct {
	cutoff int
}

// NewFilterKruskal returns FilterKruskal; only Options.Cutoff is used.
func NewFilterKruskal(opts ...Option) *FilterKruskal {
	return &FilterKruskal{cutoff: resolve(opts).Cutoff}
}

// Name returns MethodFilter.
func (*FilterKruskal) Name() string { return MethodFilter }

// Cutoff returns the small-case cutoff in use.
func (s *FilterKruskal) Cutoff() int { return s.cutoff }

// Solve computes the minimum spanning forest of src.
// Pivot: median of first, middle and last element of the range.
func (s *FilterKruskal) Solve(src core.EdgeSource) (Result, error) {
	n, err := checkSource(src)
	if err != nil {
		return Result{}, err
	}

	f := newForest(n)
	filterKruskal(core.Collect(src), f, s.cutoff, func(buf []core.Edge, lo, hi int) int {
		return medianOfThree(buf, lo, hi, core.Less)
	})

	return f.result(), nil
}

// SkewedFilterKruskal is FilterKruskal with a pivot biased toward low ranks:
// the minimum of clamp(size/SkewSampleDivisor, 1, SkewMaxSamples) uniformly
// drawn elements of the range.
type SkewedFilterKruskal struct {
	cutoff int
	seed   int64
}

// NewSkewedFilterKruskal returns SkewedFilterKruskal; Options.Cutoff and
// Options.Seed are used.
func NewSkewedFilterKruskal(opts ...Option) *SkewedFilterKruskal {
	o := resolve(opts)

	return &SkewedFilterKruskal{cutoff: o.Cutoff, seed: o.Seed}
}

// Name returns MethodSkewed.
func (*SkewedFilterKruskal) Name() string { return MethodSkewed }

// Cutoff returns the small-case cutoff in use.
func (s *SkewedFilterKruskal) Cutoff() int { return s.cutoff }

// Solve computes the minimum spanning forest of src. Each call restarts the
// pivot RNG from the configured seed.
func (s *SkewedFilterKruskal) Solve(src core.EdgeSource) (Result, error) {
	n, err := checkSource(src)
	if err != nil {
		return Result{}, err
	}

	f := newForest(n)
	rng := rngFromSeed(s.seed)
	filterKruskal(core.Collect(src), f, s.cutoff, func(buf []core.Edge, lo, hi int) int {
		return skewedPivot(buf, lo, hi, rng)
	})

	return f.result(), nil
}

// skewedPivot returns the index of the smallest of r random samples of buf[lo:hi].
func skewedPivot(buf []core.Edge, lo, hi int, rng *rand.Rand) int {
	size := hi - lo
	r := min(max(size/SkewSampleDivisor, 1), SkewMaxSamples)

	best := lo + rng.Intn(size)
	for i := 1; i < r; i++ {
		c := lo + rng.Intn(size)
		if core.Less(buf[c], buf[best]) {
			best = c
		}
	}

	return best
}

// filterTask is a pending range [lo, hi) of the work-list. filter marks heavy
// sides that must be compacted against the forest before use.
type filterTask struct {
	lo, hi int
	filter bool
}

// filterKruskal drives the shared FilterKruskal recursion as an explicit
// work-list so adversarial inputs cannot grow the call stack.
//
// Invariant: tasks are popped in increasing weight order over the whole
// buffer. A partition pushes (heavy, filter), (pivot), (light) so the light
// side is finished before the pivot, and the pivot before anything heavier.
func filterKruskal(buf []core.Edge, f *forest, cutoff int, pick func(buf []core.Edge, lo, hi int) int) {
	// a one-edge range must end in the scan branch
	cutoff = max(cutoff, 1)
	stack := []filterTask{{lo: 0, hi: len(buf)}}
	for len(stack) > 0 && !f.full() {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lo, hi := t.lo, t.hi
		if t.filter {
			hi = f.filter(buf, lo, hi)
		}
		if hi-lo <= cutoff {
			insertionSort(buf, lo, hi, core.Less)
			f.scan(buf[lo:hi])
			continue
		}

		p := partition(buf, lo, hi, pick(buf, lo, hi), core.Less)
		f.res.Stats.Partitions++
		stack = append(stack,
			filterTask{lo: p + 1, hi: hi, filter: true},
			filterTask{lo: p, hi: p + 1},
			filterTask{lo: lo, hi: p},
		)
	}
}
