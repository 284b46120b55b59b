package mst

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/kruskal/core"
)

// Method names accepted by New and WithMethod.
const (
	MethodKruskal   = "kruskal"
	MethodFilter    = "filter"
	MethodSkewed    = "skewed"
	MethodQuickSort = "quicksort"
	MethodSQSK      = "sqsk"
	MethodPrim      = "prim"
)

// DefaultCutoff is the range size at or below which the filter variants stop
// partitioning and sort directly. Calibrated on random G(n,p) inputs.
const DefaultCutoff = 32

// InsertionSortCutoff is the range size at or below which quicksort and
// incremental quickselect fall back to insertion sort.
const InsertionSortCutoff = 16

// Skew of SkewedFilterKruskal: the pivot is the minimum of
// clamp(size/SkewSampleDivisor, 1, SkewMaxSamples) random samples.
const (
	SkewSampleDivisor = 100
	SkewMaxSamples    = 5
)

// Options configures strategy construction. Use DefaultOptions as the base.
//
// Fields:
//
//	Method: registry name used by Compute (default MethodFilter).
//	Cutoff: small-case cutoff of the filter variants (default DefaultCutoff;
//	        values below 1 are replaced by DefaultCutoff).
//	Seed:   pivot RNG seed of SkewedFilterKruskal; 0 means defaultRNGSeed.
type Options struct {
	Method string
	Cutoff int
	Seed   int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Method=MethodFilter, Cutoff=DefaultCutoff, Seed=0.
func DefaultOptions() Options {
	return Options{
		Method: MethodFilter,
		Cutoff: DefaultCutoff,
		Seed:   0,
	}
}

// WithMethod selects the strategy used by Compute.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithCutoff sets the filter variants' small-case cutoff.
// Panics if c < 1 (programmer error, as with the other option constructors).
func WithCutoff(c int) Option {
	if c < 1 {
		panic(fmt.Sprintf("mst: WithCutoff: cutoff must be ≥ 1, got %d", c))
	}

	return func(o *Options) { o.Cutoff = c }
}

// WithSeed sets the pivot RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// resolve applies opts over DefaultOptions. A Cutoff below 1 set by a
// hand-written Option falls back to DefaultCutoff.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Cutoff < 1 {
		o.Cutoff = DefaultCutoff
	}

	return o
}

// Methods lists every registered method name in a stable order.
func Methods() []string {
	return []string{MethodKruskal, MethodFilter, MethodSkewed, MethodQuickSort, MethodSQSK, MethodPrim}
}

// KruskalMethods lists the Kruskal-family method names (Methods without Prim).
func KruskalMethods() []string {
	return slices.DeleteFunc(Methods(), func(m string) bool { return m == MethodPrim })
}

// New returns the strategy registered under method, configured by opts
// (opts' own Method, if any, is ignored).
func New(method string, opts ...Option) (Strategy, error) {
	o := resolve(opts)
	switch method {
	case MethodKruskal:
		return NewKruskal(), nil
	case MethodFilter:
		return NewFilterKruskal(WithCutoff(o.Cutoff)), nil
	case MethodSkewed:
		return NewSkewedFilterKruskal(WithCutoff(o.Cutoff), WithSeed(o.Seed)), nil
	case MethodQuickSort:
		return NewQuickSortKruskal(), nil
	case MethodSQSK:
		return NewStarQuickSortKruskal(), nil
	case MethodPrim:
		return NewPrim(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Compute builds the strategy selected by WithMethod (default MethodFilter)
// and solves src with it.
func Compute(src core.EdgeSource, opts ...Option) (Result, error) {
	s, err := New(resolve(opts).Method, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(src)
}
