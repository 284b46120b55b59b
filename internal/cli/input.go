package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kruskal/builder"
	"github.com/katalvlaran/kruskal/internal/graphio"
	"github.com/katalvlaran/kruskal/mst"
)

// Input contains the flag values shared by the subcommands
type Input struct {
	configPath string
	verbose    bool

	inputPath string
	format    string

	random    int
	density   float64
	connected bool
	seed      int64
	minWeight float64
	maxWeight float64

	repr     reprFlag
	strategy string
	cutoff   int
	repeat   int
	verify   bool
	report   reportFlag

	outputPath string
}

// newInput returns an Input holding the flag defaults.
func newInput() *Input {
	return &Input{
		density:   0.01,
		seed:      1,
		minWeight: 1,
		maxWeight: 100,
		repr:      reprStars,
		strategy:  "all",
		cutoff:    mst.DefaultCutoff,
		repeat:    1,
		report:    reportText,
	}
}

// Methods resolves --strategy into method names. "all" expands to every
// Kruskal-family method.
func (i *Input) Methods() ([]string, error) {
	if strings.TrimSpace(i.strategy) == "all" {
		return mst.KruskalMethods(), nil
	}
	var out []string
	for _, name := range strings.Split(i.strategy, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, err := mst.New(name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", mst.ErrUnknownMethod, i.strategy)
	}
	return out, nil
}

// Format returns the --format value, validated.
func (i *Input) Format() (graphio.Format, error) {
	return graphio.ParseFormat(i.format)
}

// validateRun checks the run flags before anything is built.
func (i *Input) validateRun() error {
	if i.inputPath != "" && i.random > 0 {
		return fmt.Errorf("%w (got --input %q, --random %d)", errTwoGraphs, i.inputPath, i.random)
	}
	if i.cutoff < 1 {
		return fmt.Errorf("--cutoff must be ≥ 1, got %d", i.cutoff)
	}
	if i.repeat < 1 {
		return fmt.Errorf("--repeat must be ≥ 1, got %d", i.repeat)
	}
	return nil
}

// randomOptions returns the builder options for --random graphs.
func (i *Input) randomOptions() ([]builder.BuilderOption, error) {
	if err := builder.CheckWeightRange(i.minWeight, i.maxWeight); err != nil {
		return nil, err
	}
	return []builder.BuilderOption{
		builder.WithSeed(i.seed),
		builder.WithUniformWeight(i.minWeight, i.maxWeight),
	}, nil
}

// randomConstructors returns G(n, p), on top of a Path backbone when
// --connected is set.
func (i *Input) randomConstructors() []builder.Constructor {
	cons := []builder.Constructor{builder.RandomSparse(i.random, i.density)}
	if i.connected {
		cons = append([]builder.Constructor{builder.Path(i.random)}, cons...)
	}
	return cons
}
