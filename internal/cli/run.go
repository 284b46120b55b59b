package cli

import (
	"context"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskal/builder"
	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/internal/graphio"
	"github.com/katalvlaran/kruskal/matrix"
	"github.com/katalvlaran/kruskal/mst"
	"github.com/katalvlaran/kruskal/stars"
)

var (
	errNoGraph      = errors.New("need --input or --random")
	errTwoGraphs    = errors.New("--input and --random are mutually exclusive")
	errVerifyFailed = errors.New("verification failed")
)

// verifyTolerance is the relative tolerance of the --verify weight check.
const verifyTolerance = 1e-9

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := input.validateRun(); err != nil {
			return err
		}
		methods, err := input.Methods()
		if err != nil {
			return err
		}

		g, err := loadGraph(cmd, input)
		if err != nil {
			return errors.Wrap(err, "loading graph")
		}
		src, err := buildRepresentation(input.repr, g)
		if err != nil {
			return errors.Wrapf(err, "building %s representation", input.repr)
		}
		logger := log.WithFields(log.Fields{
			"repr":     input.repr,
			"vertices": src.VertexCount(),
			"edges":    src.EdgeCount(),
		})
		logger.Debug("graph ready")

		var reference *mst.Result
		if input.verify {
			ref, err := mst.NewPrim().Solve(src)
			if err != nil {
				return errors.Wrap(err, "computing reference")
			}
			reference = &ref
		}

		rep := report{
			Repr:      string(input.repr),
			Vertices:  src.VertexCount(),
			Edges:     src.EdgeCount(),
			Footprint: footprint(input.repr, src.VertexCount(), src.EdgeCount()),
			Repeat:    input.repeat,
		}
		for _, method := range methods {
			if err := ctx.Err(); err != nil {
				return errors.WithStack(err)
			}
			// a lone sqsk on a matrix falls through to ErrUnsupportedSource
			if _, ok := src.(core.StarSource); method == mst.MethodSQSK && !ok && len(methods) > 1 {
				logger.WithField("strategy", method).Warn("skipping: needs the stars representation")
				continue
			}

			s, err := mst.New(method, mst.WithCutoff(input.cutoff), mst.WithSeed(input.seed))
			if err != nil {
				return err
			}
			row, err := measure(ctx, s, src, input.repeat)
			if err != nil {
				return errors.WithMessagef(err, "strategy %s", method)
			}
			if reference != nil {
				if err := verify(src, row.result, *reference); err != nil {
					return errors.WithMessagef(err, "strategy %s", method)
				}
				row.Verified = true
			}
			logger.WithFields(log.Fields{
				"strategy": method,
				"total":    row.result.TotalWeight,
				"best":     row.Best,
			}).Debug("solved")
			rep.Rows = append(rep.Rows, row)
		}

		return rep.write(cmd.OutOrStdout(), input.report)
	}
}

// loadGraph reads --input or generates --random.
func loadGraph(cmd *cobra.Command, input *Input) (graphio.Graph, error) {
	switch {
	case input.inputPath == "-":
		format, err := input.Format()
		if err != nil {
			return graphio.Graph{}, err
		}
		return graphio.Read(cmd.InOrStdin(), format)
	case input.inputPath != "":
		format, err := input.Format()
		if err != nil {
			return graphio.Graph{}, err
		}
		log.Debugf("Reading graph from %s", input.inputPath)
		return graphio.ReadFile(input.inputPath, format)
	case input.random > 0:
		return randomGraph(input)
	default:
		return graphio.Graph{}, errNoGraph
	}
}

func randomGraph(input *Input) (graphio.Graph, error) {
	opts, err := input.randomOptions()
	if err != nil {
		return graphio.Graph{}, err
	}
	n, edges, err := builder.Build(opts, input.randomConstructors()...)
	if err != nil {
		return graphio.Graph{}, err
	}
	log.WithFields(log.Fields{"vertices": n, "edges": len(edges), "seed": input.seed}).Debug("generated random graph")
	return graphio.Graph{Vertices: n, Edges: edges}, nil
}

func buildRepresentation(r reprFlag, g graphio.Graph) (core.EdgeSource, error) {
	switch r {
	case reprMatrix:
		m, err := matrix.New(g.Vertices, g.Edges)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		s, err := stars.New(g.Vertices, g.Edges)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// footprint estimates the bytes held by a representation.
func footprint(r reprFlag, n, m int) uint64 {
	const (
		floatSize    = 8
		intSize      = 8
		halfEdgeSize = intSize + floatSize
	)
	if r == reprMatrix {
		return uint64(n) * uint64(max(n-1, 0)) / 2 * floatSize
	}
	return uint64(n+1)*intSize + 2*uint64(m)*halfEdgeSize
}

// measure solves src repeat times and keeps the last result.
func measure(ctx context.Context, s mst.Strategy, src core.EdgeSource, repeat int) (reportRow, error) {
	row := reportRow{Method: s.Name(), Best: time.Duration(math.MaxInt64)}
	var total time.Duration
	for i := 0; i < repeat; i++ {
		if err := ctx.Err(); err != nil {
			return row, err
		}
		start := time.Now()
		res, err := s.Solve(src)
		elapsed := time.Since(start)
		if err != nil {
			return row, err
		}
		row.result = res
		total += elapsed
		row.Best = min(row.Best, elapsed)
	}
	row.Mean = total / time.Duration(repeat)
	return row, nil
}

// verify checks a result with mst.Verify and compares it with the Prim
// reference: same edge count and the same total weight up to
// verifyTolerance.
func verify(src core.EdgeSource, got, want mst.Result) error {
	if err := mst.Verify(src, got); err != nil {
		return errors.Wrap(errVerifyFailed, err.Error())
	}
	if len(got.Edges) != len(want.Edges) {
		return errors.Wrapf(errVerifyFailed, "%d edges, want %d", len(got.Edges), len(want.Edges))
	}
	scale := math.Max(1, math.Abs(want.TotalWeight))
	if math.Abs(got.TotalWeight-want.TotalWeight) > verifyTolerance*scale {
		return errors.Wrapf(errVerifyFailed, "total %g, want %g", got.TotalWeight, want.TotalWeight)
	}
	return nil
}

// writeGraph writes g to path, or to stdout when path is empty.
func writeGraph(cmd *cobra.Command, path string, g graphio.Graph) error {
	if path == "" {
		return graphio.WriteText(cmd.OutOrStdout(), g)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := graphio.WriteText(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}

func newGenerateCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if input.random <= 0 {
			return errors.New("--random must be ≥ 1")
		}
		g, err := randomGraph(input)
		if err != nil {
			return errors.Wrap(err, "generating graph")
		}
		log.WithFields(log.Fields{"vertices": g.Vertices, "edges": len(g.Edges)}).Info("generated")
		return writeGraph(cmd, input.outputPath, g)
	}
}
