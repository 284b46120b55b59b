package cli

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := newInput()
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "mstbench",
		Short:             "Compare Kruskal-family minimum spanning tree strategies on matrix and star graphs.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setup(input),
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "YAML file with default flag values")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one or more strategies on a graph and report timings",
		Args:  cobra.NoArgs,
		RunE:  newRunCommand(ctx, input),
	}
	addGraphFlags(runCmd, input)
	runCmd.Flags().StringVarP(&input.inputPath, "input", "i", "", "edge list file, - for stdin")
	runCmd.Flags().StringVar(&input.format, "format", "", "input format: text|json (default: from extension)")
	runCmd.Flags().Var(&input.repr, "repr", "graph representation: matrix|stars")
	runCmd.Flags().StringVarP(&input.strategy, "strategy", "s", input.strategy, "comma-separated methods, or all")
	runCmd.Flags().IntVar(&input.cutoff, "cutoff", input.cutoff, "small-case cutoff of the filter strategies")
	runCmd.Flags().IntVarP(&input.repeat, "repeat", "r", input.repeat, "timed repetitions per strategy")
	runCmd.Flags().BoolVar(&input.verify, "verify", false, "check every result against Prim")
	runCmd.Flags().Var(&input.report, "report", "report format: text|json")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random graph in the text edge list format",
		Args:  cobra.NoArgs,
		RunE:  newGenerateCommand(input),
	}
	addGraphFlags(generateCmd, input)
	generateCmd.Flags().StringVarP(&input.outputPath, "output", "o", "", "output file (default: stdout)")

	strategiesCmd := &cobra.Command{
		Use:   "strategies",
		Short: "List the available strategies",
		Args:  cobra.NoArgs,
		RunE:  listStrategies,
	}

	rootCmd.AddCommand(runCmd, generateCmd, strategiesCmd)
	return rootCmd
}

// addGraphFlags registers the random graph flags shared by run and generate.
func addGraphFlags(cmd *cobra.Command, input *Input) {
	cmd.Flags().IntVarP(&input.random, "random", "n", 0, "generate a random graph with n vertices")
	cmd.Flags().Float64VarP(&input.density, "density", "p", input.density, "edge probability of the random graph")
	cmd.Flags().BoolVar(&input.connected, "connected", false, "add a path through all vertices to the random graph")
	cmd.Flags().Int64Var(&input.seed, "seed", input.seed, "random seed for graph generation and pivot sampling")
	cmd.Flags().Float64Var(&input.minWeight, "min-weight", input.minWeight, "lower bound of random weights")
	cmd.Flags().Float64Var(&input.maxWeight, "max-weight", input.maxWeight, "upper bound of random weights")
}

func setup(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(log.InfoLevel)
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		}
		if input.configPath != "" {
			log.Debugf("Loading config from %s", input.configPath)
			if err := applyConfig(cmd, input.configPath); err != nil {
				return err
			}
			// the config may have turned on verbose output
			if input.verbose {
				log.SetLevel(log.DebugLevel)
			}
		}
		return nil
	}
}
