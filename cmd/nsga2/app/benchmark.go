package app

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mihai-snyk/nsga2/apis/config/v1alpha1"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
)

func newBenchmarkCommand() *cobra.Command {
	var (
		populationSize int
		maxGenerations int
		seed           uint64
		outputDir      string
	)
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Run NSGA-II on every standard benchmark problem and report quality indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := &v1alpha1.NSGAIIArgs{
				Seed: &seed,
			}
			if cmd.Flags().Changed("population-size") {
				args.PopulationSize = &populationSize
			}
			if cmd.Flags().Changed("generations") {
				args.MaxGenerations = &maxGenerations
			}
			v1alpha1.SetDefaults_NSGAIIArgs(args)
			if err := v1alpha1.ValidateNSGAIIArgs(args); err != nil {
				return err
			}
			problem, err := args.NewProblem()
			if err != nil {
				return err
			}
			config, err := args.ToConfig(problem)
			if err != nil {
				return err
			}

			suite := benchmarks.NewTestSuite(config)
			suite.AddStandardProblems()
			reports, err := suite.Run(cmd.Context(), outputDir)
			if err != nil {
				return err
			}

			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "PROBLEM\tFRONT\tEVALUATIONS\tIGD\tHYPERVOLUME\tSPREAD")
			for _, r := range reports {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", r.Problem, r.FrontSize, humanize.Comma(int64(r.Evaluations)),
					formatIndicator(r.IGD), formatIndicator(r.Hypervolume), formatIndicator(r.Spread))
			}
			return tw.Flush()
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&populationSize, "population-size", 0, "Number of members per generation.")
	fs.IntVar(&maxGenerations, "generations", 0, "Number of generations to run.")
	fs.Uint64Var(&seed, "seed", 1, "Seed of the random source.")
	fs.StringVar(&outputDir, "output-dir", "", "Write an HTML report per problem into this directory.")
	return cmd
}

func formatIndicator(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4g", v)
}
