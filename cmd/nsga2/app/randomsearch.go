package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective"
)

type randomSearchOutput struct {
	Problem    string    `json:"problem"`
	Iterations int       `json:"iterations"`
	Cost       float64   `json:"cost"`
	Vector     []float64 `json:"vector"`
}

func newRandomSearchCommand() *cobra.Command {
	var (
		args       ArgsOptions
		iterations int
	)
	output := OutputText
	cmd := &cobra.Command{
		Use:   "random-search",
		Short: "Minimize the sum of the objectives of a problem by random sampling",
		Long: `random-search samples uniform vectors from the search space of a problem and
keeps the one with the lowest sum of objectives. By default it spends as many
evaluations as the NSGA-II run configured by the same flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			nsgaArgs, err := args.Args(cmd.Flags())
			if err != nil {
				return err
			}
			res, problem, err := multiobjective.RandomSearch(cmd.Context(), nsgaArgs, iterations)
			if err != nil {
				return err
			}

			out := randomSearchOutput{
				Problem:    problem.Name(),
				Iterations: len(res.History),
				Cost:       res.Cost,
				Vector:     res.Vector,
			}
			w := cmd.OutOrStdout()
			if output == OutputYAML {
				return printYAML(w, out)
			}
			tw := newTabWriter(w)
			fmt.Fprintf(tw, "Problem:\t%s\n", out.Problem)
			fmt.Fprintf(tw, "Iterations:\t%d\n", out.Iterations)
			fmt.Fprintf(tw, "Cost:\t%.6g\n", out.Cost)
			fmt.Fprintf(tw, "Vector:\t%s\n", formatPoint(out.Vector))
			return tw.Flush()
		},
	}

	fs := cmd.Flags()
	args.AddFlags(fs)
	fs.IntVar(&iterations, "iterations", 0, "Number of samples. 0 matches the evaluations of the equivalent NSGA-II run.")
	fs.StringVarP(&output, "output", "o", output, "Output format, text or yaml.")
	return cmd
}
