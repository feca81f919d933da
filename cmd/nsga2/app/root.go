package app

import (
	goflag "flag"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
)

// NewNSGAIICommand creates the nsga2 command tree writing its output to out.
func NewNSGAIICommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nsga2",
		Short: "Multi-objective optimization with NSGA-II",
		Long: `nsga2 runs the NSGA-II genetic algorithm on benchmark problems,
compares it against a random search baseline and keeps a history of runs.`,
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newRunCommand(),
		newRandomSearchCommand(),
		newBenchmarkCommand(),
		newRunsCommand(),
		newProblemsCommand(),
	)
	return cmd
}

func newProblemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the benchmark problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range benchmarks.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
