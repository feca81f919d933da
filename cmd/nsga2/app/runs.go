package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/storage"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/util"
)

const defaultDBPath = "nsga2.db"

func newRunsCommand() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored runs",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath, "Path of the sqlite run database.")

	cmd.AddCommand(newRunsListCommand(&dbPath), newRunsShowCommand(&dbPath))
	return cmd
}

func openStore(cmd *cobra.Command, dbPath string) (storage.Store, error) {
	store, err := storage.NewStore("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(cmd.Context()); err != nil {
		return nil, err
	}
	return store, nil
}

func newRunsListCommand(dbPath *string) *cobra.Command {
	output := OutputText
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			store, err := openStore(cmd, *dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			summaries, err := store.ListRuns(cmd.Context())
			if err != nil {
				return err
			}
			if output == OutputYAML {
				return printYAML(cmd.OutOrStdout(), summaries)
			}
			return printRunSummaries(cmd.OutOrStdout(), summaries)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", output, "Output format, text or yaml.")
	return cmd
}

func newRunsShowCommand(dbPath *string) *cobra.Command {
	output := OutputText
	var plotPath string
	cmd := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			store, err := openStore(cmd, *dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			run, ok, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("run %s not found in %s", args[0], *dbPath)
			}

			if plotPath != "" {
				if err := plotRun(plotPath, run); err != nil {
					return err
				}
			}
			if output == OutputYAML {
				return printYAML(cmd.OutOrStdout(), run)
			}
			return printRun(cmd.OutOrStdout(), run, 0)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", output, "Output format, text or yaml.")
	cmd.Flags().StringVar(&plotPath, "plot", "", "Write an HTML plot of the Pareto front to this path.")
	return cmd
}

// plotRun draws a stored run. The true front is drawn when the stored
// problem is still registered.
func plotRun(path string, run storage.RunRecord) error {
	var problem framework.Problem
	if p, err := benchmarks.Get(run.Problem, run.Config.Dimensions); err == nil {
		problem = p
	}
	if err := util.PlotResults(path, frontPoints(run.ParetoFront()), problem, algorithms.Name, bestPoints(run.History)); err != nil {
		return fmt.Errorf("plotting run %s: %w", run.ID, err)
	}
	return nil
}
