package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/storage"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/util"
)

type runOptions struct {
	args     ArgsOptions
	dbPath   string
	plotPath string
	output   string
}

func newRunCommand() *cobra.Command {
	o := &runOptions{output: OutputText}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run NSGA-II on a benchmark problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}

	fs := cmd.Flags()
	o.args.AddFlags(fs)
	fs.StringVar(&o.dbPath, "db", "", "Save the run into the sqlite database at this path.")
	fs.StringVar(&o.plotPath, "plot", "", "Write an HTML plot of the Pareto front to this path.")
	fs.StringVarP(&o.output, "output", "o", o.output, "Output format, text or yaml.")
	return cmd
}

func (o *runOptions) run(cmd *cobra.Command) error {
	if err := validateOutput(o.output); err != nil {
		return err
	}
	args, err := o.args.Args(cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var opts []multiobjective.Option
	if o.dbPath != "" {
		store := storage.NewSQLiteStore(o.dbPath)
		if err := store.Init(ctx); err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, multiobjective.WithStore(store))
	}

	out, err := multiobjective.Optimize(ctx, args, opts...)
	if err != nil {
		return err
	}
	record := storage.NewRunRecord(out.RunID, out.Problem.Name(), out.Config, out.Result, out.Started)

	if o.plotPath != "" {
		front := benchmarks.FrontPoints(out.Result.ParetoFront())
		if err := util.PlotResults(o.plotPath, front, out.Problem, algorithms.Name, bestPoints(record.History)); err != nil {
			return fmt.Errorf("plotting run %s: %w", out.RunID, err)
		}
		klog.FromContext(ctx).V(2).Info("Wrote plot", "path", o.plotPath)
	}

	w := cmd.OutOrStdout()
	if o.output == OutputYAML {
		return printYAML(w, record)
	}
	return printRun(w, record, out.Duration)
}
