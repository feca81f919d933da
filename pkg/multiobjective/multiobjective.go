package multiobjective

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga2/apis/config/v1alpha1"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/metrics"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/storage"
)

type options struct {
	store      storage.Store
	registerer prometheus.Registerer
	observers  []algorithms.Observer
	now        func() time.Time
}

// Option configures Optimize.
type Option func(*options)

// WithStore saves the finished run into s. The store must be initialized.
func WithStore(s storage.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithRegisterer exports the run metrics into reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithObservers adds per-generation observers.
func WithObservers(observers ...algorithms.Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, observers...)
	}
}

// Outcome is a finished run.
type Outcome struct {
	RunID    string
	Problem  framework.Problem
	Config   algorithms.NSGA2Config
	Result   *algorithms.Result
	Started  time.Time
	Duration time.Duration
}

// Optimize resolves the problem configured in args and runs NSGA-II on it.
// args is defaulted and validated on a copy; nil runs the defaults.
func Optimize(ctx context.Context, args *v1alpha1.NSGAIIArgs, opts ...Option) (*Outcome, error) {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	problem, config, err := resolve(args)
	if err != nil {
		return nil, err
	}
	nsga, err := algorithms.NewNSGAII(config, framework.ProblemEvaluator(problem))
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := klog.FromContext(ctx).WithValues("runID", runID, "problem", problem.Name())
	ctx = klog.NewContext(ctx, logger)

	nsga.Observers = append(nsga.Observers, algorithms.LoggingObserver(logger))
	var recorder *metrics.Recorder
	if o.registerer != nil {
		recorder = metrics.NewRecorder(o.registerer)
		nsga.Observers = append(nsga.Observers, recorder)
	}
	nsga.Observers = append(nsga.Observers, o.observers...)

	start := o.now()
	res, err := nsga.Run(ctx)
	duration := o.now().Sub(start)
	if recorder != nil {
		recorder.ObserveRun(res, err, duration)
	}
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	if o.store != nil {
		record := storage.NewRunRecord(runID, problem.Name(), nsga.Config(), res, start)
		if err := o.store.SaveRun(ctx, record); err != nil {
			return nil, fmt.Errorf("saving run %s: %w", runID, err)
		}
		logger.V(2).Info("Saved run")
	}

	return &Outcome{
		RunID:    runID,
		Problem:  problem,
		Config:   nsga.Config(),
		Result:   res,
		Started:  start,
		Duration: duration,
	}, nil
}

func resolve(args *v1alpha1.NSGAIIArgs) (framework.Problem, algorithms.NSGA2Config, error) {
	if args == nil {
		args = &v1alpha1.NSGAIIArgs{}
	}
	args = args.DeepCopy()
	v1alpha1.SetDefaults_NSGAIIArgs(args)
	if err := v1alpha1.ValidateNSGAIIArgs(args); err != nil {
		return nil, algorithms.NSGA2Config{}, err
	}

	problem, err := args.NewProblem()
	if err != nil {
		return nil, algorithms.NSGA2Config{}, err
	}
	config, err := args.ToConfig(problem)
	if err != nil {
		return nil, algorithms.NSGA2Config{}, err
	}
	return problem, config, nil
}
