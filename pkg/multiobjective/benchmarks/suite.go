package benchmarks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/util"
)

// TrueFrontSamples is the resolution of the true fronts the indicators are
// computed against.
const TrueFrontSamples = 500

// Report holds the quality indicators of one benchmark run.
type Report struct {
	Problem     string
	FrontSize   int
	Evaluations int
	// IGD, Hypervolume and Spread are NaN when the problem has no known
	// true front.
	IGD         float64
	Hypervolume float64
	Spread      float64
}

// TestSuite runs a set of benchmark problems
type TestSuite struct {
	problems []framework.Problem
	config   algorithms.NSGA2Config
}

// NewTestSuite creates a new benchmark test suite. The search space of config
// is replaced by the bounds of every problem.
func NewTestSuite(config algorithms.NSGA2Config) *TestSuite {
	return &TestSuite{
		config: config,
	}
}

// AddProblem adds a problem to the test suite
func (ts *TestSuite) AddProblem(p framework.Problem) {
	ts.problems = append(ts.problems, p)
}

// AddStandardProblems adds common benchmark problems
func (ts *TestSuite) AddStandardProblems() {
	ts.AddProblem(NewSCH(1, DefaultSCHBounds))
	// ZDT problems with 30 variables (standard)
	ts.AddProblem(NewZDT1(30))
	ts.AddProblem(NewZDT2(30))
}

// Run executes the test suite. When outputDir is not empty an HTML report is
// written there for every problem.
func (ts *TestSuite) Run(ctx context.Context, outputDir string) ([]Report, error) {
	logger := klog.FromContext(ctx)
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	reports := make([]Report, 0, len(ts.problems))
	for _, problem := range ts.problems {
		logger.V(2).Info("Running benchmark", "problem", problem.Name(), "algorithm", algorithms.Name)

		config := ts.config
		config.SearchSpace = problem.Bounds()
		nsga2, err := algorithms.NewNSGAII(config, framework.ProblemEvaluator(problem))
		if err != nil {
			return nil, fmt.Errorf("configuring %s: %w", problem.Name(), err)
		}
		res, err := nsga2.Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("running %s: %w", problem.Name(), err)
		}

		front := FrontPoints(res.ParetoFront())
		report := Evaluate(problem, front)
		report.Evaluations = res.Evaluations
		reports = append(reports, report)

		if outputDir != "" {
			best := make([]framework.ObjectiveSpacePoint, len(res.History))
			for i, s := range res.History {
				best[i] = s.Best
			}
			path := filepath.Join(outputDir, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithms.Name))
			if err := util.PlotResults(path, front, problem, algorithms.Name, best); err != nil {
				logger.Error(err, "Failed to plot results", "problem", problem.Name())
			}
		}

		logger.Info("Benchmark complete", "problem", report.Problem, "frontSize", report.FrontSize,
			"igd", report.IGD, "hypervolume", report.Hypervolume, "spread", report.Spread)
	}

	return reports, nil
}

// Evaluate computes the quality indicators of front against the true front of
// problem.
func Evaluate(problem framework.Problem, front []framework.ObjectiveSpacePoint) Report {
	report := Report{
		Problem:     problem.Name(),
		FrontSize:   len(front),
		IGD:         nan,
		Hypervolume: nan,
		Spread:      nan,
	}
	trueFront := problem.TrueParetoFront(TrueFrontSamples)
	if len(trueFront) == 0 || len(front) == 0 {
		return report
	}

	report.IGD = IGD(front, trueFront)
	if len(trueFront[0]) == 2 {
		report.Hypervolume = Hypervolume2D(front, ReferencePoint(trueFront, 0.1))
		report.Spread = Spread(front, trueFront)
	}
	return report
}

// FrontPoints returns the objective values of the members.
func FrontPoints(members []algorithms.Member) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, len(members))
	for i, m := range members {
		points[i] = m.Objectives
	}
	return points
}
