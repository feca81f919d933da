package multiobjective

import (
	"context"

	"github.com/mihai-snyk/nsga2/apis/config/v1alpha1"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// WeightedSum collapses the objectives of a problem into their sum, the same
// scalarization used to pick the best member of a generation.
func WeightedSum(p framework.Problem) framework.ObjectiveFunc {
	objFuncs := p.ObjectiveFuncs()
	return func(x []float64) float64 {
		sum := 0.0
		for _, f := range objFuncs {
			sum += f(x)
		}
		return sum
	}
}

// RandomSearch runs the random search baseline on the weighted sum of the
// problem configured in args, spending as many evaluations as the NSGA-II
// run configured by the same args would when iterations is 0.
func RandomSearch(ctx context.Context, args *v1alpha1.NSGAIIArgs, iterations int) (*algorithms.RandomSearchResult, framework.Problem, error) {
	problem, config, err := resolve(args)
	if err != nil {
		return nil, nil, err
	}
	if iterations == 0 {
		iterations = config.PopulationSize * (config.MaxGenerations + 2)
	}

	res, err := algorithms.RandomSearch(ctx, algorithms.RandomSearchConfig{
		SearchSpace:   config.SearchSpace,
		MaxIterations: iterations,
		Seed:          config.Seed,
	}, WeightedSum(problem))
	if err != nil {
		return nil, nil, err
	}
	return res, problem, nil
}
