package algorithms

import (
	"context"
	"fmt"
	"math/rand/v2"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// RandomSearchConfig holds the tunables of a random search run.
type RandomSearchConfig struct {
	SearchSpace   []framework.Bounds
	MaxIterations int
	Seed          uint64
}

func (c RandomSearchConfig) Validate() error {
	errs := ValidateSearchSpace(field.NewPath("searchSpace"), c.SearchSpace)
	if c.MaxIterations <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("maxIterations"), c.MaxIterations, "must be greater than 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", framework.ErrInvalidConfiguration, errs.ToAggregate())
	}
	return nil
}

// RandomSearchResult holds the best candidate found by RandomSearch.
type RandomSearchResult struct {
	Vector []float64
	Cost   float64
	// History holds the best cost after every iteration.
	History []float64
}

// RandomSearch samples uniform vectors from the search space and keeps the one
// with the lowest cost. It is the single-objective baseline NSGA-II runs are
// compared against.
func RandomSearch(ctx context.Context, config RandomSearchConfig, objective framework.ObjectiveFunc) (*RandomSearchResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if objective == nil {
		return nil, fmt.Errorf("%w: an objective function is required", framework.ErrInvalidConfiguration)
	}

	logger := klog.FromContext(ctx)
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed))

	var best *RandomSearchResult
	history := make([]float64, 0, config.MaxIterations)
	for i := 0; i < config.MaxIterations; i++ {
		vector := make([]float64, len(config.SearchSpace))
		for j, b := range config.SearchSpace {
			vector[j] = b.L + (b.H-b.L)*rng.Float64()
		}
		cost := objective(vector)
		if best == nil || cost < best.Cost {
			best = &RandomSearchResult{Vector: vector, Cost: cost}
		}
		history = append(history, best.Cost)
		logger.V(5).Info("Random search iteration", "iteration", i+1, "best", best.Cost)
	}

	best.History = history
	logger.V(2).Info("Random search complete", "iterations", config.MaxIterations, "cost", best.Cost, "vector", best.Vector)
	return best, nil
}
