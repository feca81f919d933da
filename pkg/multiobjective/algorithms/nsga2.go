package algorithms

import (
	"context"
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

const (
	Name = "NSGA-II"

	// DefaultBitsPerParam is used when NSGA2Config.BitsPerParam is left unset.
	DefaultBitsPerParam = 16
)

var tracer = otel.Tracer("github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms")

// NSGA2Config holds the tunables of a single NSGA-II run.
type NSGA2Config struct {
	// SearchSpace holds one entry per decision variable.
	SearchSpace []framework.Bounds

	PopulationSize       int
	MaxGenerations       int
	CrossoverProbability float64
	// BitsPerParam is the width of each genome segment. Defaults to 16.
	BitsPerParam int
	Seed         uint64

	Dominance framework.DominancePolicy
	// BoundaryInfinity assigns +Inf crowding distance to the extremes of
	// every objective instead of leaving them without a contribution.
	BoundaryInfinity bool
	// CacheEvaluations memoizes decoded genomes and their objective values
	// for the duration of a run.
	CacheEvaluations bool
}

// Validate returns an error wrapping framework.ErrInvalidConfiguration when
// the config cannot be run.
func (c NSGA2Config) Validate() error {
	var errs field.ErrorList

	if c.PopulationSize <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("populationSize"), c.PopulationSize, "must be greater than 0"))
	}
	if c.MaxGenerations <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("maxGenerations"), c.MaxGenerations, "must be greater than 0"))
	}
	if math.IsNaN(c.CrossoverProbability) || c.CrossoverProbability < 0 || c.CrossoverProbability > 1 {
		errs = append(errs, field.Invalid(field.NewPath("crossoverProbability"), c.CrossoverProbability, "must be in [0, 1]"))
	}
	if c.BitsPerParam < 1 || c.BitsPerParam > framework.MaxBitsPerParam {
		errs = append(errs, field.Invalid(field.NewPath("bitsPerParam"), c.BitsPerParam,
			fmt.Sprintf("must be in [1, %d]", framework.MaxBitsPerParam)))
	}
	switch c.Dominance {
	case framework.DominanceStrict, framework.DominanceWeak:
	default:
		errs = append(errs, field.NotSupported(field.NewPath("dominance"), c.Dominance.String(),
			[]string{framework.DominanceStrict.String(), framework.DominanceWeak.String()}))
	}
	errs = append(errs, ValidateSearchSpace(field.NewPath("searchSpace"), c.SearchSpace)...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", framework.ErrInvalidConfiguration, errs.ToAggregate())
	}
	return nil
}

// ValidateSearchSpace checks that the space is non-empty and every bound is
// finite with L <= H.
func ValidateSearchSpace(path *field.Path, space []framework.Bounds) field.ErrorList {
	var errs field.ErrorList
	if len(space) == 0 {
		return append(errs, field.Required(path, "at least one dimension is required"))
	}
	for i, b := range space {
		switch {
		case math.IsNaN(b.L) || math.IsNaN(b.H) || math.IsInf(b.L, 0) || math.IsInf(b.H, 0):
			errs = append(errs, field.Invalid(path.Index(i), b, "bounds must be finite"))
		case b.L > b.H:
			errs = append(errs, field.Invalid(path.Index(i), b, "lower bound must not exceed upper bound"))
		}
	}
	return errs
}

// NSGAII runs the NSGA-II algorithm over a binary encoded search space.
type NSGAII struct {
	config    NSGA2Config
	evaluator framework.Evaluator

	// Observers are notified once per generation, in order, by Run.
	Observers []Observer
}

var _ framework.Algorithm = &NSGAII{}

// NewNSGAII creates a new instance of NSGA-II with given parameters
func NewNSGAII(config NSGA2Config, evaluator framework.Evaluator) (*NSGAII, error) {
	if config.BitsPerParam == 0 {
		config.BitsPerParam = DefaultBitsPerParam
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if evaluator == nil {
		return nil, fmt.Errorf("%w: an evaluator is required", framework.ErrInvalidConfiguration)
	}
	config.SearchSpace = slices.Clone(config.SearchSpace)

	return &NSGAII{
		config:    config,
		evaluator: evaluator,
	}, nil
}

func (n *NSGAII) Name() string {
	return Name
}

// Config returns the effective configuration, defaults applied.
func (n *NSGAII) Config() NSGA2Config {
	return n.config
}

// Snapshot is a per-generation summary of the evolution.
type Snapshot struct {
	Generation int
	// Fronts is the number of fronts in the merged parent+offspring population.
	Fronts int
	// Best holds the objectives of the selected member with the lowest sum
	// of objectives.
	Best        framework.ObjectiveSpacePoint
	Evaluations int
}

// Result holds the outcome of a run.
type Result struct {
	// Population holds the final selected members, ordered by front and, in
	// the last accepted front, by crowding distance.
	Population  []Member
	Fronts      int
	Generations int
	Evaluations int
	CacheHits   int
	History     []Snapshot
}

// ParetoFront returns the members of the final population with rank 0.
func (r *Result) ParetoFront() []Member {
	var front []Member
	for _, m := range r.Population {
		if m.Rank == 0 {
			front = append(front, m)
		}
	}
	return front
}

// Run executes the NSGA-II algorithm. Observers and the returned History see
// one snapshot per generation. Every call replays the same evolution for the
// configured seed.
func (n *NSGAII) Run(ctx context.Context) (*Result, error) {
	ctx, span := tracer.Start(ctx, "NSGAII.Run", trace.WithAttributes(
		attribute.Int("nsga2.population_size", n.config.PopulationSize),
		attribute.Int("nsga2.max_generations", n.config.MaxGenerations),
		attribute.Int("nsga2.dimensions", len(n.config.SearchSpace)),
		attribute.Int64("nsga2.seed", int64(n.config.Seed)),
	))
	defer span.End()

	logger := klog.FromContext(ctx)
	start := time.Now()
	logger.Info("Starting evolution", "algorithm", Name,
		"populationSize", n.config.PopulationSize, "generations", n.config.MaxGenerations,
		"dimensions", len(n.config.SearchSpace), "bitsPerParam", n.config.BitsPerParam, "seed", n.config.Seed)

	var history []Snapshot
	res, err := n.evolve(func(s Snapshot) bool {
		history = append(history, s)
		for _, o := range n.Observers {
			o.Observe(s)
		}
		return true
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	res.History = history

	span.SetAttributes(
		attribute.Int("nsga2.evaluations", res.Evaluations),
		attribute.Int("nsga2.fronts", res.Fronts),
	)
	logger.Info("Evolution complete", "duration", time.Since(start),
		"evaluations", res.Evaluations, "cacheHits", res.CacheHits,
		"paretoFront", len(res.ParetoFront()), "uniqueSolutions", uniqueGenomes(res.Population))
	return res, nil
}

// Generations returns the snapshot stream of a run. Every iteration replays
// the evolution from the configured seed; breaking out of the loop stops it.
// A failed run ends the stream with a zero Snapshot and the error.
func (n *NSGAII) Generations() iter.Seq2[Snapshot, error] {
	return func(yield func(Snapshot, error) bool) {
		_, err := n.evolve(func(s Snapshot) bool {
			return yield(s, nil)
		})
		if err != nil {
			yield(Snapshot{}, err)
		}
	}
}

// run carries the per-run state of an evolution.
type run struct {
	*NSGAII
	rng         *rand.Rand
	cache       *evaluationCache
	numBits     int
	arity       int
	evaluations int
}

func (n *NSGAII) evolve(yield func(Snapshot) bool) (*Result, error) {
	r := &run{
		NSGAII:  n,
		rng:     rand.New(rand.NewPCG(n.config.Seed, n.config.Seed)),
		numBits: len(n.config.SearchSpace) * n.config.BitsPerParam,
	}
	if n.config.CacheEvaluations {
		r.cache = newEvaluationCache()
	}
	popSize := n.config.PopulationSize

	genomes := make([]framework.Genome, popSize)
	for i := range genomes {
		genomes[i] = framework.RandomGenome(r.rng, r.numBits)
	}
	population, err := r.evaluate(genomes)
	if err != nil {
		return nil, err
	}

	// The initial population is only ranked, crowding distance is unknown.
	ranking := framework.NonDominatedSort(objectives(population), n.config.Dominance)
	offspring, err := r.breed(Members(population, ranking))
	if err != nil {
		return nil, err
	}

	for gen := 0; gen < n.config.MaxGenerations; gen++ {
		combined := append(slices.Clone(population), offspring...)
		ranking = framework.NonDominatedSort(objectives(combined), n.config.Dominance)
		parents, err := EnvironmentalSelect(combined, ranking, popSize, n.config.BoundaryInfinity)
		if err != nil {
			return nil, err
		}

		// The next parents are the offspring of this generation, the
		// selected members only serve as the mating pool.
		population = offspring
		offspring, err = r.breed(parents)
		if err != nil {
			return nil, err
		}

		if !yield(Snapshot{
			Generation:  gen,
			Fronts:      len(ranking.Fronts),
			Best:        bestBySum(parents),
			Evaluations: r.evaluations,
		}) {
			return nil, nil
		}
	}

	combined := append(slices.Clone(population), offspring...)
	ranking = framework.NonDominatedSort(objectives(combined), n.config.Dominance)
	final, err := EnvironmentalSelect(combined, ranking, popSize, n.config.BoundaryInfinity)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Population:  final,
		Fronts:      len(ranking.Fronts),
		Generations: n.config.MaxGenerations,
		Evaluations: r.evaluations,
	}
	if r.cache != nil {
		res.CacheHits = r.cache.hits
	}
	return res, nil
}

// breed runs tournament selection on the pool and evaluates the children
// reproduced from the winners.
func (r *run) breed(pool []Member) ([]*framework.Individual, error) {
	selected, err := TournamentSelect(r.rng, pool, r.config.PopulationSize)
	if err != nil {
		return nil, err
	}
	children, err := Reproduce(r.rng, selected, r.config.PopulationSize, r.config.CrossoverProbability)
	if err != nil {
		return nil, err
	}
	return r.evaluate(children)
}

func (r *run) evaluate(genomes []framework.Genome) ([]*framework.Individual, error) {
	population := make([]*framework.Individual, len(genomes))
	for i, g := range genomes {
		if r.cache != nil {
			if e, ok := r.cache.get(g); ok {
				population[i] = &framework.Individual{Genome: g, Vector: e.vector, Objectives: e.objectives}
				continue
			}
		}

		vector, err := g.Decode(r.config.SearchSpace, r.config.BitsPerParam)
		if err != nil {
			return nil, err
		}
		objs := r.evaluator.Evaluate(vector)
		r.evaluations++

		if len(objs) == 0 {
			return nil, fmt.Errorf("%w: evaluator returned no objectives", framework.ErrInvalidConfiguration)
		}
		if r.arity == 0 {
			r.arity = len(objs)
		}
		if len(objs) != r.arity {
			return nil, fmt.Errorf("%w: evaluator returned %d objectives, expected %d", framework.ErrInvalidConfiguration, len(objs), r.arity)
		}

		if r.cache != nil {
			r.cache.set(g, evaluation{vector: vector, objectives: objs})
		}
		population[i] = &framework.Individual{Genome: g, Vector: vector, Objectives: objs}
	}
	return population, nil
}

func bestBySum(members []Member) framework.ObjectiveSpacePoint {
	var best framework.ObjectiveSpacePoint
	bestSum := math.Inf(1)
	for _, m := range members {
		if s := m.Objectives.Sum(); best == nil || s < bestSum {
			best, bestSum = m.Objectives, s
		}
	}
	return best
}

func uniqueGenomes(members []Member) int {
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		seen[m.Genome.String()] = struct{}{}
	}
	return len(seen)
}
