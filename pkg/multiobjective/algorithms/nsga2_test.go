package algorithms_test

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"slices"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/util"
)

func schConfig(popSize, gens int) algorithms.NSGA2Config {
	return algorithms.NSGA2Config{
		SearchSpace:          []framework.Bounds{{L: -10, H: 10}},
		PopulationSize:       popSize,
		MaxGenerations:       gens,
		CrossoverProbability: 0.98,
		BitsPerParam:         16,
		Seed:                 1,
	}
}

func schEvaluator() framework.Evaluator {
	return framework.ProblemEvaluator(benchmarks.NewSCH(1, benchmarks.DefaultSCHBounds))
}

func run(t *testing.T, config algorithms.NSGA2Config, evaluator framework.Evaluator) *algorithms.Result {
	t.Helper()
	nsga, err := algorithms.NewNSGAII(config, evaluator)
	require.NoError(t, err)
	res, err := nsga.Run(context.Background())
	require.NoError(t, err)
	return res
}

func assertNonDominated(t *testing.T, front []algorithms.Member) {
	t.Helper()
	for i := range front {
		for j := range front {
			if i != j && framework.Dominates(front[i].Objectives, front[j].Objectives, framework.DominanceStrict) {
				t.Errorf("first front contains dominated solutions: %v dominates %v", front[i].Objectives, front[j].Objectives)
			}
		}
	}
}

func TestNSGAIIWithSCH(t *testing.T) {
	res := run(t, schConfig(20, 5), schEvaluator())

	require.Len(t, res.Population, 20)
	assert.Equal(t, 5, res.Generations)
	assert.Len(t, res.History, 5)
	assert.GreaterOrEqual(t, res.Fronts, 1)

	front := res.ParetoFront()
	require.NotEmpty(t, front)
	assertNonDominated(t, front)

	// The front reaches out towards both single-objective optima, x = 0 and x = 2.
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, m := range front {
		minX = math.Min(minX, m.Vector[0])
		maxX = math.Max(maxX, m.Vector[0])
	}
	assert.Less(t, minX, 1.0)
	assert.Greater(t, maxX, 1.0)

	for _, m := range res.Population {
		require.Len(t, m.Vector, 1)
		assert.GreaterOrEqual(t, m.Vector[0], -10.0)
		assert.LessOrEqual(t, m.Vector[0], 10.0)
		assert.Len(t, m.Genome, 16)

		x := m.Vector[0]
		assert.InDelta(t, x*x, m.Objectives[0], 1e-9)
		assert.InDelta(t, (x-2)*(x-2), m.Objectives[1], 1e-9)
	}

	for i, s := range res.History {
		assert.Equal(t, i, s.Generation)
		assert.Len(t, s.Best, 2)
		assert.GreaterOrEqual(t, s.Fronts, 1)
	}
}

func TestNSGAIIConvergesOnSCH(t *testing.T) {
	res := run(t, schConfig(40, 50), schEvaluator())

	front := res.ParetoFront()
	require.NotEmpty(t, front)
	assertNonDominated(t, front)

	minF1, minF2 := math.Inf(1), math.Inf(1)
	for _, m := range front {
		// Anything far outside [0, 2] is dominated by the rest of the front.
		assert.GreaterOrEqual(t, m.Vector[0], -1.0)
		assert.LessOrEqual(t, m.Vector[0], 3.0)
		minF1 = math.Min(minF1, m.Objectives[0])
		minF2 = math.Min(minF2, m.Objectives[1])
	}
	// The front stretches between the optima of both objectives.
	assert.Less(t, minF1, 0.5)
	assert.Less(t, minF2, 0.5)
}

// Test problem: ZDT1 benchmark function
func TestNSGAIIWithZDT1(t *testing.T) {
	numVars := 30
	popSize := 100

	// Create the ZDT1 problem instance
	zdt1 := benchmarks.NewZDT1(numVars)

	// Create NSGA-II instance
	nsga, err := algorithms.NewNSGAII(algorithms.NSGA2Config{
		SearchSpace:          zdt1.Bounds(),
		PopulationSize:       popSize,
		MaxGenerations:       100,
		CrossoverProbability: 0.9,
		Seed:                 42,
	}, framework.ProblemEvaluator(zdt1))
	require.NoError(t, err)

	// Run algorithm
	res, err := nsga.Run(context.Background())
	require.NoError(t, err)

	// Basic validation
	if len(res.Population) != popSize {
		t.Errorf("Expected population size %d, got %d", popSize, len(res.Population))
	}

	firstFront := res.ParetoFront()
	if len(firstFront) == 0 {
		t.Fatal("No fronts found in final population")
	}
	assertNonDominated(t, firstFront)

	results := benchmarks.FrontPoints(firstFront)
	path := filepath.Join(t.TempDir(), "zdt1.html")
	if err := util.PlotResults(path, results, zdt1, algorithms.Name, nil); err != nil {
		t.Errorf("Plot failed: %v", err)
	}
	assert.FileExists(t, path)
}

func TestNSGAIIReproducible(t *testing.T) {
	config := schConfig(20, 10)

	first := run(t, config, schEvaluator())
	second := run(t, config, schEvaluator())
	if diff := cmp.Diff(genomes(first), genomes(second)); diff != "" {
		t.Errorf("same seed, different populations (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.History, second.History); diff != "" {
		t.Errorf("same seed, different history (-first +second):\n%s", diff)
	}

	config.Seed = 2
	other := run(t, config, schEvaluator())
	assert.NotEqual(t, genomes(first), genomes(other))
}

func genomes(res *algorithms.Result) []string {
	out := make([]string, len(res.Population))
	for i, m := range res.Population {
		out[i] = m.Genome.String()
	}
	return out
}

func collect(nsga *algorithms.NSGAII) ([]algorithms.Snapshot, error) {
	var snapshots []algorithms.Snapshot
	for s, err := range nsga.Generations() {
		if err != nil {
			return snapshots, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

func TestNSGAIIGenerations(t *testing.T) {
	nsga, err := algorithms.NewNSGAII(schConfig(10, 6), schEvaluator())
	require.NoError(t, err)

	res, err := nsga.Run(context.Background())
	require.NoError(t, err)

	// The stream replays the run.
	streamed, err := collect(nsga)
	require.NoError(t, err)
	if diff := cmp.Diff(res.History, streamed); diff != "" {
		t.Errorf("unexpected snapshots (-run +stream):\n%s", diff)
	}
	again, err := collect(nsga)
	require.NoError(t, err)
	assert.Equal(t, streamed, again)

	var seen []int
	for s, err := range nsga.Generations() {
		require.NoError(t, err)
		seen = append(seen, s.Generation)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestNSGAIICacheEvaluations(t *testing.T) {
	config := schConfig(20, 10)
	plain := run(t, config, schEvaluator())

	config.CacheEvaluations = true
	cached := run(t, config, schEvaluator())

	assert.Equal(t, genomes(plain), genomes(cached))
	// Initial population plus one offspring batch per generation and the
	// batch bred before the first generation.
	total := config.PopulationSize * (config.MaxGenerations + 2)
	assert.Equal(t, total, plain.Evaluations)
	assert.Zero(t, plain.CacheHits)
	assert.Equal(t, total, cached.Evaluations+cached.CacheHits)
	assert.Positive(t, cached.CacheHits)
}

func TestNSGAIIOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*algorithms.NSGA2Config)
	}{
		{name: "weak dominance", modify: func(c *algorithms.NSGA2Config) { c.Dominance = framework.DominanceWeak }},
		{name: "boundary infinity", modify: func(c *algorithms.NSGA2Config) { c.BoundaryInfinity = true }},
		{name: "no crossover", modify: func(c *algorithms.NSGA2Config) { c.CrossoverProbability = 0 }},
		{name: "odd population", modify: func(c *algorithms.NSGA2Config) { c.PopulationSize = 7 }},
		{name: "single bit", modify: func(c *algorithms.NSGA2Config) { c.BitsPerParam = 1 }},
		{name: "many dimensions", modify: func(c *algorithms.NSGA2Config) {
			c.SearchSpace = slices.Repeat([]framework.Bounds{{L: -10, H: 10}}, 5)
		}},
		{name: "degenerate bounds", modify: func(c *algorithms.NSGA2Config) {
			c.SearchSpace = []framework.Bounds{{L: 3, H: 3}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := schConfig(12, 4)
			tt.modify(&config)
			problem := benchmarks.NewSCH(len(config.SearchSpace), config.SearchSpace[0])

			res := run(t, config, framework.ProblemEvaluator(problem))
			assert.Len(t, res.Population, config.PopulationSize)
			for _, m := range res.Population {
				assert.Len(t, m.Genome, len(config.SearchSpace)*config.BitsPerParam)
			}
		})
	}
}

func TestNewNSGAIIValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*algorithms.NSGA2Config)
	}{
		{name: "zero population", modify: func(c *algorithms.NSGA2Config) { c.PopulationSize = 0 }},
		{name: "negative generations", modify: func(c *algorithms.NSGA2Config) { c.MaxGenerations = -1 }},
		{name: "crossover above one", modify: func(c *algorithms.NSGA2Config) { c.CrossoverProbability = 1.5 }},
		{name: "crossover NaN", modify: func(c *algorithms.NSGA2Config) { c.CrossoverProbability = math.NaN() }},
		{name: "too many bits", modify: func(c *algorithms.NSGA2Config) { c.BitsPerParam = 54 }},
		{name: "negative bits", modify: func(c *algorithms.NSGA2Config) { c.BitsPerParam = -1 }},
		{name: "empty search space", modify: func(c *algorithms.NSGA2Config) { c.SearchSpace = nil }},
		{name: "inverted bounds", modify: func(c *algorithms.NSGA2Config) { c.SearchSpace = []framework.Bounds{{L: 1, H: 0}} }},
		{name: "infinite bounds", modify: func(c *algorithms.NSGA2Config) { c.SearchSpace = []framework.Bounds{{L: 0, H: math.Inf(1)}} }},
		{name: "unknown dominance", modify: func(c *algorithms.NSGA2Config) { c.Dominance = framework.DominancePolicy(7) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := schConfig(10, 10)
			tt.modify(&config)
			_, err := algorithms.NewNSGAII(config, schEvaluator())
			assert.True(t, errors.Is(err, framework.ErrInvalidConfiguration), "got %v", err)
		})
	}

	t.Run("nil evaluator", func(t *testing.T) {
		_, err := algorithms.NewNSGAII(schConfig(10, 10), nil)
		assert.True(t, errors.Is(err, framework.ErrInvalidConfiguration))
	})

	t.Run("default bits per parameter", func(t *testing.T) {
		config := schConfig(10, 10)
		config.BitsPerParam = 0
		nsga, err := algorithms.NewNSGAII(config, schEvaluator())
		require.NoError(t, err)
		assert.Equal(t, algorithms.DefaultBitsPerParam, nsga.Config().BitsPerParam)
	})
}

func TestNSGAIIEvaluatorArity(t *testing.T) {
	calls := 0
	evaluator := framework.EvaluatorFunc(func(x []float64) framework.ObjectiveSpacePoint {
		calls++
		if calls > 3 {
			return framework.ObjectiveSpacePoint{x[0], x[0], x[0]}
		}
		return framework.ObjectiveSpacePoint{x[0], -x[0]}
	})

	nsga, err := algorithms.NewNSGAII(schConfig(10, 2), evaluator)
	require.NoError(t, err)
	_, err = nsga.Run(context.Background())
	assert.True(t, errors.Is(err, framework.ErrInvalidConfiguration))

	// With a population of 10 the stream reaches two generations before
	// the 46th evaluation changes the arity.
	calls = 0
	evaluator = framework.EvaluatorFunc(func(x []float64) framework.ObjectiveSpacePoint {
		calls++
		if calls > 45 {
			return framework.ObjectiveSpacePoint{x[0]}
		}
		return framework.ObjectiveSpacePoint{x[0], -x[0]}
	})
	nsga, err = algorithms.NewNSGAII(schConfig(10, 5), evaluator)
	require.NoError(t, err)
	snapshots, err := collect(nsga)
	assert.True(t, errors.Is(err, framework.ErrInvalidConfiguration))
	assert.Len(t, snapshots, 2)

	empty := framework.EvaluatorFunc(func([]float64) framework.ObjectiveSpacePoint { return nil })
	nsga, err = algorithms.NewNSGAII(schConfig(10, 2), empty)
	require.NoError(t, err)
	_, err = nsga.Run(context.Background())
	assert.True(t, errors.Is(err, framework.ErrInvalidConfiguration))
}

func TestNSGAIIObservers(t *testing.T) {
	nsga, err := algorithms.NewNSGAII(schConfig(10, 4), schEvaluator())
	require.NoError(t, err)

	var generations []int
	nsga.Observers = append(nsga.Observers, algorithms.ObserverFunc(func(s algorithms.Snapshot) {
		generations = append(generations, s.Generation)
	}))

	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 2})
	nsga.Observers = append(nsga.Observers, algorithms.LoggingObserver(logger))

	_, err = nsga.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, generations)
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"generation"=0`)
}

func TestRandomSearch(t *testing.T) {
	sphere := func(v []float64) float64 {
		sum := 0.0
		for _, x := range v {
			sum += x * x
		}
		return sum
	}
	config := algorithms.RandomSearchConfig{
		SearchSpace:   []framework.Bounds{{L: -5, H: 5}, {L: -5, H: 5}},
		MaxIterations: 100,
		Seed:          1,
	}

	res, err := algorithms.RandomSearch(context.Background(), config, sphere)
	require.NoError(t, err)

	require.Len(t, res.Vector, 2)
	for _, x := range res.Vector {
		assert.GreaterOrEqual(t, x, -5.0)
		assert.Less(t, x, 5.0)
	}
	assert.Equal(t, sphere(res.Vector), res.Cost)
	require.Len(t, res.History, 100)
	assert.Equal(t, res.Cost, res.History[99])
	for i := 1; i < len(res.History); i++ {
		assert.LessOrEqual(t, res.History[i], res.History[i-1])
	}

	again, err := algorithms.RandomSearch(context.Background(), config, sphere)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestRandomSearchValidation(t *testing.T) {
	sphere := func(v []float64) float64 { return v[0] * v[0] }

	_, err := algorithms.RandomSearch(context.Background(), algorithms.RandomSearchConfig{
		SearchSpace: []framework.Bounds{{L: -5, H: 5}},
	}, sphere)
	assert.True(t, errors.Is(err, framework.ErrInvalidConfiguration))

	_, err = algorithms.RandomSearch(context.Background(), algorithms.RandomSearchConfig{
		MaxIterations: 10,
	}, sphere)
	assert.True(t, errors.Is(err, framework.ErrInvalidConfiguration))

	_, err = algorithms.RandomSearch(context.Background(), algorithms.RandomSearchConfig{
		SearchSpace:   []framework.Bounds{{L: -5, H: 5}},
		MaxIterations: 10,
	}, nil)
	assert.True(t, errors.Is(err, framework.ErrInvalidConfiguration))
}
