package app

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/mihai-snyk/nsga2/apis/config/v1alpha1"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ArgsOptions builds NSGAIIArgs from an optional config file and the flags
// that were explicitly set on the command line.
type ArgsOptions struct {
	ConfigFile string

	problem          string
	dimensions       int
	lower            float64
	upper            float64
	populationSize   int
	maxGenerations   int
	crossover        float64
	bitsPerParam     int
	seed             uint64
	dominance        string
	boundaryInfinity bool
	cacheEvaluations bool
}

func (o *ArgsOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Path to a NSGAIIArgs YAML file. Flags override its values.")
	fs.StringVar(&o.problem, "problem", "", "Benchmark problem to optimize, e.g. SCH, ZDT1 or ZDT2.")
	fs.IntVar(&o.dimensions, "dimensions", 0, "Number of decision variables.")
	fs.Float64Var(&o.lower, "lower", 0, "Lower bound of every decision variable. Requires --upper.")
	fs.Float64Var(&o.upper, "upper", 0, "Upper bound of every decision variable. Requires --lower.")
	fs.IntVar(&o.populationSize, "population-size", 0, "Number of members per generation.")
	fs.IntVar(&o.maxGenerations, "generations", 0, "Number of generations to run.")
	fs.Float64Var(&o.crossover, "crossover-probability", 0, "Probability that a pair is recombined.")
	fs.IntVar(&o.bitsPerParam, "bits-per-param", 0, "Number of bits encoding each decision variable.")
	fs.Uint64Var(&o.seed, "seed", 0, "Seed of the random source.")
	fs.StringVar(&o.dominance, "dominance", "", "Dominance policy, Strict or Weak.")
	fs.BoolVar(&o.boundaryInfinity, "boundary-infinity", false, "Give the boundary members of a front an infinite crowding distance.")
	fs.BoolVar(&o.cacheEvaluations, "cache-evaluations", false, "Memoize objective evaluations by genome.")
}

// Args returns the arguments of the run. Defaulting and validation are left
// to the optimizer.
func (o *ArgsOptions) Args(fs *pflag.FlagSet) (*v1alpha1.NSGAIIArgs, error) {
	args := &v1alpha1.NSGAIIArgs{}
	if o.ConfigFile != "" {
		loaded, err := v1alpha1.Load(o.ConfigFile)
		if err != nil {
			return nil, err
		}
		args = loaded
	}

	if fs.Changed("problem") {
		args.Problem = o.problem
	}
	if fs.Changed("dimensions") {
		args.Dimensions = o.dimensions
	}
	switch lower, upper := fs.Changed("lower"), fs.Changed("upper"); {
	case lower && upper:
		args.Bounds = &v1alpha1.Bounds{Lower: o.lower, Upper: o.upper}
	case lower || upper:
		return nil, fmt.Errorf("%w: --lower and --upper must be set together", framework.ErrInvalidConfiguration)
	}
	if fs.Changed("population-size") {
		populationSize := o.populationSize
		args.PopulationSize = &populationSize
	}
	if fs.Changed("generations") {
		maxGenerations := o.maxGenerations
		args.MaxGenerations = &maxGenerations
	}
	if fs.Changed("crossover-probability") {
		crossover := o.crossover
		args.CrossoverProbability = &crossover
	}
	if fs.Changed("bits-per-param") {
		args.BitsPerParam = o.bitsPerParam
	}
	if fs.Changed("seed") {
		seed := o.seed
		args.Seed = &seed
	}
	if fs.Changed("dominance") {
		args.Dominance = o.dominance
	}
	if fs.Changed("boundary-infinity") {
		args.BoundaryInfinity = o.boundaryInfinity
	}
	if fs.Changed("cache-evaluations") {
		args.CacheEvaluations = o.cacheEvaluations
	}
	return args, nil
}

func validateOutput(output string) error {
	switch output {
	case OutputText, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, must be %s or %s", output, OutputText, OutputYAML)
	}
}
