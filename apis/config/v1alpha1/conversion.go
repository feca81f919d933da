/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// Decode reads NSGAIIArgs from a YAML or JSON document, applies defaults and
// validates the result. Unknown fields are rejected.
func Decode(data []byte) (*NSGAIIArgs, error) {
	args := &NSGAIIArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("%w: %w", framework.ErrInvalidConfiguration, err)
	}
	SetDefaults_NSGAIIArgs(args)
	if err := ValidateNSGAIIArgs(args); err != nil {
		return nil, err
	}
	return args, nil
}

// Load decodes the NSGAIIArgs file at path.
func Load(path string) (*NSGAIIArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Decode(data)
}

// NewProblem resolves the configured benchmark problem. When Bounds is set it
// replaces the bounds of every decision variable, which only SCH allows.
func (args *NSGAIIArgs) NewProblem() (framework.Problem, error) {
	problem, err := benchmarks.Get(args.Problem, args.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", framework.ErrInvalidConfiguration, err)
	}
	if args.Bounds == nil {
		return problem, nil
	}
	if _, ok := problem.(*benchmarks.SCH); !ok {
		return nil, fmt.Errorf("%w: problem %s has a fixed domain, bounds cannot be set", framework.ErrInvalidConfiguration, problem.Name())
	}
	return benchmarks.NewSCH(args.Dimensions, framework.Bounds{L: args.Bounds.Lower, H: args.Bounds.Upper}), nil
}

// ToConfig builds the algorithm configuration for the given problem.
func (args *NSGAIIArgs) ToConfig(problem framework.Problem) (algorithms.NSGA2Config, error) {
	dominance, err := framework.ParseDominancePolicy(args.Dominance)
	if err != nil {
		return algorithms.NSGA2Config{}, fmt.Errorf("%w: %w", framework.ErrInvalidConfiguration, err)
	}
	config := algorithms.NSGA2Config{
		SearchSpace:      problem.Bounds(),
		BitsPerParam:     args.BitsPerParam,
		Dominance:        dominance,
		BoundaryInfinity: args.BoundaryInfinity,
		CacheEvaluations: args.CacheEvaluations,
	}
	if args.PopulationSize != nil {
		config.PopulationSize = *args.PopulationSize
	}
	if args.MaxGenerations != nil {
		config.MaxGenerations = *args.MaxGenerations
	}
	if args.CrossoverProbability != nil {
		config.CrossoverProbability = *args.CrossoverProbability
	}
	if args.Seed != nil {
		config.Seed = *args.Seed
	}
	return config, nil
}
