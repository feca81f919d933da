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
	"k8s.io/utils/ptr"
)

var (
	defaultProblem              = "SCH"
	defaultDimensions           = 1
	defaultPopulationSize       = 100
	defaultMaxGenerations       = 100
	defaultCrossoverProbability = 0.98
	defaultBitsPerParam         = 16
	defaultSeed                 = uint64(1)
	defaultDominance            = "Strict"
)

// SetDefaults_NSGAIIArgs sets the default parameters for a NSGA-II run.
func SetDefaults_NSGAIIArgs(args *NSGAIIArgs) {
	if args.APIVersion == "" {
		args.APIVersion = SchemeGroupVersion.String()
	}
	if args.Kind == "" {
		args.Kind = Kind
	}

	if args.Problem == "" {
		args.Problem = defaultProblem
	}
	if args.Dimensions == 0 {
		args.Dimensions = defaultDimensions
	}
	if args.PopulationSize == nil {
		args.PopulationSize = ptr.To(defaultPopulationSize)
	}
	if args.MaxGenerations == nil {
		args.MaxGenerations = ptr.To(defaultMaxGenerations)
	}
	if args.CrossoverProbability == nil {
		args.CrossoverProbability = ptr.To(defaultCrossoverProbability)
	}
	if args.BitsPerParam == 0 {
		args.BitsPerParam = defaultBitsPerParam
	}
	if args.Seed == nil {
		args.Seed = ptr.To(defaultSeed)
	}
	if args.Dominance == "" {
		args.Dominance = defaultDominance
	}
}
