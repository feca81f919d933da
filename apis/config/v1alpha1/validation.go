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
	"math"
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// ValidateNSGAIIArgs validates the NSGA-II arguments. Defaults are expected
// to be applied already.
func ValidateNSGAIIArgs(args *NSGAIIArgs) error {
	var errs field.ErrorList

	if args.APIVersion != "" && args.APIVersion != SchemeGroupVersion.String() {
		errs = append(errs, field.NotSupported(field.NewPath("apiVersion"), args.APIVersion, []string{SchemeGroupVersion.String()}))
	}
	if args.Kind != "" && args.Kind != Kind {
		errs = append(errs, field.NotSupported(field.NewPath("kind"), args.Kind, []string{Kind}))
	}

	if !slices.Contains(benchmarks.Names(), strings.ToUpper(args.Problem)) {
		errs = append(errs, field.NotSupported(field.NewPath("problem"), args.Problem, benchmarks.Names()))
	}
	if args.Dimensions <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("dimensions"), args.Dimensions, "must be greater than 0"))
	}
	if b := args.Bounds; b != nil {
		path := field.NewPath("bounds")
		switch {
		case !strings.EqualFold(args.Problem, "SCH"):
			errs = append(errs, field.Forbidden(path, fmt.Sprintf("problem %s has a fixed domain", args.Problem)))
		case math.IsNaN(b.Lower) || math.IsNaN(b.Upper) || math.IsInf(b.Lower, 0) || math.IsInf(b.Upper, 0):
			errs = append(errs, field.Invalid(path, *b, "bounds must be finite"))
		case b.Lower > b.Upper:
			errs = append(errs, field.Invalid(path.Child("lower"), b.Lower, "must not exceed upper"))
		}
	}

	errs = append(errs, validatePositive(field.NewPath("populationSize"), args.PopulationSize)...)
	errs = append(errs, validatePositive(field.NewPath("maxGenerations"), args.MaxGenerations)...)
	if p := args.CrossoverProbability; p == nil {
		errs = append(errs, field.Required(field.NewPath("crossoverProbability"), ""))
	} else if math.IsNaN(*p) || *p < 0 || *p > 1 {
		errs = append(errs, field.Invalid(field.NewPath("crossoverProbability"), *p, "must be in [0, 1]"))
	}
	if args.BitsPerParam < 1 || args.BitsPerParam > framework.MaxBitsPerParam {
		errs = append(errs, field.Invalid(field.NewPath("bitsPerParam"), args.BitsPerParam,
			fmt.Sprintf("must be in [1, %d]", framework.MaxBitsPerParam)))
	}
	if args.Seed == nil {
		errs = append(errs, field.Required(field.NewPath("seed"), ""))
	}
	if _, err := framework.ParseDominancePolicy(args.Dominance); err != nil {
		errs = append(errs, field.NotSupported(field.NewPath("dominance"), args.Dominance,
			[]string{framework.DominanceStrict.String(), framework.DominanceWeak.String()}))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", framework.ErrInvalidConfiguration, errs.ToAggregate())
	}
	return nil
}

func validatePositive(path *field.Path, v *int) field.ErrorList {
	if v == nil {
		return field.ErrorList{field.Required(path, "")}
	}
	if *v <= 0 {
		return field.ErrorList{field.Invalid(path, *v, "must be greater than 0")}
	}
	return nil
}
