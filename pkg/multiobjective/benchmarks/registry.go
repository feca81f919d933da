package benchmarks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

type factory func(dims int) framework.Problem

var registry = map[string]factory{
	"SCH":  func(dims int) framework.Problem { return NewSCH(dims, DefaultSCHBounds) },
	"ZDT1": func(dims int) framework.Problem { return NewZDT1(dims) },
	"ZDT2": func(dims int) framework.Problem { return NewZDT2(dims) },
}

// Names lists the registered problems, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns the named problem with dims decision variables. Names are
// matched case-insensitively.
func Get(name string, dims int) (framework.Problem, error) {
	f, ok := registry[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("unknown problem %q, expected one of %v", name, Names())
	}
	if dims <= 0 {
		return nil, fmt.Errorf("problem %s needs at least one dimension, got %d", name, dims)
	}
	return f(dims), nil
}
