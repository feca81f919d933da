package framework

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidGenomeLength is returned when a genome does not match the
	// search space it is decoded against.
	ErrInvalidGenomeLength = errors.New("invalid genome length")
	// ErrLengthMismatch is returned when two genomes of different length are recombined.
	ErrLengthMismatch = errors.New("genome length mismatch")
	// ErrInvalidConfiguration is returned when a run is configured with values
	// the algorithm cannot work with.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Individual represents a solution in the population.
// Ranking data (rank, crowding distance) is kept outside of the individual,
// see Ranking.
type Individual struct {
	Genome     Genome
	Vector     []float64
	Objectives ObjectiveSpacePoint
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func([]float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Sum returns the sum of all objective values.
func (p ObjectiveSpacePoint) Sum() float64 {
	return floats.Sum(p)
}

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	// Bounds returns the search space, one entry per decision variable.
	Bounds() []Bounds
	ObjectiveFuncs() []ObjectiveFunc

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Algorithm describes the contract that a MOO algorithm needs to implement.
type Algorithm interface {
	Name() string
}

// Evaluator maps a decoded vector to its objective values. Implementations
// must be pure: the same vector always yields the same point.
type Evaluator interface {
	Evaluate(vector []float64) ObjectiveSpacePoint
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func([]float64) ObjectiveSpacePoint

func (f EvaluatorFunc) Evaluate(vector []float64) ObjectiveSpacePoint {
	return f(vector)
}

// ProblemEvaluator evaluates the objective functions of p in order.
func ProblemEvaluator(p Problem) Evaluator {
	objFuncs := p.ObjectiveFuncs()
	return EvaluatorFunc(func(vector []float64) ObjectiveSpacePoint {
		objs := make(ObjectiveSpacePoint, len(objFuncs))
		for i, objFunc := range objFuncs {
			objs[i] = objFunc(vector)
		}
		return objs
	})
}
