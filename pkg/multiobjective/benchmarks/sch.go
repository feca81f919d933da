package benchmarks

import (
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// DefaultSCHBounds is the search space of every SCH variable unless
// configured otherwise.
var DefaultSCHBounds = framework.Bounds{L: -10, H: 10}

// SCH is Schaffer's two-objective problem, generalized to n variables:
//
//	f1(x) = sum(x_i^2)
//	f2(x) = sum((x_i - 2)^2)
//
// Its Pareto optimal set is the segment where every x_i = t, t in [0, 2].
type SCH struct {
	numVars int
	bounds  framework.Bounds
}

func NewSCH(numVars int, bounds framework.Bounds) *SCH {
	return &SCH{
		numVars: numVars,
		bounds:  bounds,
	}
}

func (p *SCH) Name() string {
	return "SCH"
}

func (p *SCH) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *SCH) f1(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func (p *SCH) f2(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += (v - 2.0) * (v - 2.0)
	}
	return sum
}

func (p *SCH) Bounds() []framework.Bounds {
	b := make([]framework.Bounds, p.numVars)
	for i := range b {
		b[i] = p.bounds
	}
	return b
}

// TrueParetoFront samples the optimal segment. It assumes the bounds contain
// [0, 2]; nil is returned otherwise.
func (p *SCH) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if numPoints < 2 || p.bounds.L > 0 || p.bounds.H < 2 {
		return nil
	}
	n := float64(p.numVars)
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := range points {
		t := 2.0 * float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			n * t * t, n * (t - 2) * (t - 2),
		}
	}
	return points
}
