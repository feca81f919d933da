package benchmarks

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

var nan = math.NaN()

// IGD is the Inverted Generational Distance: the mean Euclidean distance from
// every point of the true front to its closest obtained point. Lower is better.
func IGD(obtained, trueFront []framework.ObjectiveSpacePoint) float64 {
	if len(obtained) == 0 || len(trueFront) == 0 {
		return math.Inf(1)
	}
	distances := make([]float64, len(trueFront))
	for i, truePoint := range trueFront {
		distances[i] = nearest(truePoint, obtained)
	}
	return stat.Mean(distances, nil)
}

func nearest(p framework.ObjectiveSpacePoint, points []framework.ObjectiveSpacePoint) float64 {
	minDist := math.Inf(1)
	for _, q := range points {
		minDist = math.Min(minDist, floats.Distance(p, q, 2))
	}
	return minDist
}

// Hypervolume2D is the area dominated by a two-objective front and bounded by
// the reference point. Points that do not dominate the reference point
// contribute nothing. Higher is better.
func Hypervolume2D(front []framework.ObjectiveSpacePoint, reference framework.ObjectiveSpacePoint) float64 {
	var points []framework.ObjectiveSpacePoint
	for _, p := range front {
		if p[0] < reference[0] && p[1] < reference[1] {
			points = append(points, p)
		}
	}
	slices.SortFunc(points, func(a, b framework.ObjectiveSpacePoint) int {
		if a[0] != b[0] {
			return cmp.Compare(a[0], b[0])
		}
		return cmp.Compare(a[1], b[1])
	})

	hv := 0.0
	prevY := reference[1]
	for _, p := range points {
		if p[1] < prevY {
			hv += (reference[0] - p[0]) * (prevY - p[1])
			prevY = p[1]
		}
	}
	return hv
}

// Spread is Deb's diversity indicator for two-objective fronts. It is 0 for
// an evenly spaced front that reaches both extremes of the true front. The
// extreme terms are dropped when trueFront is empty.
func Spread(front, trueFront []framework.ObjectiveSpacePoint) float64 {
	if len(front) < 2 {
		return math.NaN()
	}
	sorted := slices.Clone(front)
	slices.SortFunc(sorted, func(a, b framework.ObjectiveSpacePoint) int {
		return cmp.Compare(a[0], b[0])
	})

	gaps := make([]float64, len(sorted)-1)
	for i := range gaps {
		gaps[i] = floats.Distance(sorted[i], sorted[i+1], 2)
	}
	meanGap := stat.Mean(gaps, nil)

	var df, dl float64
	if len(trueFront) >= 2 {
		extremes := slices.Clone(trueFront)
		slices.SortFunc(extremes, func(a, b framework.ObjectiveSpacePoint) int {
			return cmp.Compare(a[0], b[0])
		})
		df = floats.Distance(extremes[0], sorted[0], 2)
		dl = floats.Distance(extremes[len(extremes)-1], sorted[len(sorted)-1], 2)
	}

	deviation := 0.0
	for _, g := range gaps {
		deviation += math.Abs(g - meanGap)
	}
	denominator := df + dl + float64(len(gaps))*meanGap
	if denominator == 0 {
		return 0
	}
	return (df + dl + deviation) / denominator
}

// ReferencePoint returns the nadir of the points, each objective shifted by
// margin times its range (at least margin).
func ReferencePoint(points []framework.ObjectiveSpacePoint, margin float64) framework.ObjectiveSpacePoint {
	if len(points) == 0 {
		return nil
	}
	ref := make(framework.ObjectiveSpacePoint, len(points[0]))
	column := make([]float64, len(points))
	for m := range ref {
		for i, p := range points {
			column[i] = p[m]
		}
		lo, hi := floats.Min(column), floats.Max(column)
		ref[m] = hi + margin*math.Max(hi-lo, 1)
	}
	return ref
}
