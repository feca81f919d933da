package algorithms

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func distances(r *framework.Ranking) []float64 {
	out := make([]float64, r.Len())
	for i, a := range r.Annotations {
		out[i] = a.Distance
	}
	return out
}

func TestCrowdingDistance(t *testing.T) {
	points := []framework.ObjectiveSpacePoint{{0, 4}, {1, 2}, {2, 1}, {4, 0}}

	tests := []struct {
		name        string
		boundaryInf bool
		want        []float64
	}{
		{
			name: "boundaries get no contribution",
			want: []float64{0, 1.25, 1.25, 0},
		},
		{
			name:        "boundaries at infinity",
			boundaryInf: true,
			want:        []float64{math.Inf(1), 1.25, 1.25, math.Inf(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := framework.NonDominatedSort(points, framework.DominanceStrict)
			require.Len(t, r.Fronts, 1)

			CrowdingDistance(r, points, r.Fronts[0], tt.boundaryInf)

			assert.InDeltaSlice(t, tt.want[1:3], distances(r)[1:3], 1e-12)
			assert.Equal(t, tt.want[0], r.Annotations[0].Distance)
			assert.Equal(t, tt.want[3], r.Annotations[3].Distance)
			for _, a := range r.Annotations {
				assert.True(t, a.Crowded)
			}
		})
	}
}

func TestCrowdingDistanceZeroRange(t *testing.T) {
	// f1 is flat, only f2 contributes.
	points := []framework.ObjectiveSpacePoint{{1, 1}, {1, 2}, {1, 3}}
	r := framework.NonDominatedSort(points, framework.DominanceWeak)
	front := []int{0, 1, 2}

	CrowdingDistance(r, points, front, false)

	assert.Equal(t, []float64{0, 1, 0}, distances(r))
}

func TestCrowdingDistanceSmallFronts(t *testing.T) {
	points := []framework.ObjectiveSpacePoint{{0, 1}, {1, 0}}
	r := framework.NonDominatedSort(points, framework.DominanceStrict)

	CrowdingDistance(r, points, []int{0}, false)
	assert.Equal(t, 0.0, r.Annotations[0].Distance)
	assert.True(t, r.Annotations[0].Crowded)
	assert.False(t, r.Annotations[1].Crowded, "members outside the front are left alone")

	CrowdingDistance(r, points, r.Fronts[0], false)
	assert.Equal(t, []float64{0, 0}, distances(r))

	CrowdingDistance(r, points, nil, false)
}

func TestCrowdingDistanceResetsPreviousValues(t *testing.T) {
	points := []framework.ObjectiveSpacePoint{{0, 4}, {1, 2}, {2, 1}, {4, 0}}
	r := framework.NonDominatedSort(points, framework.DominanceStrict)

	CrowdingDistance(r, points, r.Fronts[0], true)
	CrowdingDistance(r, points, r.Fronts[0], false)

	assert.InDeltaSlice(t, []float64{0, 1.25, 1.25, 0}, distances(r), 1e-12)
}

func TestCrowdingDistanceNonNegative(t *testing.T) {
	rng := newRand(3)
	for run := 0; run < 20; run++ {
		points := make([]framework.ObjectiveSpacePoint, 2+rng.IntN(40))
		for i := range points {
			points[i] = framework.ObjectiveSpacePoint{rng.Float64(), rng.Float64()}
		}
		r := framework.NonDominatedSort(points, framework.DominanceStrict)
		for _, front := range r.Fronts {
			CrowdingDistance(r, points, front, false)
		}
		for _, a := range r.Annotations {
			assert.GreaterOrEqual(t, a.Distance, 0.0)
			assert.False(t, math.IsInf(a.Distance, 0))
		}
	}
}
