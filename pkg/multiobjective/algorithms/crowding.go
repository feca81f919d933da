package algorithms

import (
	"math"
	"slices"
	"sort"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// CrowdingDistance calculates crowding distance for the members of a front.
// points holds the objective values of the ranked population, front the
// indices of the members to process. Distances accumulate over all objectives.
// Objectives with zero range contribute nothing. The extremes of every
// objective only get a (+Inf) distance when boundaryInf is set.
func CrowdingDistance(r *framework.Ranking, points []framework.ObjectiveSpacePoint, front []int, boundaryInf bool) {
	for _, idx := range front {
		r.Annotations[idx].Distance = 0
		r.Annotations[idx].Crowded = true
	}
	if len(front) == 0 {
		return
	}

	sorted := slices.Clone(front)
	numObjectives := len(points[front[0]])
	for m := 0; m < numObjectives; m++ {
		// Sort by each objective
		sort.SliceStable(sorted, func(i, j int) bool {
			return points[sorted[i]][m] < points[sorted[j]][m]
		})

		first, last := sorted[0], sorted[len(sorted)-1]
		if boundaryInf {
			r.Annotations[first].Distance = math.Inf(1)
			r.Annotations[last].Distance = math.Inf(1)
		}

		objectiveRange := points[last][m] - points[first][m]
		if objectiveRange == 0 {
			continue
		}

		// Calculate distance for intermediate points
		for i := 1; i < len(sorted)-1; i++ {
			r.Annotations[sorted[i]].Distance += (points[sorted[i+1]][m] - points[sorted[i-1]][m]) / objectiveRange
		}
	}
}
