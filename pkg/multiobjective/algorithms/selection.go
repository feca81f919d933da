package algorithms

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// Member pairs an individual with the ranking data computed for it in the
// generation it was selected in.
type Member struct {
	*framework.Individual

	Rank     int
	Distance float64
	// Crowded reports whether Distance was computed.
	Crowded bool
}

func newMember(ind *framework.Individual, a framework.Annotation) Member {
	return Member{
		Individual: ind,
		Rank:       a.Rank,
		Distance:   a.Distance,
		Crowded:    a.Crowded,
	}
}

// Members pairs every individual of population with its annotation in r.
func Members(population []*framework.Individual, r *framework.Ranking) []Member {
	members := make([]Member, len(population))
	for i, ind := range population {
		members[i] = newMember(ind, r.Annotations[i])
	}
	return members
}

// BetterOf is the crowded comparison used by the binary tournament. When both
// candidates share a rank and distances are known the less crowded one wins,
// otherwise the lower rank wins. Ties go to y.
func BetterOf(x, y Member) Member {
	if x.Crowded && x.Rank == y.Rank {
		if x.Distance > y.Distance {
			return x
		}
		return y
	}
	if x.Rank < y.Rank {
		return x
	}
	return y
}

// TournamentSelect runs n binary tournaments over pool. Both contestants are
// drawn uniformly with replacement.
func TournamentSelect(rng *rand.Rand, pool []Member, n int) ([]Member, error) {
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if len(pool) == 0 {
		return nil, errors.New("tournament pool is empty")
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: cannot run %d tournaments", framework.ErrInvalidConfiguration, n)
	}

	selected := make([]Member, n)
	for i := range selected {
		a := pool[rng.IntN(len(pool))]
		b := pool[rng.IntN(len(pool))]
		selected[i] = BetterOf(a, b)
	}
	return selected, nil
}

// EnvironmentalSelect keeps the best target members of a ranked population.
// Crowding distance is computed for every front, whole fronts are taken in
// rank order while they fit, and the first front that does not fit is
// truncated by descending crowding distance.
func EnvironmentalSelect(population []*framework.Individual, r *framework.Ranking, target int, boundaryInf bool) ([]Member, error) {
	if r.Len() != len(population) {
		return nil, fmt.Errorf("ranking covers %d members, population has %d", r.Len(), len(population))
	}
	if target < 0 || target > len(population) {
		return nil, fmt.Errorf("%w: cannot select %d members out of %d", framework.ErrInvalidConfiguration, target, len(population))
	}

	points := objectives(population)
	for _, front := range r.Fronts {
		CrowdingDistance(r, points, front, boundaryInf)
	}

	selected := make([]Member, 0, target)
	for _, front := range r.Fronts {
		if len(selected)+len(front) <= target {
			for _, idx := range front {
				selected = append(selected, newMember(population[idx], r.Annotations[idx]))
			}
			continue
		}

		// If needed, add remaining individuals based on crowding distance
		last := slices.Clone(front)
		sort.SliceStable(last, func(i, j int) bool {
			a, b := r.Annotations[last[i]], r.Annotations[last[j]]
			if a.Rank != b.Rank {
				return a.Rank < b.Rank
			}
			return a.Distance > b.Distance
		})
		for _, idx := range last[:target-len(selected)] {
			selected = append(selected, newMember(population[idx], r.Annotations[idx]))
		}
		break
	}

	return selected, nil
}

func objectives(population []*framework.Individual) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, len(population))
	for i, ind := range population {
		points[i] = ind.Objectives
	}
	return points
}
