package framework

import "fmt"

// DominancePolicy selects how two objective vectors are compared.
type DominancePolicy int

const (
	// DominanceStrict is classical Pareto dominance: no worse on every
	// objective and strictly better on at least one.
	DominanceStrict DominancePolicy = iota
	// DominanceWeak only requires a to be no worse on every objective, so
	// identical vectors dominate each other.
	DominanceWeak
)

func (p DominancePolicy) String() string {
	switch p {
	case DominanceStrict:
		return "Strict"
	case DominanceWeak:
		return "Weak"
	}
	return fmt.Sprintf("DominancePolicy(%d)", int(p))
}

// ParseDominancePolicy is the inverse of DominancePolicy.String.
func ParseDominancePolicy(s string) (DominancePolicy, error) {
	switch s {
	case "", "Strict":
		return DominanceStrict, nil
	case "Weak":
		return DominanceWeak, nil
	}
	return 0, fmt.Errorf("unknown dominance policy %q", s)
}

// Dominates checks if point a dominates point b. All objectives are minimized.
func Dominates(a, b ObjectiveSpacePoint, policy DominancePolicy) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better || policy == DominanceWeak
}

// Annotation is the ranking data computed for one member of a population
// during a single non-dominated sort. It is only meaningful together with the
// Ranking it belongs to.
type Annotation struct {
	Rank            int
	DominationCount int
	// Dominated holds the indices of the members this one dominates.
	Dominated []int

	Distance float64
	// Crowded is set once a crowding distance has been computed.
	Crowded bool
}

// Ranking is the result of a non-dominated sort. Annotations and fronts
// refer to members by their index in the sorted slice.
type Ranking struct {
	Annotations []Annotation
	Fronts      [][]int
}

// Len returns the number of ranked members.
func (r *Ranking) Len() int {
	return len(r.Annotations)
}

// NonDominatedSort performs non-dominated sorting on the population
func NonDominatedSort(points []ObjectiveSpacePoint, policy DominancePolicy) *Ranking {
	r := &Ranking{Annotations: make([]Annotation, len(points))}
	if len(points) == 0 {
		return r
	}
	ann := r.Annotations

	// Calculate domination for each individual
	for i := 0; i < len(points); i++ {
		for j := 0; j < len(points); j++ {
			if i != j {
				if Dominates(points[i], points[j], policy) {
					ann[i].Dominated = append(ann[i].Dominated, j)
				} else if Dominates(points[j], points[i], policy) {
					ann[i].DominationCount++
				}
			}
		}
	}

	// Find first front. The counts are copied so that DominationCount keeps
	// the value computed above.
	remaining := make([]int, len(points))
	currentFront := []int{}
	for i := 0; i < len(points); i++ {
		remaining[i] = ann[i].DominationCount
		if remaining[i] == 0 {
			ann[i].Rank = 0
			currentFront = append(currentFront, i)
		}
	}

	// Find subsequent fronts
	frontIndex := 0
	for len(currentFront) > 0 {
		r.Fronts = append(r.Fronts, currentFront)
		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range ann[idx].Dominated {
				remaining[dominatedIdx]--
				if remaining[dominatedIdx] == 0 {
					ann[dominatedIdx].Rank = frontIndex + 1
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		frontIndex++
		currentFront = nextFront
	}

	return r
}
