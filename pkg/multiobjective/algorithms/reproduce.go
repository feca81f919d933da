package algorithms

import (
	"errors"
	"math/rand/v2"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// Reproduce builds up to target child genomes from the mating pool. Member i
// is paired with i+1 when i is even and with i-1 when i is odd; the last
// member is paired with the first. Every child is the result of crossover
// followed by bit-flip mutation at rate 1/len(genome). The children still
// have to be evaluated.
func Reproduce(rng *rand.Rand, pool []Member, target int, crossoverRate float64) ([]framework.Genome, error) {
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if target <= 0 {
		return nil, nil
	}

	children := make([]framework.Genome, 0, target)
	for i, p1 := range pool {
		var p2 Member
		switch {
		case i == len(pool)-1:
			p2 = pool[0]
		case i%2 == 0:
			p2 = pool[i+1]
		default:
			p2 = pool[i-1]
		}

		child, err := p1.Genome.Crossover(rng, p2.Genome, crossoverRate)
		if err != nil {
			return nil, err
		}
		children = append(children, child.Mutate(rng, 1.0/float64(len(child))))
		if len(children) >= target {
			break
		}
	}
	return children, nil
}
