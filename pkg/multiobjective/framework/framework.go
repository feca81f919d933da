package framework

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// MaxBitsPerParam is the widest segment that still maps every integer
// exactly onto a float64.
const MaxBitsPerParam = 53

// Bounds holds the lower and upper limit of one decision variable.
type Bounds struct {
	L float64
	H float64
}

// Genome is a binary encoding scheme, where each group of bits encodes one
// decision variable of the search space.
type Genome []bool

// RandomGenome returns numBits independent, unbiased bits.
func RandomGenome(rng *rand.Rand, numBits int) Genome {
	g := make(Genome, numBits)
	for i := range g {
		g[i] = rng.IntN(2) == 1
	}
	return g
}

// ParseGenome reads a genome from its String form.
func ParseGenome(s string) (Genome, error) {
	g := make(Genome, len(s))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			g[i] = true
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", c, i)
		}
	}
	return g, nil
}

// String renders the genome as a string of '0' and '1'.
func (g Genome) String() string {
	var sb strings.Builder
	sb.Grow(len(g))
	for _, b := range g {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (g Genome) Clone() Genome {
	newBits := make(Genome, len(g))
	copy(newBits, g)
	return newBits
}

// Decode splits the genome into bitsPerParam wide segments, one per entry of
// the search space. The last bit of a segment is its least significant bit.
// Each segment is scaled linearly from [0, 2^bitsPerParam-1] onto [L, H].
func (g Genome) Decode(space []Bounds, bitsPerParam int) ([]float64, error) {
	if bitsPerParam < 1 || bitsPerParam > MaxBitsPerParam {
		return nil, fmt.Errorf("%w: %d bits per parameter, must be in [1, %d]", ErrInvalidGenomeLength, bitsPerParam, MaxBitsPerParam)
	}
	if len(g) != len(space)*bitsPerParam {
		return nil, fmt.Errorf("%w: got %d bits, want %d (%d dimensions x %d bits)",
			ErrInvalidGenomeLength, len(g), len(space)*bitsPerParam, len(space), bitsPerParam)
	}

	maxInt := float64(uint64(1)<<bitsPerParam - 1)
	vector := make([]float64, len(space))
	for i, b := range space {
		segment := g[i*bitsPerParam : (i+1)*bitsPerParam]
		var n uint64
		for _, bit := range segment {
			n <<= 1
			if bit {
				n |= 1
			}
		}
		v := b.L + (b.H-b.L)*float64(n)/maxInt
		vector[i] = min(max(v, b.L), b.H)
	}
	return vector, nil
}

// Mutate returns a copy of the genome where every bit is flipped with
// probability rate.
func (g Genome) Mutate(rng *rand.Rand, rate float64) Genome {
	child := g.Clone()
	for i := range child {
		if rng.Float64() < rate {
			child[i] = !child[i]
		}
	}
	return child
}

// Crossover implements uniform crossover. With probability 1-rate the
// receiver is returned unchanged (as a copy); otherwise every bit is taken
// from either parent with equal probability.
func (g Genome) Crossover(rng *rand.Rand, other Genome, rate float64) (Genome, error) {
	if len(g) != len(other) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(g), len(other))
	}
	if rng.Float64() >= rate {
		return g.Clone(), nil
	}
	child := make(Genome, len(g))
	for i := range g {
		if rng.Float64() < 0.5 {
			child[i] = g[i]
		} else {
			child[i] = other[i]
		}
	}
	return child, nil
}
