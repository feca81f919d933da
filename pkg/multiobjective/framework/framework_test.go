package framework

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func filled(n int, bit bool) Genome {
	g := make(Genome, n)
	for i := range g {
		g[i] = bit
	}
	return g
}

func TestDecode(t *testing.T) {
	space := []Bounds{{L: -10, H: 10}, {L: 0, H: 1}, {L: 5, H: 5}}

	tests := []struct {
		name   string
		genome string
		bits   int
		want   []float64
	}{
		{
			name:   "all zero decodes to lower bounds",
			genome: "0000" + "0000" + "0000",
			bits:   4,
			want:   []float64{-10, 0, 5},
		},
		{
			name:   "all one decodes to upper bounds",
			genome: "1111" + "1111" + "1111",
			bits:   4,
			want:   []float64{10, 1, 5},
		},
		{
			name:   "last bit of a segment is the least significant",
			genome: "0001" + "1000" + "0101",
			bits:   4,
			want:   []float64{-10 + 20.0/15, 8.0 / 15, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGenome(tt.genome)
			require.NoError(t, err)

			got, err := g.Decode(space, tt.bits)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestDecodeStaysInBounds(t *testing.T) {
	rng := newRand(7)
	space := []Bounds{{L: -10, H: 10}, {L: 0.1, H: 0.3}, {L: -1e6, H: 1e6}}

	for i := 0; i < 500; i++ {
		g := RandomGenome(rng, len(space)*16)
		vector, err := g.Decode(space, 16)
		require.NoError(t, err)
		for d, v := range vector {
			assert.GreaterOrEqual(t, v, space[d].L)
			assert.LessOrEqual(t, v, space[d].H)
		}
	}

	ones, err := filled(len(space)*16, true).Decode(space, 16)
	require.NoError(t, err)
	for d, v := range ones {
		assert.LessOrEqual(t, v, space[d].H)
		assert.InDelta(t, space[d].H, v, 1e-9)
	}
}

func TestDecodeInvalidLength(t *testing.T) {
	space := []Bounds{{L: 0, H: 1}, {L: 0, H: 1}}

	_, err := filled(31, false).Decode(space, 16)
	assert.ErrorIs(t, err, ErrInvalidGenomeLength)

	_, err = filled(0, false).Decode(nil, 0)
	assert.ErrorIs(t, err, ErrInvalidGenomeLength)

	_, err = filled(128, false).Decode(space, 64)
	assert.ErrorIs(t, err, ErrInvalidGenomeLength)
}

func TestRandomGenome(t *testing.T) {
	g := RandomGenome(newRand(1), 10000)
	require.Len(t, g, 10000)

	ones := 0
	for _, b := range g {
		if b {
			ones++
		}
	}
	// A fair coin stays well within 5% of the mean for this many draws.
	assert.InDelta(t, 5000, ones, 500)

	assert.Equal(t, g, RandomGenome(newRand(1), 10000))
}

func TestParseGenome(t *testing.T) {
	g, err := ParseGenome("0110")
	require.NoError(t, err)
	assert.Equal(t, Genome{false, true, true, false}, g)
	assert.Equal(t, "0110", g.String())

	_, err = ParseGenome("01x")
	assert.Error(t, err)
}

func TestMutate(t *testing.T) {
	g := filled(64, false)

	assert.Equal(t, g, g.Mutate(newRand(3), 0))
	assert.Equal(t, filled(64, true), g.Mutate(newRand(3), 1))

	child := g.Mutate(newRand(3), 0.5)
	assert.Equal(t, filled(64, false), g, "parent must not be modified")
	assert.Equal(t, child, g.Mutate(newRand(3), 0.5), "same stream, same result")
}

func TestCrossover(t *testing.T) {
	a := filled(32, false)
	b := filled(32, true)

	t.Run("no recombination returns the first parent", func(t *testing.T) {
		child, err := a.Crossover(newRand(1), b, 0)
		require.NoError(t, err)
		assert.Equal(t, a, child)
	})

	t.Run("uniform recombination mixes both parents", func(t *testing.T) {
		child, err := a.Crossover(newRand(1), b, 1)
		require.NoError(t, err)
		require.Len(t, child, 32)
		assert.Contains(t, child, true)
		assert.Contains(t, child, false)
	})

	t.Run("identical parents yield the same genome", func(t *testing.T) {
		child, err := b.Crossover(newRand(1), b, 1)
		require.NoError(t, err)
		assert.Equal(t, b, child)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := a.Crossover(newRand(1), filled(31, true), 1)
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})
}

func TestProblemEvaluator(t *testing.T) {
	eval := ProblemEvaluator(testProblem{})
	assert.Equal(t, ObjectiveSpacePoint{9, 1}, eval.Evaluate([]float64{3}))
	assert.Equal(t, 10.0, eval.Evaluate([]float64{3}).Sum())
}

type testProblem struct{}

func (testProblem) Name() string { return "test" }

func (testProblem) Bounds() []Bounds { return []Bounds{{L: -10, H: 10}} }

func (testProblem) TrueParetoFront(int) []ObjectiveSpacePoint {
	return nil
}

func (testProblem) ObjectiveFuncs() []ObjectiveFunc {
	return []ObjectiveFunc{
		func(x []float64) float64 { return x[0] * x[0] },
		func(x []float64) float64 { return (x[0] - 2) * (x[0] - 2) },
	}
}
