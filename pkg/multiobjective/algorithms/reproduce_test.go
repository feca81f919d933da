package algorithms

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

func genomePool(t *testing.T, n, numBits int) []Member {
	t.Helper()
	rng := newRand(100)
	pool := make([]Member, n)
	for i := range pool {
		pool[i] = Member{Individual: &framework.Individual{Genome: framework.RandomGenome(rng, numBits)}}
	}
	return pool
}

func TestReproduce(t *testing.T) {
	for _, size := range []int{1, 2, 5, 6} {
		pool := genomePool(t, size, 32)

		// Replay the pairing by hand on an identical stream.
		rng := newRand(7)
		var want []framework.Genome
		for i := range pool {
			partner := i - 1
			switch {
			case i == len(pool)-1:
				partner = 0
			case i%2 == 0:
				partner = i + 1
			}
			child, err := pool[i].Genome.Crossover(rng, pool[partner].Genome, 0.9)
			require.NoError(t, err)
			want = append(want, child.Mutate(rng, 1.0/32))
		}

		got, err := Reproduce(newRand(7), pool, size, 0.9)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("pool of %d: unexpected children (-want +got):\n%s", size, diff)
		}
	}
}

func TestReproduceTarget(t *testing.T) {
	pool := genomePool(t, 6, 16)

	children, err := Reproduce(newRand(1), pool, 4, 0.98)
	require.NoError(t, err)
	assert.Len(t, children, 4)
	for _, c := range children {
		assert.Len(t, c, 16)
	}

	children, err = Reproduce(newRand(1), pool, 10, 0.98)
	require.NoError(t, err)
	assert.Len(t, children, 6, "at most one child per pool member")

	children, err = Reproduce(newRand(1), pool, 0, 0.98)
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestReproduceLeavesParentsUntouched(t *testing.T) {
	pool := genomePool(t, 4, 64)
	before := make([]string, len(pool))
	for i, m := range pool {
		before[i] = m.Genome.String()
	}

	_, err := Reproduce(newRand(1), pool, 4, 1)
	require.NoError(t, err)

	for i, m := range pool {
		assert.Equal(t, before[i], m.Genome.String())
	}
}

func TestReproduceLengthMismatch(t *testing.T) {
	pool := []Member{
		{Individual: &framework.Individual{Genome: make(framework.Genome, 8)}},
		{Individual: &framework.Individual{Genome: make(framework.Genome, 9)}},
	}

	_, err := Reproduce(newRand(1), pool, 2, 0.5)
	assert.True(t, errors.Is(err, framework.ErrLengthMismatch))
}
