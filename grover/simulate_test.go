package grover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumOfSquares(amps []float64) float64 {
	var s float64
	for _, a := range amps {
		s += a * a
	}
	return s
}

func TestSimulator_ZeroRoundsIsUniform(t *testing.T) {
	amps := newSimulator(3, 2).run(0)

	require.Len(t, amps, 8)
	for i, a := range amps {
		assert.InDelta(t, amps[0], a, 1e-12, "index %d", i)
	}
	assert.InDelta(t, 1.0, sumOfSquares(amps), 1e-9)
}

func TestSimulator_StaysNormalized(t *testing.T) {
	// The vector must remain normalized after every individual operator
	// application, not just at the end of a round.
	n := 4
	sim := newSimulator(n, 9)
	amps := sim.run(0)

	for round := 0; round < 5; round++ {
		sim.oracle(amps)
		require.InDelta(t, 1.0, sumOfSquares(amps), 1e-9, "after oracle, round %d", round)
		sim.diffusion(amps)
		require.InDelta(t, 1.0, sumOfSquares(amps), 1e-9, "after diffusion, round %d", round)
	}
}

func TestSimulator_ConcentratesOnTarget(t *testing.T) {
	// n=1 is excluded: with two states one round only changes signs, so the
	// distribution stays a 50/50 split.
	for n := 2; n <= 5; n++ {
		size := 1 << n
		target := size / 2
		rounds := Iterations(size, true)

		amps := newSimulator(n, uint64(target)).run(rounds)
		probs := probabilities(amps)

		best := 0
		for i := range probs {
			if probs[i] > probs[best] {
				best = i
			}
		}
		assert.Equal(t, target, best, "n=%d", n)
		assert.Greater(t, probs[target], 0.5, "n=%d", n)
	}
}

func TestSimulator_FreshVectorPerRun(t *testing.T) {
	sim := newSimulator(3, 1)
	a := sim.run(2)
	b := sim.run(2)

	require.NotSame(t, &a[0], &b[0])
	assert.Equal(t, a, b)
}
