package grover

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformVector(n int) []float64 {
	size := 1 << n
	amps := make([]float64, size)
	for i := range amps {
		amps[i] = 1 / math.Sqrt(float64(size))
	}
	return amps
}

func TestBuildOracle_TruthTable(t *testing.T) {
	// Explicit truth tables for n=1..3: the operator must be -1 at the
	// target index and +1 everywhere else.
	for n := 1; n <= 3; n++ {
		size := 1 << n
		for target := 0; target < size; target++ {
			oracle := BuildOracle(n, uint64(target))
			for basis := 0; basis < size; basis++ {
				amps := make([]float64, size)
				amps[basis] = 1
				oracle(amps)

				want := 1.0
				if basis == target {
					want = -1.0
				}
				assert.InDelta(t, want, amps[basis], 1e-12,
					"n=%d target=%d basis=%d", n, target, basis)
				for other := 0; other < size; other++ {
					if other != basis {
						assert.Zero(t, amps[other],
							"n=%d target=%d basis=%d leaked into %d", n, target, basis, other)
					}
				}
			}
		}
	}
}

func TestBuildOracle_FlipsOnlyTarget(t *testing.T) {
	for n := 1; n <= 5; n++ {
		size := 1 << n
		for target := 0; target < size; target++ {
			amps := uniformVector(n)
			initial := amps[0]

			BuildOracle(n, uint64(target))(amps)

			for i, a := range amps {
				if i == target {
					require.InDelta(t, -initial, a, 1e-12, "n=%d target=%d", n, target)
				} else {
					require.InDelta(t, initial, a, 1e-12, "n=%d target=%d i=%d", n, target, i)
				}
			}
		}
	}
}

func TestBuildOracle_Deterministic(t *testing.T) {
	// Two operators built from identical arguments must have identical
	// observable effect.
	a := uniformVector(4)
	b := uniformVector(4)
	a[3], b[3] = 0.5, 0.5 // arbitrary, just not uniform

	BuildOracle(4, 11)(a)
	BuildOracle(4, 11)(b)

	assert.Equal(t, a, b)
}

func TestBuildOracle_NormPreserving(t *testing.T) {
	amps := uniformVector(3)
	BuildOracle(3, 5)(amps)

	var sumSq float64
	for _, a := range amps {
		sumSq += a * a
	}
	assert.InDelta(t, 1.0, sumSq, 1e-12)
}

func TestPermuteXOR_SelfInverse(t *testing.T) {
	amps := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	original := append([]float64(nil), amps...)

	permuteXOR(amps, 5)
	assert.NotEqual(t, original, amps)
	permuteXOR(amps, 5)
	assert.Equal(t, original, amps)
}
