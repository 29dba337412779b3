package grover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var osKeys = []string{"apple", "banana", "os", "linux", "windows"}

func TestSearch_FindsTarget(t *testing.T) {
	result, err := Search(osKeys, "os", WithShots(1000), WithSeed(42))
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, "os", result.Item)
	assert.Equal(t, 2, result.Index)
	assert.False(t, result.Fuzzy)
	assert.Equal(t, 3, result.Qubits)
	assert.Equal(t, 8, result.SpaceSize)
	assert.Equal(t, 2, result.Iterations)

	total := 0
	for _, c := range result.Counts {
		total += c
	}
	assert.Equal(t, 1000, total)

	// The majority label must decode to the target index.
	label, idx := decodeCounts(result.Counts)
	assert.Equal(t, "010", label)
	assert.Equal(t, 2, idx)
}

func TestSearch_SeedReproducible(t *testing.T) {
	a, err := Search(osKeys, "linux", WithSeed(7))
	require.NoError(t, err)
	b, err := Search(osKeys, "linux", WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.Counts, b.Counts)
	assert.Equal(t, a.Item, b.Item)
}

func TestSearch_FuzzyFallback(t *testing.T) {
	result, err := Search(osKeys, "nux", WithSeed(1))
	require.NoError(t, err)

	assert.True(t, result.Fuzzy)
	assert.Equal(t, "linux", result.Item)
	assert.Equal(t, 3, result.Index)
}

func TestSearch_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		target  string
		opts    []Option
		wantErr error
	}{
		{"empty database", nil, "x", nil, ErrEmptyDatabase},
		{"empty target", []string{"a"}, "", nil, ErrInvalidTarget},
		{"blank target", []string{"a"}, "   ", nil, ErrInvalidTarget},
		{"target not found", []string{"a", "b"}, "z", nil, ErrTargetNotFound},
		{"zero shots", []string{"a"}, "a", []Option{WithShots(0)}, ErrShotsOutOfRange},
		{"negative shots", []string{"a"}, "a", []Option{WithShots(-5)}, ErrShotsOutOfRange},
		{"too many shots", []string{"a"}, "a", []Option{WithShots(MaxShots + 1)}, ErrShotsOutOfRange},
		{"qubit ceiling", osKeys, "os", []Option{WithMaxQubits(2)}, ErrQubitCeilingExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Search(tt.keys, tt.target, tt.opts...)
			assert.Nil(t, result, "no partial state on failure")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSearch_NonAdaptive(t *testing.T) {
	result, err := Search(osKeys, "os", WithAdaptive(false), WithSeed(3))
	require.NoError(t, err)

	// floor(pi/4 * sqrt(8)) = 2, same as the adaptive mid-range schedule.
	assert.Equal(t, 2, result.Iterations)
	assert.Equal(t, "os", result.Item)
}

func TestSearch_SingleItem(t *testing.T) {
	result, err := Search([]string{"only"}, "only", WithSeed(5), WithShots(16))
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, 0, result.Index)
	assert.Equal(t, 0, result.Qubits)
	assert.Equal(t, 1, result.SpaceSize)
	assert.Equal(t, map[string]int{"0": 16}, result.Counts)
}

func TestSearch_ExactPowerOfTwo(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	result, err := Search(keys, "f", WithSeed(11))
	require.NoError(t, err)

	assert.Equal(t, 8, result.SpaceSize, "power-of-two input must not be padded further")
	assert.Equal(t, "f", result.Item)
	assert.Equal(t, 5, result.Index)
}

func TestSearch_HighSuccessRateAcrossSeeds(t *testing.T) {
	// The theoretical success probability at N=8 with two rounds is ~0.94
	// per shot; over many shots the majority vote should almost never miss.
	successes := 0
	for seed := int64(0); seed < 100; seed++ {
		result, err := Search(osKeys, "os", WithShots(200), WithSeed(seed))
		require.NoError(t, err)
		if result.Found && result.Index == 2 {
			successes++
		}
	}
	assert.Greater(t, successes, 90)
}

func TestSearch_DistributionExposesPadding(t *testing.T) {
	// 5 real keys in an 8-slot space: padding labels may legitimately show
	// up in the distribution, and the full distribution is always returned.
	result, err := Search(osKeys, "banana", WithShots(4096), WithSeed(9))
	require.NoError(t, err)

	require.Len(t, result.Probabilities, 8)
	var sum float64
	for _, p := range result.Probabilities {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	for label := range result.Counts {
		assert.Len(t, label, 3)
	}
}

func TestSearch_PaddingMajorityIsNotFound(t *testing.T) {
	// Force the amplification to do nothing useful (damping 0 yields zero
	// rounds at this size), leaving a uniform distribution where a padding
	// label can win the tally. The decoder must then report "not found"
	// while still returning the counts.
	keys := make([]string, 17) // pads to 32 states
	for i := range keys {
		keys[i] = string(rune('a' + i))
	}

	found, notFound := 0, 0
	for seed := int64(0); seed < 30; seed++ {
		result, err := Search(keys, keys[0], WithSeed(seed), WithShots(64), WithDamping(0))
		require.NoError(t, err)
		require.Equal(t, 0, result.Iterations)

		total := 0
		for _, c := range result.Counts {
			total += c
		}
		require.Equal(t, 64, total)

		if result.Found {
			require.GreaterOrEqual(t, result.Index, 0)
			require.Less(t, result.Index, len(keys))
			found++
		} else {
			require.Equal(t, -1, result.Index)
			require.Empty(t, result.Item)
			notFound++
		}
	}
	// With 17 of 32 slots real and a uniform distribution, both outcomes
	// must occur over 30 seeds.
	assert.Positive(t, found)
	assert.Positive(t, notFound)
}
