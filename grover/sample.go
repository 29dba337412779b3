package grover

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// sampler draws simulated measurement outcomes from a probability
// distribution using a private PRNG, so seeded runs are reproducible and
// concurrent searches never contend on shared generator state.
type sampler struct {
	rng *rand.Rand
}

func newSampler(seed int64, seeded bool) *sampler {
	if !seeded {
		seed = time.Now().UnixNano()
	}
	return &sampler{rng: rand.New(rand.NewSource(seed))}
}

// probabilities squares the amplitude vector into a distribution.
// For a normalized vector the result sums to 1 within floating tolerance.
func probabilities(amps []float64) []float64 {
	probs := make([]float64, len(amps))
	for i, a := range amps {
		probs[i] = a * a
	}
	return probs
}

// sample draws shots independent categorical samples from probs and
// aggregates them into basis-label counts. The counts always sum to exactly
// shots: every draw lands in some bucket.
func (s *sampler) sample(probs []float64, n, shots int) map[string]int {
	cum := make([]float64, len(probs))
	var total float64
	for i, p := range probs {
		total += p
		cum[i] = total
	}

	counts := make(map[string]int)
	for range shots {
		// Scale by the actual total so floating-point drift in the
		// distribution sum cannot push a draw past the last bucket.
		r := s.rng.Float64() * total
		idx := sort.SearchFloat64s(cum, r)
		if idx >= len(probs) {
			idx = len(probs) - 1
		}
		counts[basisLabel(idx, n)]++
	}
	return counts
}

// basisLabel renders index i as its n-bit binary label, e.g. "010" for
// i=2, n=3. For n=0 the single basis state is labeled "0".
func basisLabel(i, n int) string {
	return fmt.Sprintf("%0*b", n, i)
}
