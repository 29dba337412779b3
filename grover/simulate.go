package grover

import "math"

// simulator drives the amplitude vector from the uniform superposition
// through the scheduled amplification rounds. Each call to run allocates a
// fresh vector; nothing is shared between searches.
type simulator struct {
	n         int
	oracle    Operator
	diffusion Operator
}

func newSimulator(n int, target uint64) *simulator {
	return &simulator{
		n:         n,
		oracle:    BuildOracle(n, target),
		diffusion: BuildDiffusion(n),
	}
}

// run initializes amp[i] = 1/sqrt(N) for all i, then applies rounds of
// oracle-then-diffusion. No observation happens until all rounds complete.
// rounds=0 is valid and returns the uniform vector unchanged. The vector
// stays normalized after every step: both operators are reflections.
func (s *simulator) run(rounds int) []float64 {
	size := 1 << s.n
	amps := make([]float64, size)
	initial := 1 / math.Sqrt(float64(size))
	for i := range amps {
		amps[i] = initial
	}
	for range rounds {
		s.oracle(amps)
		s.diffusion(amps)
	}
	return amps
}
