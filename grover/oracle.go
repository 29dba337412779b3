package grover

// Operator is an in-place transform of the amplitude vector. Operators must
// preserve the L2 norm of the vector.
type Operator func(amps []float64)

// BuildOracle builds the marking operator for one target index: it negates
// the amplitude at target and leaves every other amplitude unchanged.
//
// The construction mirrors the usual circuit decomposition, translated to
// amplitude space: conjugate by the XOR permutation that maps the target to
// the all-ones index (the image of X gates on the target's zero bits), flip
// the phase of the all-ones state with a single joint condition, then undo
// the permutation. The net effect is a diagonal operator that is -1 at the
// target and +1 elsewhere.
func BuildOracle(n int, target uint64) Operator {
	ones := uint64(1<<n) - 1
	mask := ones ^ (target & ones) // bits where the target pattern is 0
	return func(amps []float64) {
		permuteXOR(amps, mask)
		amps[ones] = -amps[ones]
		permuteXOR(amps, mask)
	}
}

// permuteXOR relabels basis states by XOR-ing each index with mask.
// The permutation is self-inverse, so applying it twice is the identity.
func permuteXOR(amps []float64, mask uint64) {
	if mask == 0 {
		return
	}
	for i := range amps {
		j := uint64(i) ^ mask
		if uint64(i) < j {
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
}
