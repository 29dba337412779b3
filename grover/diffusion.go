package grover

// BuildDiffusion builds the amplification operator that reflects every
// amplitude about the vector mean:
//
//	new[i] = 2*mean - amp[i]
//
// This is the closed-form effect of reflecting about the equal superposition,
// implemented directly as the affine transform rather than through a gate
// decomposition. The reflection is an involution: applied twice it restores
// the original vector.
func BuildDiffusion(n int) Operator {
	size := 1 << n
	return func(amps []float64) {
		var mean float64
		for _, a := range amps {
			mean += a
		}
		mean /= float64(size)
		for i := range amps {
			amps[i] = 2*mean - amps[i]
		}
	}
}
