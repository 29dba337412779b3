package grover

import "math"

// Scheduling constants. The damping factor and the fixed small-space round
// count are empirical tunings, kept as named defaults and overridable per
// search via WithDamping and WithSmallSpaceRounds.
const (
	// DefaultDamping shrinks the round count for spaces larger than 16
	// states. The undamped optimum overshoots the target amplitude slightly
	// at those sizes.
	DefaultDamping = 0.9

	// DefaultSmallSpaceRounds is the fixed round count for spaces of at most
	// 4 states, where the general formula over-rotates destructively.
	DefaultSmallSpaceRounds = 1

	smallSpaceSize = 4
	midSpaceSize   = 16
)

// Iterations computes how many oracle/diffusion rounds to run for a padded
// space of the given size. It is a pure function of its arguments.
//
// With adaptive=false the count is always floor(pi/4 * sqrt(size)). With
// adaptive=true the count is adjusted at the extremes: fixed at
// DefaultSmallSpaceRounds for size <= 4 and damped by DefaultDamping for
// size > 16.
func Iterations(size int, adaptive bool) int {
	return iterations(size, adaptive, DefaultDamping, DefaultSmallSpaceRounds)
}

func iterations(size int, adaptive bool, damping float64, smallRounds int) int {
	base := math.Pi / 4 * math.Sqrt(float64(size))
	if !adaptive {
		return int(math.Floor(base))
	}
	switch {
	case size <= smallSpaceSize:
		return smallRounds
	case size <= midSpaceSize:
		return int(math.Floor(base))
	default:
		return int(math.Floor(base * damping))
	}
}
