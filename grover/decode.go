package grover

import "strconv"

// decodeCounts selects the basis label with the highest count, breaking ties
// toward the lexicographically smallest label, and decodes it to an index.
func decodeCounts(counts map[string]int) (label string, index int) {
	best := -1
	for l, c := range counts {
		if c > best || (c == best && l < label) {
			best = c
			label = l
		}
	}
	idx, err := strconv.ParseUint(label, 2, 64)
	if err != nil {
		// Labels are produced by basisLabel; anything else is a defect.
		panic("grover: malformed basis label " + strconv.Quote(label))
	}
	return label, int(idx)
}
