package grover

import (
	"fmt"
	"math/bits"
	"strings"
)

// indexSpace is the power-of-two padded index space over a key list.
// Indices in [0, len(keys)) address real items; indices in
// [len(keys), size) are padding and hold no item.
type indexSpace struct {
	keys []string
	n    int // qubits: ceil(log2(len(keys)))
	size int // 2^n
}

// newIndexSpace computes the padded space for a non-empty key list.
func newIndexSpace(keys []string) indexSpace {
	n := bits.Len(uint(len(keys) - 1)) // ceil(log2(len)) for len >= 1
	return indexSpace{
		keys: keys,
		n:    n,
		size: 1 << n,
	}
}

// resolveTarget resolves the target to an index in the space.
// Exact equality wins; otherwise the first key containing the target as a
// substring is used (fuzzy=true). The fuzzy fallback is heuristic: it can
// select a different item than the caller had in mind, so the flag is
// surfaced to the caller.
func (s indexSpace) resolveTarget(target string) (idx int, fuzzy bool, err error) {
	for i, key := range s.keys {
		if key == target {
			return i, false, nil
		}
	}
	for i, key := range s.keys {
		if key != "" && strings.Contains(key, target) {
			return i, true, nil
		}
	}
	return 0, false, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
}

// item returns the key at index i, or false for padding indices.
func (s indexSpace) item(i int) (string, bool) {
	if i < 0 || i >= len(s.keys) {
		return "", false
	}
	return s.keys[i], true
}
