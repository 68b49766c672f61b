// SPDX-License-Identifier: MIT

package pattern

import "fmt"

// ValidateSet checks that ps is non-empty and that every pattern has the same
// length, returning that common dimension N.
// Returns ErrEmptyInput for an empty set, ErrEmptyPattern for a zero-length
// pattern and ErrDimensionMismatch (tagged with the offending index) otherwise.
// Complexity: O(M).
func ValidateSet(ps []Pattern) (int, error) {
	if len(ps) == 0 {
		return 0, ErrEmptyInput
	}
	n := ps[0].Len()
	if n == 0 {
		return 0, fmt.Errorf("ValidateSet: pattern 0: %w", ErrEmptyPattern)
	}
	for i := 1; i < len(ps); i++ {
		if ps[i].Len() != n {
			return 0, fmt.Errorf("ValidateSet: pattern %d has %d units, want %d: %w",
				i, ps[i].Len(), n, ErrDimensionMismatch)
		}
	}

	return n, nil
}

// Match reports whether p equals one of the stored patterns or the inverse of
// one. The first match in stored order wins; a direct match is preferred over
// an inverse match of the same pattern.
// Complexity: O(M·N).
func Match(stored []Pattern, p Pattern) (index int, inverted bool, ok bool) {
	for i, s := range stored {
		if s.Equal(p) {
			return i, false, true
		}
		if s.Len() == p.Len() && s.Negate().Equal(p) {
			return i, true, true
		}
	}

	return -1, false, false
}
