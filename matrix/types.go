// SPDX-License-Identifier: MIT

// Package matrix: element types shared by Dense and the validators.
package matrix

import "math"

// Number is the set of element types a weight matrix may hold.
// Hebbian weights are integer sums of ±1 products; float64 is kept for
// callers that post-process weights (scaling, pruning) before recall.
type Number interface {
	~int32 | ~int64 | ~float64
}

// DefaultEpsilon is the tolerance used by symmetry and zero-diagonal checks.
// Integer weights differ by at least 1, so the tolerance only matters for float64.
const DefaultEpsilon = 1e-9

// MaxExact reports the largest magnitude an element of type T can hold
// without wrapping (integers) or losing integer precision (float64).
// Complexity: O(1).
func MaxExact[T Number]() int64 {
	var zero T
	switch any(zero).(type) {
	case int32:
		return math.MaxInt32
	case int64:
		return math.MaxInt64
	default:
		// float64 represents every integer up to 2^53 exactly.
		return 1 << 53
	}
}
