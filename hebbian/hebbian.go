// SPDX-License-Identifier: MIT

package hebbian

import (
	"fmt"

	"github.com/katalvlaran/hopnet/matrix"
	"github.com/katalvlaran/hopnet/pattern"
)

// Train builds the Hopfield weight matrix W = Σ_p p·pᵗ with a zero diagonal.
//
// Stage 1 (Validate): non-empty set, common length N, capacity for T.
// Stage 2 (Accumulate): add each outer product into a running total.
// Stage 3 (Finalize): zero the diagonal and return the matrix.
//
// Example:
//
//	w, err := hebbian.Train[int64]([]pattern.Pattern{p1, p2})
//	if err != nil {
//	  // handle ErrEmptyInput / ErrDimensionMismatch
//	}
func Train[T matrix.Number](patterns []pattern.Pattern) (*matrix.Dense[T], error) {
	n, err := pattern.ValidateSet(patterns)
	if err != nil {
		return nil, fmt.Errorf("hebbian: Train: %w", err)
	}
	if int64(len(patterns)) > matrix.MaxExact[T]() {
		return nil, fmt.Errorf("hebbian: Train: %d patterns: %w", len(patterns), ErrTooManyPatterns)
	}

	acc, err := NewAccumulator[T](n)
	if err != nil {
		return nil, err
	}
	for i, p := range patterns {
		if err = acc.Add(p); err != nil {
			return nil, fmt.Errorf("hebbian: Train: pattern %d: %w", i, err)
		}
	}

	return acc.Weights()
}

// Accumulator sums outer products incrementally, for callers that stream
// patterns instead of holding the whole set. The diagonal is kept at zero on
// every Add, so Weights never needs a fix-up pass.
//
// An Accumulator is not safe for concurrent use.
type Accumulator[T matrix.Number] struct {
	n     int
	count int64
	sum   *matrix.Dense[T]
}

// NewAccumulator returns an empty accumulator for patterns of length n.
// Returns matrix.ErrInvalidDimensions for n <= 0.
func NewAccumulator[T matrix.Number](n int) (*Accumulator[T], error) {
	sum, err := matrix.NewSquare[T](n)
	if err != nil {
		return nil, fmt.Errorf("hebbian: NewAccumulator(%d): %w", n, err)
	}

	return &Accumulator[T]{n: n, sum: sum}, nil
}

// Dimension returns N.
func (a *Accumulator[T]) Dimension() int {
	return a.n
}

// Count returns the number of patterns added so far.
func (a *Accumulator[T]) Count() int64 {
	return a.count
}

// Add accumulates p·pᵗ, skipping the diagonal.
// Returns ErrDimensionMismatch for a pattern of the wrong length and
// ErrTooManyPatterns when the element type's capacity is reached.
// Complexity: O(N²).
func (a *Accumulator[T]) Add(p pattern.Pattern) error {
	if p.Len() != a.n {
		return fmt.Errorf("hebbian: Add: %d units, want %d: %w", p.Len(), a.n, ErrDimensionMismatch)
	}
	if a.count >= matrix.MaxExact[T]() {
		return ErrTooManyPatterns
	}

	var (
		u    = p.Units()
		i, j int
		prod T
	)
	// Fill the upper triangle and mirror it, so symmetry holds by construction.
	for i = 0; i < a.n; i++ {
		for j = i + 1; j < a.n; j++ {
			prod = T(u[i] * u[j])
			// Indices are in range by construction; errors cannot occur.
			_ = a.sum.Add(i, j, prod)
			_ = a.sum.Add(j, i, prod)
		}
	}
	a.count++

	return nil
}

// Weights returns a copy of the accumulated matrix.
// Returns ErrEmptyInput when nothing has been added.
func (a *Accumulator[T]) Weights() (*matrix.Dense[T], error) {
	if a.count == 0 {
		return nil, fmt.Errorf("hebbian: Weights: %w", ErrEmptyInput)
	}

	return a.sum.Clone(), nil
}
