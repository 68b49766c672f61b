// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for weight-matrix checks.
//   - Keep trainer/recaller minimal by delegating nil/shape/symmetry checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly and callers can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry runs O(n²) on the strict upper triangle only.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → Square → Symmetric → ZeroDiagonal.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// differs reports |a-b| > DefaultEpsilon without overflowing integer types.
func differs[T Number](a, b T) bool {
	if a == b {
		return false
	}

	return math.Abs(float64(a)-float64(b)) > DefaultEpsilon
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil.
// Complexity: O(1).
func ValidateSquare[T Number](m *Dense[T]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures a state vector length matches the matrix order n.
// Complexity: O(1).
func ValidateVecLen(length, n int) error {
	if length != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks W[i][j] == W[j][i] for all i<j.
// Assumes m is non-nil and square.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric[T Number](m *Dense[T]) error {
	var (
		n    = m.r
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if differs(m.data[i*n+j], m.data[j*n+i]) {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks W[i][i] == 0 for all i.
// Assumes m is non-nil and square.
// Complexity: O(n).
func ValidateZeroDiagonal[T Number](m *Dense[T]) error {
	var i int
	for i = 0; i < m.r; i++ {
		if differs(m.data[i*m.c+i], 0) {
			return validatorErrorf("ValidateZeroDiagonal",
				fmt.Errorf("(%d,%d): %w", i, i, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateHopfield is the composite check every recall runs first:
// NotNil → Square → Symmetric → ZeroDiagonal.
// Complexity: O(n²).
func ValidateHopfield[T Number](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateHopfield", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateHopfield", err)
	}
	if err := ValidateSymmetric(m); err != nil {
		return validatorErrorf("ValidateHopfield", err)
	}
	if err := ValidateZeroDiagonal(m); err != nil {
		return validatorErrorf("ValidateHopfield", err)
	}

	return nil
}
