package hebbian

import (
	"errors"

	"github.com/katalvlaran/hopnet/pattern"
)

var (
	// ErrEmptyInput indicates that no training patterns were supplied.
	// It aliases pattern.ErrEmptyInput so either sentinel matches.
	ErrEmptyInput = pattern.ErrEmptyInput

	// ErrDimensionMismatch indicates a pattern whose length differs from the others.
	// It aliases pattern.ErrDimensionMismatch so either sentinel matches.
	ErrDimensionMismatch = pattern.ErrDimensionMismatch

	// ErrTooManyPatterns indicates that one more pattern could overflow the element type.
	ErrTooManyPatterns = errors.New("hebbian: pattern count exceeds element type capacity")
)
