// SPDX-License-Identifier: MIT

package pattern

import "errors"

// Sentinel errors for pattern operations.
var (
	// ErrEmptyPattern indicates a pattern with zero units.
	ErrEmptyPattern = errors.New("pattern: pattern must have at least one unit")
	// ErrNotBipolar indicates a value outside {-1,+1} and {0,1}, or a mix of the two encodings.
	ErrNotBipolar = errors.New("pattern: values must be all bipolar {-1,+1} or all binary {0,1}")
	// ErrEmptyGrid indicates an input grid with no rows or no columns.
	ErrEmptyGrid = errors.New("pattern: grid must have at least one row and one column")
	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("pattern: all grid rows must have the same length")
	// ErrUnknownGlyph indicates a grid rune that is neither the On nor the Off glyph.
	ErrUnknownGlyph = errors.New("pattern: unknown glyph")
	// ErrDimensionMismatch indicates a pattern length that disagrees with the expected dimension.
	ErrDimensionMismatch = errors.New("pattern: dimension mismatch")
	// ErrEmptyInput indicates an empty pattern set.
	ErrEmptyInput = errors.New("pattern: no patterns")
	// ErrBadGlyphs indicates an On/Off glyph pair that cannot tell states apart.
	ErrBadGlyphs = errors.New("pattern: On and Off glyphs must differ")
	// ErrBadShape indicates a non-positive grid shape.
	ErrBadShape = errors.New("pattern: shape must be positive")
)
