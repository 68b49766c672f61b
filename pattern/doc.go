// Package pattern defines the bipolar Pattern type consumed by the Hopfield
// trainer and recaller, together with grid/glyph conversions.
//
// What:
//
//   - Pattern is an immutable vector of N values in {-1, +1}.
//   - Binary {0, 1} inputs are normalized to bipolar on construction.
//   - Glyph grids (e.g. 'O' for +1 and ' ' for -1) convert to and from
//     patterns through a Shape (rows × cols).
//   - ValidateSet checks that a training or probe set shares one dimension.
//   - Match tells whether a recalled pattern is a stored memory or its inverse.
//
// Errors:
//
//   - ErrEmptyPattern: a pattern with no units.
//   - ErrNotBipolar: values outside {-1,+1} (or {0,1}), or a mix of both.
//   - ErrEmptyGrid / ErrNonRectangular / ErrUnknownGlyph: bad glyph grids.
//   - ErrDimensionMismatch / ErrEmptyInput: inconsistent or empty sets.
package pattern
