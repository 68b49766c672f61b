// SPDX-License-Identifier: MIT

package noise

import (
	"errors"

	"github.com/katalvlaran/hopnet/pattern"
)

var (
	// ErrTooManyUnique is returned when more distinct patterns are requested
	// than 2ⁿ patterns of length n exist.
	ErrTooManyUnique = errors.New("noise: more unique patterns requested than exist")

	// ErrBadFraction is returned when a corruption fraction lies outside [0,1].
	ErrBadFraction = errors.New("noise: fraction must be in [0,1]")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("noise: nil random source")

	// ErrEmptyPattern is returned for a non-positive pattern length.
	ErrEmptyPattern = pattern.ErrEmptyPattern
)
