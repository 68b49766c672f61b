// SPDX-License-Identifier: MIT

package codec

import (
	stderrors "errors"

	"github.com/katalvlaran/hopnet/pattern"
)

var (
	// ErrMalformedRecord indicates input that does not parse into the expected shape.
	ErrMalformedRecord = stderrors.New("codec: malformed record")

	// ErrUnknownFormat indicates a set format name other than glyph or numeric.
	ErrUnknownFormat = stderrors.New("codec: unknown set format")

	// ErrDimensionMismatch indicates a pattern or matrix that disagrees with the
	// declared dimension. It aliases pattern.ErrDimensionMismatch.
	ErrDimensionMismatch = pattern.ErrDimensionMismatch

	// ErrEmptyInput indicates a set declaring zero patterns. It aliases pattern.ErrEmptyInput.
	ErrEmptyInput = pattern.ErrEmptyInput
)
