package recall

import (
	"errors"

	"github.com/katalvlaran/hopnet/pattern"
)

var (
	// ErrDimensionMismatch indicates a probe whose length differs from the matrix order.
	// It aliases pattern.ErrDimensionMismatch so either sentinel matches.
	ErrDimensionMismatch = pattern.ErrDimensionMismatch

	// ErrNonConvergence indicates that relaxation exceeded Options.MaxEpochs.
	ErrNonConvergence = errors.New("recall: no fixed point within the epoch guard")

	// ErrBadOptions indicates an invalid Options value (e.g. negative MaxEpochs).
	ErrBadOptions = errors.New("recall: invalid options")

	// ErrUnknownBias indicates a bias name ParseBias does not recognize.
	ErrUnknownBias = errors.New("recall: unknown bias mode")
)
