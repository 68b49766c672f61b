// SPDX-License-Identifier: MIT

package recall

import (
	"fmt"
	"math/rand"
	"strings"
)

// DefaultMaxEpochs is the epoch guard applied when Options.MaxEpochs is 0.
// Symmetric zero-diagonal networks settle in a handful of epochs; the guard
// only exists to turn a broken weight file into an error instead of a hang.
const DefaultMaxEpochs = 1000

// BiasMode selects how the external input enters the net-input calculation.
type BiasMode int

const (
	// BiasNone uses the probe only as the initial state: net_k = Σ_i y[i]*W[i][k].
	BiasNone BiasMode = iota

	// BiasExternal adds the probe at every update: net_k = probe[k] + Σ_i y[i]*W[i][k].
	BiasExternal
)

// String returns "none" or "external".
func (b BiasMode) String() string {
	switch b {
	case BiasNone:
		return "none"
	case BiasExternal:
		return "external"
	default:
		return fmt.Sprintf("BiasMode(%d)", int(b))
	}
}

// ParseBias maps "none"/"external" (case-insensitive; "" ⇒ none) to a BiasMode.
func ParseBias(s string) (BiasMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BiasNone, nil
	case "external":
		return BiasExternal, nil
	default:
		return BiasNone, fmt.Errorf("%q: %w", s, ErrUnknownBias)
	}
}

// Options configures relaxation.
//
// Fields:
//   - MaxEpochs — epoch guard; 0 ⇒ DefaultMaxEpochs, negative is invalid.
//   - Bias      — BiasNone or BiasExternal.
//   - Seed      — seeds the visitation-order generator; 0 ⇒ a fixed default seed.
//   - Rand      — if non-nil, used instead of Seed. Not goroutine-safe: never
//     share one *rand.Rand between concurrent Recall calls. RecallBatch draws a
//     single base seed from it and derives per-probe streams.
type Options struct {
	MaxEpochs int
	Bias      BiasMode
	Seed      int64
	Rand      *rand.Rand
}

// DefaultOptions returns MaxEpochs=DefaultMaxEpochs, BiasNone, Seed=0.
func DefaultOptions() Options {
	return Options{MaxEpochs: DefaultMaxEpochs, Bias: BiasNone}
}

// validate normalizes o in place and rejects invalid values.
func (o *Options) validate() error {
	if o.MaxEpochs < 0 {
		return fmt.Errorf("MaxEpochs=%d: %w", o.MaxEpochs, ErrBadOptions)
	}
	if o.MaxEpochs == 0 {
		o.MaxEpochs = DefaultMaxEpochs
	}
	if o.Bias != BiasNone && o.Bias != BiasExternal {
		return fmt.Errorf("Bias=%v: %w", o.Bias, ErrBadOptions)
	}

	return nil
}

// generator returns the RNG for a single relaxation.
func (o *Options) generator() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// baseSeed returns the parent seed from which batch streams are derived.
func (o *Options) baseSeed() int64 {
	if o.Rand != nil {
		return o.Rand.Int63()
	}
	if o.Seed == 0 {
		return defaultRNGSeed
	}

	return o.Seed
}
