// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/hopnet/pattern"
)

// enumerateBits caps the length for which Unique enumerates the whole space
// instead of rejection sampling.
const enumerateBits = 20

// Unique returns count pairwise distinct random patterns of length n.
//
// Dense requests on short patterns (more than half of the 2ⁿ space) are served
// by shuffling the enumerated space; everything else is rejection sampled.
//
// Errors: ErrEmptyPattern (n <= 0), ErrTooManyUnique (count > 2ⁿ), ErrNilRand.
func Unique(n, count int, rng *rand.Rand) ([]pattern.Pattern, error) {
	if n <= 0 {
		return nil, fmt.Errorf("noise: Unique: n=%d: %w", n, ErrEmptyPattern)
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if count <= 0 {
		return nil, nil
	}
	if n < 63 && uint64(count) > uint64(1)<<uint(n) {
		return nil, fmt.Errorf("noise: Unique: %d patterns of length %d: %w", count, n, ErrTooManyUnique)
	}

	if n <= enumerateBits && count*2 > 1<<uint(n) {
		return enumerate(n, count, rng), nil
	}

	var (
		out  = make([]pattern.Pattern, 0, count)
		seen = make(map[string]struct{}, count)
	)
	for len(out) < count {
		p := random(n, rng)
		key := p.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	return out, nil
}

// enumerate draws count codes from [0, 2ⁿ) with a partial Fisher–Yates.
func enumerate(n, count int, rng *rand.Rand) []pattern.Pattern {
	codes := make([]uint32, 1<<uint(n))
	for i := range codes {
		codes[i] = uint32(i)
	}
	var (
		out = make([]pattern.Pattern, count)
		i   int
	)
	for i = 0; i < count; i++ {
		j := i + rng.Intn(len(codes)-i)
		codes[i], codes[j] = codes[j], codes[i]
		out[i] = fromCode(codes[i], n)
	}

	return out
}

// fromCode maps bit k of code to unit k: set ⇒ +1.
func fromCode(code uint32, n int) pattern.Pattern {
	units := make([]int8, n)
	for k := range units {
		if code&(1<<uint(k)) != 0 {
			units[k] = 1
		} else {
			units[k] = -1
		}
	}
	p, _ := pattern.FromUnits(units)

	return p
}

func random(n int, rng *rand.Rand) pattern.Pattern {
	units := make([]int8, n)
	for k := range units {
		if rng.Intn(2) == 1 {
			units[k] = 1
		} else {
			units[k] = -1
		}
	}
	p, _ := pattern.FromUnits(units)

	return p
}

// Corrupt returns a copy of p with ⌊N·fraction⌋ distinct units flipped.
// Complexity: O(N).
func Corrupt(p pattern.Pattern, fraction float64, rng *rand.Rand) (pattern.Pattern, error) {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return pattern.Pattern{}, fmt.Errorf("noise: Corrupt: %v: %w", fraction, ErrBadFraction)
	}
	if rng == nil {
		return pattern.Pattern{}, ErrNilRand
	}
	n := p.Len()
	if n == 0 {
		return pattern.Pattern{}, fmt.Errorf("noise: Corrupt: %w", ErrEmptyPattern)
	}

	units := p.Units()
	k := int(math.Floor(float64(n) * fraction))
	for _, idx := range rng.Perm(n)[:k] {
		units[idx] = -units[idx]
	}

	return pattern.FromUnits(units)
}

// Probes corrupts every pattern in set at each fraction, returning one probe
// set per fraction in the same order.
func Probes(set []pattern.Pattern, fractions []float64, rng *rand.Rand) ([][]pattern.Pattern, error) {
	out := make([][]pattern.Pattern, len(fractions))
	for f, frac := range fractions {
		out[f] = make([]pattern.Pattern, len(set))
		for i, p := range set {
			q, err := Corrupt(p, frac, rng)
			if err != nil {
				return nil, fmt.Errorf("noise: Probes: pattern %d: %w", i, err)
			}
			out[f][i] = q
		}
	}

	return out, nil
}
