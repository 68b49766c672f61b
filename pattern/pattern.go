// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"strings"
)

// Pattern is an immutable bipolar vector. The zero value is an empty pattern
// and is rejected by every consumer with ErrEmptyPattern.
type Pattern struct {
	units []int8 // each entry is -1 or +1
}

// New builds a Pattern from bipolar {-1,+1} or binary {0,1} values.
// Binary inputs are normalized: 0 ⇒ -1, 1 ⇒ +1. A slice mixing 0 and -1 is
// ambiguous and rejected with ErrNotBipolar.
// The input is copied.
// Complexity: O(N).
func New(values []int) (Pattern, error) {
	if len(values) == 0 {
		return Pattern{}, ErrEmptyPattern
	}

	var sawZero, sawMinus bool
	units := make([]int8, len(values))
	for i, v := range values {
		switch v {
		case 1:
			units[i] = 1
		case -1:
			sawMinus = true
			units[i] = -1
		case 0:
			sawZero = true
			units[i] = -1
		default:
			return Pattern{}, fmt.Errorf("New: unit %d value %d: %w", i, v, ErrNotBipolar)
		}
	}
	if sawZero && sawMinus {
		return Pattern{}, fmt.Errorf("New: mixed binary and bipolar values: %w", ErrNotBipolar)
	}

	return Pattern{units: units}, nil
}

// FromUnits builds a Pattern from ±1 states, copying the input.
// Complexity: O(N).
func FromUnits(units []int8) (Pattern, error) {
	if len(units) == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	cp := make([]int8, len(units))
	for i, u := range units {
		if u != 1 && u != -1 {
			return Pattern{}, fmt.Errorf("FromUnits: unit %d value %d: %w", i, u, ErrNotBipolar)
		}
		cp[i] = u
	}

	return Pattern{units: cp}, nil
}

// MustNew is New for literals in tests and examples; it panics on error.
func MustNew(values ...int) Pattern {
	p, err := New(values)
	if err != nil {
		panic(err)
	}

	return p
}

// Len returns the number of units N.
func (p Pattern) Len() int {
	return len(p.units)
}

// At returns unit i.
func (p Pattern) At(i int) (int8, error) {
	if i < 0 || i >= len(p.units) {
		return 0, fmt.Errorf("At(%d): %w", i, ErrDimensionMismatch)
	}

	return p.units[i], nil
}

// Units returns a copy of the ±1 states.
func (p Pattern) Units() []int8 {
	cp := make([]int8, len(p.units))
	copy(cp, p.units)

	return cp
}

// Values returns the states as ints, the shape New accepts.
func (p Pattern) Values() []int {
	out := make([]int, len(p.units))
	for i, u := range p.units {
		out[i] = int(u)
	}

	return out
}

// Equal reports whether p and q have the same length and states.
func (p Pattern) Equal(q Pattern) bool {
	if len(p.units) != len(q.units) {
		return false
	}
	for i := range p.units {
		if p.units[i] != q.units[i] {
			return false
		}
	}

	return true
}

// Negate returns the sign-inverse -p. Every stored memory's inverse is a
// fixed point of the same network.
func (p Pattern) Negate() Pattern {
	out := make([]int8, len(p.units))
	for i, u := range p.units {
		out[i] = -u
	}

	return Pattern{units: out}
}

// Hamming returns the number of units where p and q differ.
// Complexity: O(N).
func (p Pattern) Hamming(q Pattern) (int, error) {
	if len(p.units) != len(q.units) {
		return 0, fmt.Errorf("Hamming: %d vs %d: %w", len(p.units), len(q.units), ErrDimensionMismatch)
	}
	d := 0
	for i := range p.units {
		if p.units[i] != q.units[i] {
			d++
		}
	}

	return d, nil
}

// String renders the pattern as '+'/'-' runes, e.g. "+-+-".
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(len(p.units))
	for _, u := range p.units {
		if u > 0 {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('-')
		}
	}

	return sb.String()
}
