// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default glyphs, matching the generated training files: a filled cell is
// 'O', an empty cell is a space.
const (
	DefaultOn  = 'O'
	DefaultOff = ' '
)

// Glyphs maps runes to unit states when a pattern is drawn as a grid.
type Glyphs struct {
	On  rune // +1
	Off rune // -1
}

// DefaultGlyphs returns Glyphs{On: 'O', Off: ' '}.
func DefaultGlyphs() Glyphs {
	return Glyphs{On: DefaultOn, Off: DefaultOff}
}

// Validate rejects glyph pairs that cannot distinguish the two states.
func (g Glyphs) Validate() error {
	if g.On == g.Off {
		return ErrBadGlyphs
	}

	return nil
}

// Shape is the rows × cols layout of a pattern drawn as a grid.
type Shape struct {
	Rows, Cols int
}

// Size returns Rows*Cols, the pattern dimension N.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// ParseShape parses "RxC" (for example "10x10"). Returns ErrBadShape for
// anything else or for non-positive sides.
func ParseShape(s string) (Shape, error) {
	r, c, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Shape{}, fmt.Errorf("ParseShape(%q): %w", s, ErrBadShape)
	}
	rows, err1 := strconv.Atoi(r)
	cols, err2 := strconv.Atoi(c)
	if err1 != nil || err2 != nil || rows <= 0 || cols <= 0 {
		return Shape{}, fmt.Errorf("ParseShape(%q): %w", s, ErrBadShape)
	}

	return Shape{Rows: rows, Cols: cols}, nil
}

// String renders the shape as "RxC".
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// SquareShape returns the √n×√n shape when n is a perfect square and 1×n
// otherwise. Returns ErrBadShape for n <= 0.
// Complexity: O(1).
func SquareShape(n int) (Shape, error) {
	if n <= 0 {
		return Shape{}, ErrBadShape
	}
	side := int(math.Sqrt(float64(n)))
	// Correct float rounding on either side of the true root.
	for side*side > n {
		side--
	}
	for (side+1)*(side+1) <= n {
		side++
	}
	if side*side == n {
		return Shape{Rows: side, Cols: side}, nil
	}

	return Shape{Rows: 1, Cols: n}, nil
}

// FromGrid builds a Pattern from a non-empty, rectangular grid of glyphs,
// read row by row. It returns the pattern and the grid shape.
// Returns ErrEmptyGrid if the grid has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrUnknownGlyph for a rune
// that is neither g.On nor g.Off.
// Complexity: O(W×H).
func FromGrid(rows []string, g Glyphs) (Pattern, Shape, error) {
	if err := g.Validate(); err != nil {
		return Pattern{}, Shape{}, err
	}
	if len(rows) == 0 {
		return Pattern{}, Shape{}, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	if w == 0 {
		return Pattern{}, Shape{}, ErrEmptyGrid
	}

	units := make([]int8, 0, w*len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return Pattern{}, Shape{}, fmt.Errorf("FromGrid: row %d has %d cells, want %d: %w",
				y, len(runes), w, ErrNonRectangular)
		}
		for x, r := range runes {
			switch r {
			case g.On:
				units = append(units, 1)
			case g.Off:
				units = append(units, -1)
			default:
				return Pattern{}, Shape{}, fmt.Errorf("FromGrid: cell (%d,%d) %q: %w", x, y, r, ErrUnknownGlyph)
			}
		}
	}

	return Pattern{units: units}, Shape{Rows: len(rows), Cols: w}, nil
}

// Grid draws p as shape.Rows strings of shape.Cols glyphs each.
// Returns ErrBadShape for a non-positive shape and ErrDimensionMismatch when
// shape.Size() != p.Len().
// Complexity: O(N).
func (p Pattern) Grid(shape Shape, g Glyphs) ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if shape.Rows <= 0 || shape.Cols <= 0 {
		return nil, ErrBadShape
	}
	if shape.Size() != len(p.units) {
		return nil, fmt.Errorf("Grid: shape %dx%d for %d units: %w",
			shape.Rows, shape.Cols, len(p.units), ErrDimensionMismatch)
	}

	out := make([]string, shape.Rows)
	row := make([]rune, shape.Cols)
	var y, x int
	for y = 0; y < shape.Rows; y++ {
		for x = 0; x < shape.Cols; x++ {
			if p.units[y*shape.Cols+x] > 0 {
				row[x] = g.On
			} else {
				row[x] = g.Off
			}
		}
		out[y] = string(row)
	}

	return out, nil
}
