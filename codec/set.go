// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hopnet/pattern"
)

// Format selects how patterns are drawn in a set file.
type Format int

const (
	// FormatGlyph draws each pattern as a grid of glyph runes.
	FormatGlyph Format = iota
	// FormatNumeric lists each pattern as whitespace-separated -1/+1 or 0/1 values.
	FormatNumeric
)

// String returns "glyph" or "numeric".
func (f Format) String() string {
	if f == FormatNumeric {
		return "numeric"
	}

	return "glyph"
}

// ParseFormat maps "glyph" (or "") and "numeric" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "glyph":
		return FormatGlyph, nil
	case "numeric":
		return FormatNumeric, nil
	default:
		return FormatGlyph, errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// Set is a parsed training or probe file.
type Set struct {
	Dimension int               // N
	Shape     pattern.Shape     // grid layout used to draw patterns
	Patterns  []pattern.Pattern // M patterns, each of length N
}

// ReadOptions configures ReadSet.
//
// Fields:
//   - Format — FormatGlyph (default) or FormatNumeric.
//   - Glyphs — On/Off runes for FormatGlyph; zero value ⇒ pattern.DefaultGlyphs().
//   - Shape  — optional explicit grid shape; zero value ⇒ √N×√N for perfect
//     squares, otherwise the width of the first glyph row (1×N for numeric).
type ReadOptions struct {
	Format Format
	Glyphs pattern.Glyphs
	Shape  pattern.Shape
}

// DefaultReadOptions returns glyph format with the default glyphs.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Format: FormatGlyph, Glyphs: pattern.DefaultGlyphs()}
}

func (o ReadOptions) glyphs() pattern.Glyphs {
	if o.Glyphs == (pattern.Glyphs{}) {
		return pattern.DefaultGlyphs()
	}

	return o.Glyphs
}

// ReadSet parses a training or probe file.
//
// Stage 1 (Header): dimension N > 0 and count M > 0.
// Stage 2 (Patterns): M patterns separated by blank lines.
// Stage 3 (Finalize): content after the M-th pattern is ignored.
//
// Errors:
//   - ErrMalformedRecord   — unparsable header, bad glyph/value, too few patterns.
//   - ErrEmptyInput        — M == 0.
//   - ErrDimensionMismatch — a shape that does not cover N, or a row count
//     that does not divide N.
func ReadSet(r io.Reader, opts ReadOptions) (*Set, error) {
	lr := newLineReader(r)

	n, err := lr.headerInt("dimension")
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, lr.malformed("dimension %d must be positive", n)
	}
	m, err := lr.headerInt("pattern count")
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, lr.malformed("pattern count %d must not be negative", m)
	}
	if m == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "codec: ReadSet")
	}

	set := &Set{Dimension: n, Shape: opts.Shape, Patterns: make([]pattern.Pattern, 0, m)}
	if set.Shape != (pattern.Shape{}) && set.Shape.Size() != n {
		return nil, errors.Wrapf(ErrDimensionMismatch, "codec: shape %dx%d for dimension %d",
			set.Shape.Rows, set.Shape.Cols, n)
	}

	var p pattern.Pattern
	for k := 0; k < m; k++ {
		switch opts.Format {
		case FormatNumeric:
			p, err = readNumeric(lr, n)
		case FormatGlyph:
			p, err = readGlyph(lr, set, opts.glyphs())
		default:
			return nil, errors.Errorf("codec: unknown format %d", opts.Format)
		}
		if err == io.EOF {
			return nil, lr.unexpectedEOF(fmt.Sprintf("pattern %d of %d", k+1, m))
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "pattern %d", k+1)
		}
		set.Patterns = append(set.Patterns, p)
	}

	if set.Shape == (pattern.Shape{}) {
		// Only reachable for numeric sets; SquareShape cannot fail for n > 0.
		set.Shape, _ = pattern.SquareShape(n)
	}

	return set, nil
}

// readNumeric collects n whitespace-separated values across as many lines as needed.
func readNumeric(lr *lineReader, n int) (pattern.Pattern, error) {
	s, err := lr.nextNonBlank(isBlank)
	if err != nil {
		return pattern.Pattern{}, err
	}

	values := make([]int, 0, n)
	for {
		for _, f := range strings.Fields(s) {
			if len(values) == n {
				return pattern.Pattern{}, lr.malformed("more than %d values", n)
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return pattern.Pattern{}, lr.malformed("%q is not an integer", f)
			}
			values = append(values, v)
		}
		if len(values) == n {
			break
		}
		if s, err = lr.next(); err != nil {
			return pattern.Pattern{}, err
		}
		if isBlank(s) {
			return pattern.Pattern{}, lr.malformed("pattern has %d values, want %d", len(values), n)
		}
	}

	p, err := pattern.New(values)
	if err != nil {
		return pattern.Pattern{}, errors.Wrapf(ErrMalformedRecord, "line %d: %v", lr.line, err)
	}

	return p, nil
}

// readGlyph reads one grid. The first grid fixes set.Shape when it was not given.
// Rows shorter than the grid width are padded with the Off glyph, so editors
// that strip trailing spaces do not corrupt space-drawn files.
func readGlyph(lr *lineReader, set *Set, g pattern.Glyphs) (pattern.Pattern, error) {
	blank := func(s string) bool {
		if s == "" {
			return true
		}
		// A space-only line is an all-Off row when Off is whitespace.
		return !unicode.IsSpace(g.Off) && isBlank(s)
	}
	first, err := lr.nextNonBlank(blank)
	if err != nil {
		return pattern.Pattern{}, err
	}

	if set.Shape == (pattern.Shape{}) {
		if set.Shape, err = inferShape(set.Dimension, first); err != nil {
			return pattern.Pattern{}, errors.WithMessagef(err, "line %d", lr.line)
		}
	}

	rows := make([]string, 0, set.Shape.Rows)
	line := first
	for y := 0; y < set.Shape.Rows; y++ {
		if y > 0 {
			if line, err = lr.next(); err != nil {
				return pattern.Pattern{}, err
			}
		}
		width := len([]rune(line))
		if width > set.Shape.Cols {
			return pattern.Pattern{}, lr.malformed("row has %d cells, want %d", width, set.Shape.Cols)
		}
		if width < set.Shape.Cols {
			line += strings.Repeat(string(g.Off), set.Shape.Cols-width)
		}
		rows = append(rows, line)
	}

	p, _, err := pattern.FromGrid(rows, g)
	if err != nil {
		return pattern.Pattern{}, errors.Wrapf(ErrMalformedRecord, "line %d: %v", lr.line, err)
	}

	return p, nil
}

// inferShape picks √N×√N for perfect squares, else width = len(first row).
func inferShape(n int, first string) (pattern.Shape, error) {
	if sq, _ := pattern.SquareShape(n); sq.Rows == sq.Cols {
		return sq, nil
	}
	w := len([]rune(first))
	if w == 0 || n%w != 0 {
		return pattern.Shape{}, errors.Wrapf(ErrDimensionMismatch,
			"codec: row width %d does not divide dimension %d", w, n)
	}

	return pattern.Shape{Rows: n / w, Cols: w}, nil
}

// WriteSet writes set in glyph format, in the same framing ReadSet accepts.
func WriteSet(w io.Writer, set *Set, g pattern.Glyphs) error {
	if set == nil || len(set.Patterns) == 0 {
		return errors.Wrap(ErrEmptyInput, "codec: WriteSet")
	}
	shape := set.Shape
	if shape == (pattern.Shape{}) {
		var err error
		if shape, err = pattern.SquareShape(set.Dimension); err != nil {
			return errors.Wrap(err, "codec: WriteSet")
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d (dimension of the image vectors)\n", set.Dimension)
	fmt.Fprintf(bw, "%d (number of the image vectors)\n\n", len(set.Patterns))
	for i, p := range set.Patterns {
		rows, err := p.Grid(shape, g)
		if err != nil {
			return errors.Wrapf(err, "codec: WriteSet: pattern %d", i+1)
		}
		for _, row := range rows {
			bw.WriteString(row)
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "codec: WriteSet")
}
