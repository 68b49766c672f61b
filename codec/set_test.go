package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/hopnet/codec"
	"github.com/katalvlaran/hopnet/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// glyphSet is a 9-unit, 2-pattern training file in the generator's framing.
const glyphSet = `9 (dimension of the image vectors)
2 (number of the image vectors)

O O
 O 
O O

OOO
   
OOO

`

// TestReadSet_Glyph parses the glyph framing with header comments.
func TestReadSet_Glyph(t *testing.T) {
	set, err := codec.ReadSet(strings.NewReader(glyphSet), codec.DefaultReadOptions())
	require.NoError(t, err)

	assert.Equal(t, 9, set.Dimension)
	assert.Equal(t, pattern.Shape{Rows: 3, Cols: 3}, set.Shape)
	require.Len(t, set.Patterns, 2)
	assert.Equal(t, []int{1, -1, 1, -1, 1, -1, 1, -1, 1}, set.Patterns[0].Values())
	assert.Equal(t, []int{1, 1, 1, -1, -1, -1, 1, 1, 1}, set.Patterns[1].Values())
}

// TestReadSet_TrimmedTrailingSpaces pads short rows with the Off glyph.
func TestReadSet_TrimmedTrailingSpaces(t *testing.T) {
	in := "4\n1\n\nO\n O\n"
	set, err := codec.ReadSet(strings.NewReader(in), codec.DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{1, -1, -1, 1}, set.Patterns[0].Values())
}

// TestReadSet_CustomGlyphsAndShape reads '#'/'.' grids of a non-square dimension.
func TestReadSet_CustomGlyphsAndShape(t *testing.T) {
	in := "6\n2\n\n#.#\n.#.\n\n...\n###\n"
	opts := codec.ReadOptions{Glyphs: pattern.Glyphs{On: '#', Off: '.'}}

	set, err := codec.ReadSet(strings.NewReader(in), opts)
	require.NoError(t, err)
	assert.Equal(t, pattern.Shape{Rows: 2, Cols: 3}, set.Shape)
	assert.Equal(t, []int{-1, -1, -1, 1, 1, 1}, set.Patterns[1].Values())

	opts.Shape = pattern.Shape{Rows: 2, Cols: 2}
	_, err = codec.ReadSet(strings.NewReader(in), opts)
	require.ErrorIs(t, err, codec.ErrDimensionMismatch)
}

// TestReadSet_Numeric accepts bipolar and binary rows broken across lines.
func TestReadSet_Numeric(t *testing.T) {
	in := "4\n2\n\n1 -1\n1 -1\n\n0 1 1 0\n"
	set, err := codec.ReadSet(strings.NewReader(in), codec.ReadOptions{Format: codec.FormatNumeric})
	require.NoError(t, err)
	assert.Equal(t, pattern.Shape{Rows: 2, Cols: 2}, set.Shape)
	assert.Equal(t, []int{1, -1, 1, -1}, set.Patterns[0].Values())
	assert.Equal(t, []int{-1, 1, 1, -1}, set.Patterns[1].Values())
}

// TestReadSet_Errors covers the malformed, empty and mismatch cases.
func TestReadSet_Errors(t *testing.T) {
	numeric := codec.ReadOptions{Format: codec.FormatNumeric}
	tests := []struct {
		name    string
		in      string
		opts    codec.ReadOptions
		wantErr error
	}{
		{"empty file", "", codec.DefaultReadOptions(), codec.ErrMalformedRecord},
		{"bad dimension", "x\n1\n", codec.DefaultReadOptions(), codec.ErrMalformedRecord},
		{"zero dimension", "0\n1\n", codec.DefaultReadOptions(), codec.ErrMalformedRecord},
		{"zero patterns", "4\n0\n", codec.DefaultReadOptions(), codec.ErrEmptyInput},
		{"missing pattern", "4\n2\n\nOO\nOO\n", codec.DefaultReadOptions(), codec.ErrMalformedRecord},
		{"unknown glyph", "4\n1\n\nOX\nOO\n", codec.DefaultReadOptions(), codec.ErrMalformedRecord},
		{"row too long", "4\n1\n\nOOO\nOO\n", codec.DefaultReadOptions(), codec.ErrMalformedRecord},
		{"width does not divide", "6\n1\n\nOOOO\n", codec.DefaultReadOptions(), codec.ErrDimensionMismatch},
		{"numeric not int", "2\n1\n\n1 x\n", numeric, codec.ErrMalformedRecord},
		{"numeric too many", "2\n1\n\n1 -1 1\n", numeric, codec.ErrMalformedRecord},
		{"numeric too few", "3\n2\n\n1 -1\n\n1 1 1\n", numeric, codec.ErrMalformedRecord},
		{"numeric not bipolar", "2\n1\n\n1 2\n", numeric, codec.ErrMalformedRecord},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.ReadSet(strings.NewReader(tc.in), tc.opts)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestWriteSet_RoundTrip writes a set and reads it back unchanged.
func TestWriteSet_RoundTrip(t *testing.T) {
	set, err := codec.ReadSet(strings.NewReader(glyphSet), codec.DefaultReadOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.WriteSet(&buf, set, pattern.DefaultGlyphs()))
	assert.Equal(t, glyphSet, buf.String())

	back, err := codec.ReadSet(&buf, codec.DefaultReadOptions())
	require.NoError(t, err)
	require.Len(t, back.Patterns, 2)
	for i := range set.Patterns {
		assert.True(t, set.Patterns[i].Equal(back.Patterns[i]))
	}

	require.ErrorIs(t, codec.WriteSet(&buf, &codec.Set{}, pattern.DefaultGlyphs()), codec.ErrEmptyInput)
}

// TestParseFormat maps names onto formats.
func TestParseFormat(t *testing.T) {
	f, err := codec.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, codec.FormatGlyph, f)

	f, err = codec.ParseFormat("Numeric")
	require.NoError(t, err)
	assert.Equal(t, codec.FormatNumeric, f)
	assert.Equal(t, "numeric", f.String())

	_, err = codec.ParseFormat("csv")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
}
