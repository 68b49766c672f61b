// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hopnet/matrix"
)

// WriteWeights writes m as "N", a blank line, then N rows of N values.
// Only square matrices are accepted.
// Complexity: O(N²).
func WriteWeights[T matrix.Number](w io.Writer, m *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return errors.Wrap(err, "codec: WriteWeights")
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return errors.Wrap(err, "codec: WriteWeights")
	}

	n := m.Rows()
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(n))
	bw.WriteString("\n\n")
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return errors.Wrap(err, "codec: WriteWeights")
		}
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(matrix.FormatElem(v))
		}
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "codec: WriteWeights")
}

// ReadWeights parses a weights file written by WriteWeights (trailing spaces
// on rows, as older tools emit, are tolerated) and checks that the result is
// a valid Hopfield matrix.
//
// Errors:
//   - ErrMalformedRecord — bad header, unparsable value, wrong value count, short file.
//   - matrix.ErrAsymmetry / matrix.ErrNonZeroDiagonal — structurally invalid weights.
func ReadWeights[T matrix.Number](r io.Reader) (*matrix.Dense[T], error) {
	lr := newLineReader(r)

	n, err := lr.headerInt("dimension")
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, lr.malformed("dimension %d must be positive", n)
	}

	m, err := matrix.NewSquare[T](n)
	if err != nil {
		return nil, errors.Wrap(err, "codec: ReadWeights")
	}
	for i := 0; i < n; i++ {
		s, err := lr.nextNonBlank(isBlank)
		if err == io.EOF {
			return nil, lr.unexpectedEOF("weight rows")
		}
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(s)
		if len(fields) != n {
			return nil, lr.malformed("row %d has %d values, want %d", i, len(fields), n)
		}
		for j, f := range fields {
			v, err := parseElem[T](f)
			if err != nil {
				return nil, lr.malformed("row %d col %d: %q: %v", i, j, f, err)
			}
			_ = m.Set(i, j, v) // in range by construction
		}
	}

	if err = matrix.ValidateHopfield(m); err != nil {
		return nil, errors.Wrap(err, "codec: ReadWeights")
	}

	return m, nil
}

// parseElem parses one matrix element of type T.
func parseElem[T matrix.Number](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int32:
		v, err := strconv.ParseInt(s, 10, 32)
		return T(v), err
	case int64:
		v, err := strconv.ParseInt(s, 10, 64)
		return T(v), err
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = errors.New("weight must be finite")
		}
		return T(v), err
	}
}
