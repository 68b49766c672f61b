// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Add return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Add: O(1); Clone: O(r*c); ColumnDot: O(r).
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxAdd       = "Add"
	ctxRow       = "Row"
	ctxColumnDot = "ColumnDot"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int64])(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix, the shape of every Hopfield weight matrix.
// Complexity: O(n²).
func NewSquare[T Number](n int) (*Dense[T], error) {
	return NewDense[T](n, n)
}

// FromRows builds a Dense from a rectangular [][]T, deep-copying the input.
// Returns ErrInvalidDimensions for an empty input and ErrRagged when row
// lengths differ.
// Complexity: O(r*c).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense[T](r, c)
	if err != nil {
		return nil, err
	}

	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrRagged)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// tagged with the calling method.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add increments the element at (row, col) by v.
// Complexity: O(1).
func (m *Dense[T]) Add(row, col int, v T) error {
	idx, err := m.indexOf(ctxAdd, row, col)
	if err != nil {
		return err
	}
	m.data[idx] += v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ColumnDot returns Σ_i signs[i]*m[i][col], the net input a column unit
// receives from a vector of ±1 states.
// Returns ErrDimensionMismatch when len(signs) != Rows() and ErrOutOfRange
// for a bad column.
// Complexity: O(r).
func (m *Dense[T]) ColumnDot(col int, signs []int8) (T, error) {
	if col < 0 || col >= m.c {
		return 0, denseErrorf(ctxColumnDot, 0, col, ErrOutOfRange)
	}
	if len(signs) != m.r {
		return 0, denseErrorf(ctxColumnDot, len(signs), col, ErrDimensionMismatch)
	}

	var (
		sum T
		i   int
		idx = col
	)
	for i = 0; i < m.r; i++ {
		// signs are ±1 (or 0 for "absent"), so a branch beats a multiply.
		switch signs[i] {
		case 1:
			sum += m.data[idx]
		case -1:
			sum -= m.data[idx]
		}
		idx += m.c
	}

	return sum, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and identical elements.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			sb.WriteString(FormatElem(m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// FormatElem renders a single element: integers in base 10, floats with the
// shortest representation that round-trips.
func FormatElem[T Number](v T) string {
	switch x := any(v).(type) {
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		// ~int32/~int64/~float64 named types.
		return fmt.Sprint(v)
	}
}

// Convert copies m into a new matrix with element type U.
// Converting float weights to an integer type truncates toward zero.
// Complexity: O(r*c).
func Convert[U, T Number](m *Dense[T]) (*Dense[U], error) {
	if m == nil {
		return nil, fmt.Errorf("Convert: %w", ErrNilMatrix)
	}
	out := &Dense[U]{r: m.r, c: m.c, data: make([]U, len(m.data))}
	for i, v := range m.data {
		out.data[i] = U(v)
	}

	return out, nil
}
