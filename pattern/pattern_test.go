package pattern_test

import (
	"testing"

	"github.com/katalvlaran/hopnet/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Normalization covers bipolar, binary, mixed and invalid inputs.
func TestNew_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      []int
		want    []int
		wantErr error
	}{
		{"bipolar", []int{1, -1, 1, -1}, []int{1, -1, 1, -1}, nil},
		{"binary", []int{1, 0, 0, 1}, []int{1, -1, -1, 1}, nil},
		{"all ones", []int{1, 1}, []int{1, 1}, nil},
		{"mixed encodings", []int{1, 0, -1}, nil, pattern.ErrNotBipolar},
		{"out of range", []int{1, 2}, nil, pattern.ErrNotBipolar},
		{"empty", nil, nil, pattern.ErrEmptyPattern},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p, err := pattern.New(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Values())
		})
	}
}

// TestPattern_Immutable verifies that New copies its input and Units returns a copy.
func TestPattern_Immutable(t *testing.T) {
	in := []int{1, -1, 1}
	p, err := pattern.New(in)
	require.NoError(t, err)

	in[0] = -1
	u := p.Units()
	u[1] = 1

	assert.Equal(t, []int{1, -1, 1}, p.Values())
}

// TestFromUnits rejects anything but ±1.
func TestFromUnits(t *testing.T) {
	_, err := pattern.FromUnits([]int8{1, 0})
	require.ErrorIs(t, err, pattern.ErrNotBipolar)

	_, err = pattern.FromUnits(nil)
	require.ErrorIs(t, err, pattern.ErrEmptyPattern)

	p, err := pattern.FromUnits([]int8{-1, 1})
	require.NoError(t, err)
	assert.Equal(t, "-+", p.String())
}

// TestNegateAndHamming checks the sign-inverse and distance helpers.
func TestNegateAndHamming(t *testing.T) {
	p := pattern.MustNew(1, -1, 1, -1)
	q := p.Negate()

	assert.Equal(t, []int{-1, 1, -1, 1}, q.Values())
	assert.True(t, q.Negate().Equal(p))

	d, err := p.Hamming(q)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	_, err = p.Hamming(pattern.MustNew(1, 1))
	require.ErrorIs(t, err, pattern.ErrDimensionMismatch)

	u, err := p.At(1)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), u)
	_, err = p.At(4)
	require.ErrorIs(t, err, pattern.ErrDimensionMismatch)
}

// TestValidateSet covers empty sets, ragged sets and a consistent set.
func TestValidateSet(t *testing.T) {
	_, err := pattern.ValidateSet(nil)
	require.ErrorIs(t, err, pattern.ErrEmptyInput)

	_, err = pattern.ValidateSet([]pattern.Pattern{{}})
	require.ErrorIs(t, err, pattern.ErrEmptyPattern)

	_, err = pattern.ValidateSet([]pattern.Pattern{
		pattern.MustNew(1, -1),
		pattern.MustNew(1, -1, 1),
	})
	require.ErrorIs(t, err, pattern.ErrDimensionMismatch)

	n, err := pattern.ValidateSet([]pattern.Pattern{
		pattern.MustNew(1, -1, 1),
		pattern.MustNew(-1, -1, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// TestMatch finds direct and inverted memories.
func TestMatch(t *testing.T) {
	stored := []pattern.Pattern{
		pattern.MustNew(1, 1, -1, -1),
		pattern.MustNew(1, -1, 1, -1),
	}

	i, inv, ok := pattern.Match(stored, pattern.MustNew(1, -1, 1, -1))
	assert.True(t, ok)
	assert.False(t, inv)
	assert.Equal(t, 1, i)

	i, inv, ok = pattern.Match(stored, pattern.MustNew(-1, -1, 1, 1))
	assert.True(t, ok)
	assert.True(t, inv)
	assert.Equal(t, 0, i)

	i, _, ok = pattern.Match(stored, pattern.MustNew(1, 1, 1, 1))
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}
