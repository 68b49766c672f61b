package hebbian_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hopnet/hebbian"
	"github.com/katalvlaran/hopnet/matrix"
	"github.com/katalvlaran/hopnet/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomPatterns returns m deterministic random bipolar patterns of length n.
func randomPatterns(t *testing.T, rng *rand.Rand, m, n int) []pattern.Pattern {
	t.Helper()
	out := make([]pattern.Pattern, m)
	for k := 0; k < m; k++ {
		v := make([]int, n)
		for i := range v {
			v[i] = rng.Intn(2)*2 - 1
		}
		p, err := pattern.New(v)
		require.NoError(t, err)
		out[k] = p
	}
	return out
}

// TestTrain_FourUnitScenario checks the hand-computed 4-unit weight matrix.
func TestTrain_FourUnitScenario(t *testing.T) {
	w, err := hebbian.Train[int64]([]pattern.Pattern{pattern.MustNew(1, -1, 1, -1)})
	require.NoError(t, err)

	want, err := matrix.FromRows([][]int64{
		{0, -1, 1, -1},
		{-1, 0, -1, 1},
		{1, -1, 0, -1},
		{-1, 1, -1, 0},
	})
	require.NoError(t, err)
	assert.True(t, want.Equal(w), "got:\n%s", w)
}

// TestTrain_Errors covers empty input and dimension disagreement.
func TestTrain_Errors(t *testing.T) {
	_, err := hebbian.Train[int64](nil)
	require.ErrorIs(t, err, hebbian.ErrEmptyInput)

	_, err = hebbian.Train[int32]([]pattern.Pattern{
		pattern.MustNew(1, -1, 1),
		pattern.MustNew(1, -1),
	})
	require.ErrorIs(t, err, hebbian.ErrDimensionMismatch)
}

// TestTrain_SymmetricZeroDiagonal verifies the structural invariants on random sets.
func TestTrain_SymmetricZeroDiagonal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(16)
		m := 1 + rng.Intn(6)
		ps := randomPatterns(t, rng, m, n)

		w, err := hebbian.Train[int64](ps)
		require.NoError(t, err)
		require.NoError(t, matrix.ValidateHopfield(w), "trial %d", trial)
	}
}

// TestTrain_OrderInvariant shuffles the training set and expects identical weights.
func TestTrain_OrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ps := randomPatterns(t, rng, 5, 12)

	base, err := hebbian.Train[int64](ps)
	require.NoError(t, err)

	for trial := 0; trial < 10; trial++ {
		shuffled := append([]pattern.Pattern(nil), ps...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		w, err := hebbian.Train[int64](shuffled)
		require.NoError(t, err)
		require.True(t, base.Equal(w), "trial %d", trial)
	}
}

// TestTrain_ElementTypesAgree trains the same set as int32, int64 and float64.
func TestTrain_ElementTypesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ps := randomPatterns(t, rng, 4, 9)

	wi, err := hebbian.Train[int64](ps)
	require.NoError(t, err)
	w32, err := hebbian.Train[int32](ps)
	require.NoError(t, err)
	wf, err := hebbian.Train[float64](ps)
	require.NoError(t, err)

	as32, err := matrix.Convert[int64](w32)
	require.NoError(t, err)
	asF, err := matrix.Convert[int64](wf)
	require.NoError(t, err)
	assert.True(t, wi.Equal(as32))
	assert.True(t, wi.Equal(asF))
}

// TestAccumulator_MatchesTrain streams patterns one by one.
func TestAccumulator_MatchesTrain(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ps := randomPatterns(t, rng, 3, 6)

	acc, err := hebbian.NewAccumulator[int64](6)
	require.NoError(t, err)
	assert.Equal(t, 6, acc.Dimension())

	_, err = acc.Weights()
	require.ErrorIs(t, err, hebbian.ErrEmptyInput)

	for _, p := range ps {
		require.NoError(t, acc.Add(p))
	}
	assert.Equal(t, int64(3), acc.Count())
	require.ErrorIs(t, acc.Add(pattern.MustNew(1, 1)), hebbian.ErrDimensionMismatch)

	got, err := acc.Weights()
	require.NoError(t, err)
	want, err := hebbian.Train[int64](ps)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	// Weights returns a copy.
	require.NoError(t, got.Set(0, 1, 100))
	again, err := acc.Weights()
	require.NoError(t, err)
	assert.True(t, want.Equal(again))

	_, err = hebbian.NewAccumulator[int64](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
