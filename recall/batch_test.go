package recall_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hopnet/hebbian"
	"github.com/katalvlaran/hopnet/pattern"
	"github.com/katalvlaran/hopnet/recall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecallBatch_WorkerCountInvariant: per-probe streams make results independent of scheduling.
func TestRecallBatch_WorkerCountInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	const n = 49
	ps := []pattern.Pattern{randomPattern(rng, n), randomPattern(rng, n), randomPattern(rng, n)}
	w, err := hebbian.Train[int64](ps)
	require.NoError(t, err)

	probes := make([]pattern.Pattern, 32)
	for i := range probes {
		probes[i] = randomPattern(rng, n)
	}
	opts := recall.Options{Seed: 8}

	serial, err := recall.RecallBatch(context.Background(), w, probes, opts, 1)
	require.NoError(t, err)
	parallel, err := recall.RecallBatch(context.Background(), w, probes, opts, 8)
	require.NoError(t, err)

	require.Len(t, serial, len(probes))
	require.Len(t, parallel, len(probes))
	for i := range probes {
		require.NoError(t, serial[i].Err)
		require.NoError(t, parallel[i].Err)
		assert.Equal(t, i, serial[i].Index)
		assert.Equal(t, i, parallel[i].Index)
		assert.Equal(t, serial[i].Result.Epochs, parallel[i].Result.Epochs, "probe %d", i)
		assert.True(t, serial[i].Result.Pattern.Equal(parallel[i].Result.Pattern), "probe %d", i)
	}
}

// TestRecallBatch_PerProbeErrors keeps going past a malformed probe.
func TestRecallBatch_PerProbeErrors(t *testing.T) {
	w := trainOne(t, stored)
	probes := []pattern.Pattern{
		stored,
		pattern.MustNew(1, 1),
		stored.Negate(),
	}

	out, err := recall.RecallBatch(context.Background(), w, probes, recall.DefaultOptions(), 0)
	require.NoError(t, err)
	require.Len(t, out, 3)

	require.NoError(t, out[0].Err)
	assert.True(t, out[0].Result.Pattern.Equal(stored))
	require.ErrorIs(t, out[1].Err, recall.ErrDimensionMismatch)
	require.NoError(t, out[2].Err)
	assert.True(t, out[2].Result.Pattern.Equal(stored.Negate()))
}

// TestRecallBatch_Cancelled returns the context error and marks unstarted probes.
func TestRecallBatch_Cancelled(t *testing.T) {
	w := trainOne(t, stored)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := recall.RecallBatch(ctx, w, []pattern.Pattern{stored, stored}, recall.DefaultOptions(), 2)
	require.ErrorIs(t, err, context.Canceled)
	for _, r := range out {
		require.ErrorIs(t, r.Err, context.Canceled)
	}
}

// TestRecallBatch_InvalidInputs rejects bad options and weights up front.
func TestRecallBatch_InvalidInputs(t *testing.T) {
	w := trainOne(t, stored)

	_, err := recall.RecallBatch(context.Background(), w, nil, recall.Options{MaxEpochs: -3}, 1)
	require.ErrorIs(t, err, recall.ErrBadOptions)

	out, err := recall.RecallBatch(context.Background(), w, nil, recall.DefaultOptions(), 1)
	require.NoError(t, err)
	assert.Empty(t, out)
}
