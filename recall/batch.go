// SPDX-License-Identifier: MIT

package recall

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/hopnet/matrix"
	"github.com/katalvlaran/hopnet/pattern"
)

// BatchResult is the outcome for probe Index of a RecallBatch call.
// Err carries per-probe failures (ErrDimensionMismatch, ErrNonConvergence);
// they do not abort the rest of the batch.
type BatchResult struct {
	Index  int
	Result Result
	Err    error
}

// RecallBatch relaxes every probe independently on the shared, read-only
// network w, using up to workers goroutines (workers <= 0 ⇒ GOMAXPROCS).
//
// Each probe i draws its visitation order from a stream derived from the base
// seed and i, so the results are identical for any worker count.
//
// Returns an error only for invalid options or weights, or when ctx is done;
// in the latter case probes that never started have Err == ctx.Err().
// Complexity: O(P·E·N²) work spread across workers.
func RecallBatch[T matrix.Number](
	ctx context.Context,
	w *matrix.Dense[T],
	probes []pattern.Pattern,
	opts Options,
	workers int,
) ([]BatchResult, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("recall: %w", err)
	}
	if err := matrix.ValidateHopfield(w); err != nil {
		return nil, fmt.Errorf("recall: weights: %w", err)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		base = opts.baseSeed()
		out  = make([]BatchResult, len(probes))
		p    = pool.New().WithContext(ctx).WithMaxGoroutines(workers)
	)
	for i, probe := range probes {
		i, probe := i, probe
		p.Go(func(ctx context.Context) error {
			out[i].Index = i
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return err
			}
			if err := checkProbe(w, probe); err != nil {
				out[i].Err = fmt.Errorf("probe %d: %w", i, err)
				return nil
			}
			res, err := relax(w, probe, opts, rngFromSeed(deriveSeed(base, uint64(i))))
			out[i].Result = res
			if err != nil {
				out[i].Err = fmt.Errorf("probe %d: %w", i, err)
			}
			return nil
		})
	}
	_ = p.Wait() // tasks only fail with ctx errors, reported below

	if err := ctx.Err(); err != nil {
		return out, err
	}

	return out, nil
}
