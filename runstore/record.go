// SPDX-License-Identifier: MIT

package runstore

import (
	"errors"
	"time"

	"github.com/katalvlaran/hopnet/pattern"
	"github.com/katalvlaran/hopnet/recall"
)

// Batch describes one RecallBatch invocation for Rows.
type Batch struct {
	Session    string
	Seed       int64
	Bias       recall.BiasMode
	Stored     []pattern.Pattern // matched against; may be nil
	Probes     []pattern.Pattern // indexed like Results
	Results    []recall.BatchResult
	StartedAt  time.Time
	FinishedAt time.Time
}

// Rows converts a batch into one Run per probe that produced a state.
// Probes rejected before relaxing (bad dimension) have no state and are skipped;
// probes stopped by the epoch guard are kept with Converged false.
func Rows(b Batch) []Run {
	out := make([]Run, 0, len(b.Results))
	for _, r := range b.Results {
		if r.Err != nil && !errors.Is(r.Err, recall.ErrNonConvergence) {
			continue
		}
		run := Run{
			Session:    b.Session,
			ProbeIndex: r.Index,
			Dimension:  r.Result.Pattern.Len(),
			Seed:       b.Seed,
			Bias:       b.Bias.String(),
			Epochs:     r.Result.Epochs,
			Converged:  r.Result.Converged,
			Recovered:  r.Result.Pattern.String(),
			MatchIndex: -1,
			StartedAt:  b.StartedAt,
			FinishedAt: b.FinishedAt,
		}
		if r.Index >= 0 && r.Index < len(b.Probes) {
			run.Probe = b.Probes[r.Index].String()
		}
		if idx, inverted, ok := pattern.Match(b.Stored, r.Result.Pattern); ok {
			run.MatchIndex, run.Inverted = idx, inverted
		}
		out = append(out, run)
	}

	return out
}
