// SPDX-License-Identifier: MIT

package recall

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hopnet/matrix"
	"github.com/katalvlaran/hopnet/pattern"
)

// Result is the outcome of one relaxation.
type Result struct {
	// Pattern is the final state: a fixed point when Converged is true, the
	// last state reached otherwise. It need not equal any trained pattern.
	Pattern pattern.Pattern

	// Epochs counts full passes, including the final pass without changes.
	Epochs int

	// Converged is false only alongside ErrNonConvergence.
	Converged bool
}

// state is the mutable working set of one relaxation; it never outlives it.
type state struct {
	y     []int8 // current unit values
	ext   []int8 // external input (the probe), read by BiasExternal
	order []int  // visitation order, re-shuffled every epoch
}

func newState(probe pattern.Pattern) *state {
	n := probe.Len()
	st := &state{y: probe.Units(), ext: probe.Units(), order: make([]int, n)}
	for i := range st.order {
		st.order[i] = i
	}

	return st
}

// Recall relaxes probe on the network w until a fixed point is reached.
//
// Stage 1 (Validate): options, w square/symmetric/zero-diagonal, probe length.
// Stage 2 (Relax): asynchronous epochs in random order.
// Stage 3 (Finalize): return the state and the epoch count.
//
// Errors:
//   - ErrBadOptions                — invalid Options.
//   - matrix.ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNonZeroDiagonal.
//   - ErrDimensionMismatch         — probe.Len() != w.Rows().
//   - ErrNonConvergence            — MaxEpochs exceeded; Result holds the last state.
func Recall[T matrix.Number](w *matrix.Dense[T], probe pattern.Pattern, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, fmt.Errorf("recall: %w", err)
	}
	if err := matrix.ValidateHopfield(w); err != nil {
		return Result{}, fmt.Errorf("recall: weights: %w", err)
	}
	if err := checkProbe(w, probe); err != nil {
		return Result{}, err
	}

	return relax(w, probe, opts, opts.generator())
}

// checkProbe enforces probe.Len() == w.Rows().
func checkProbe[T matrix.Number](w *matrix.Dense[T], probe pattern.Pattern) error {
	if probe.Len() != w.Rows() {
		return fmt.Errorf("recall: probe has %d units, network has %d: %w",
			probe.Len(), w.Rows(), ErrDimensionMismatch)
	}

	return nil
}

// relax runs the Relaxing → Converged state machine. Inputs are validated.
func relax[T matrix.Number](w *matrix.Dense[T], probe pattern.Pattern, opts Options, rng *rand.Rand) (Result, error) {
	var (
		st      = newState(probe)
		epoch   int
		changed bool
		err     error
	)
	for epoch = 1; epoch <= opts.MaxEpochs; epoch++ {
		shuffleInPlace(st.order, rng)
		changed, err = runEpoch(st, w, opts.Bias)
		if err != nil {
			return Result{}, fmt.Errorf("recall: epoch %d: %w", epoch, err)
		}
		if !changed {
			p, _ := pattern.FromUnits(st.y) // y stays ±1 throughout
			return Result{Pattern: p, Epochs: epoch, Converged: true}, nil
		}
	}

	p, _ := pattern.FromUnits(st.y)
	return Result{Pattern: p, Epochs: opts.MaxEpochs},
		fmt.Errorf("recall: %d epochs: %w", opts.MaxEpochs, ErrNonConvergence)
}

// runEpoch visits every unit once in st.order, updating y in place so later
// units see earlier updates. Reports whether any unit changed.
// Complexity: O(N²).
func runEpoch[T matrix.Number](st *state, w *matrix.Dense[T], bias BiasMode) (bool, error) {
	var (
		changed bool
		net     T
		err     error
		prev    int8
	)
	for _, k := range st.order {
		net, err = w.ColumnDot(k, st.y)
		if err != nil {
			return false, err
		}
		if bias == BiasExternal {
			net += T(st.ext[k])
		}

		prev = st.y[k]
		// Ties leave the unit alone; flipping on equality can oscillate.
		if net > 0 {
			st.y[k] = 1
		} else if net < 0 {
			st.y[k] = -1
		}
		if st.y[k] != prev {
			changed = true
		}
	}

	return changed, nil
}

// IsFixedPoint reports whether no unit of p would change under the activation
// rule with BiasNone, i.e. whether Recall(w, p) would converge in one epoch.
// Errors mirror Recall's validation.
// Complexity: O(N²).
func IsFixedPoint[T matrix.Number](w *matrix.Dense[T], p pattern.Pattern) (bool, error) {
	if err := matrix.ValidateHopfield(w); err != nil {
		return false, fmt.Errorf("recall: weights: %w", err)
	}
	if err := checkProbe(w, p); err != nil {
		return false, err
	}

	y := p.Units()
	for k := range y {
		net, err := w.ColumnDot(k, y)
		if err != nil {
			return false, err
		}
		if (net > 0 && y[k] != 1) || (net < 0 && y[k] != -1) {
			return false, nil
		}
	}

	return true, nil
}
