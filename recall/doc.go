// Package recall recovers stored patterns from a discrete Hopfield network by
// asynchronous stochastic relaxation.
//
// Algorithm Outline:
//  1. y := probe. State = Relaxing.
//  2. Epoch: draw a fresh uniform permutation of 0..N-1. For each unit k in
//     that order, one at a time (later units see earlier updates):
//     net_k = bias_k + Σ_i y[i]*W[i][k]
//     net_k > 0 ⇒ y[k] = +1; net_k < 0 ⇒ y[k] = -1; net_k == 0 ⇒ y[k] unchanged.
//  3. If no unit changed during the epoch the state is Converged and y is
//     returned together with the epoch count (including that last quiet epoch).
//  4. Otherwise repeat, up to Options.MaxEpochs; past the guard Recall returns
//     ErrNonConvergence and the last state.
//
// Bias:
//
//	BiasNone (default) lets the probe only seed the initial state.
//	BiasExternal adds the probe's value of unit k to net_k at every update.
//
// Randomness:
//
//	The visitation order comes from Options.Rand, or from a generator seeded
//	with Options.Seed. A fixed seed makes relaxation reproducible.
//
// Concurrency:
//
//	A single relaxation is sequential by construction: synchronous updates can
//	oscillate forever. RecallBatch relaxes independent probes in parallel and
//	shares the weight matrix read-only.
//
// Complexity:
//
//	Time   = O(E·N²) for E epochs.
//	Memory = O(N) per probe.
package recall
