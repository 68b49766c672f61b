// Package recall - RNG utilities for visitation order.
//
// Goals:
//   - Determinism: same seed ⇒ identical epochs and results.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: batch probes get their own streams, so results do not
//     depend on how probes are scheduled across workers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each probe owns its generator.
package recall

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier (the probe index)
// into a new seed with a SplitMix64 finalizer, so neighbouring indices get
// uncorrelated streams.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using r.
// Shuffling any arrangement uniformly yields a uniform permutation, so the
// previous epoch's order can be reused as the starting point.
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, r *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
