// SPDX-License-Identifier: MIT

// Package noise generates random bipolar patterns and corrupted probes for
// exercising a trained network.
//
// Unique draws a set of pairwise distinct patterns; Corrupt flips an exact
// number of distinct units of a pattern. Both take an explicit *rand.Rand so
// runs are reproducible from a seed, and neither shares that source.
package noise
