// Package hopnet is a discrete Hopfield associative memory: store a handful
// of bipolar patterns, then hand it a noisy or partial copy and let it settle
// back onto the closest memory.
//
// 🚀 What is in the box?
//
//	• Patterns: bipolar {-1,+1} vectors, drawn as glyph grids or numbers
//	• Training: Hebbian outer-product rule, symmetric weights, zero diagonal
//	• Recall: asynchronous relaxation in random order with an epoch guard
//	• Batches: many probes in parallel with results independent of scheduling
//	• Files: training/probe sets, weight matrices and recall reports
//	• Runs: optional SQLite/MySQL log of every recall
//
// Subpackages:
//
//	pattern/   — Pattern, glyph grids, set validation and memory matching
//	matrix/    — generic dense weight matrix + Hopfield validators
//	hebbian/   — Train and the incremental Accumulator
//	recall/    — Recall, RecallBatch, Options, bias modes
//	codec/     — text formats for sets, weights and reports
//	noise/     — unique random patterns and corrupted probes
//	runstore/  — SQL persistence of recall runs, NTP-backed clock
//	config/    — HOPNET_* environment and .env settings
//	cmd/hopnet — train / test / generate CLI
//
// Quick example:
//
//	p := pattern.MustNew(1, -1, 1, -1)
//	w, _ := hebbian.Train[int64]([]pattern.Pattern{p})
//	res, _ := recall.Recall(w, pattern.MustNew(-1, -1, 1, -1), recall.DefaultOptions())
//	fmt.Println(res.Pattern, res.Epochs) // +-+- 2
//
// A network of N units stores roughly 0.138·N random patterns reliably; past
// that, recall drifts to spurious mixtures. Every stored pattern's negation is
// also a fixed point.
package hopnet
