// Package hebbian trains a discrete Hopfield network by outer-product
// (Hebbian) accumulation.
//
// Algorithm Outline:
//  1. Let N be the common pattern length. W := N×N zero matrix.
//  2. For each pattern p: W[i][j] += p[i]*p[j] for all i, j.
//  3. W[i][i] := 0 for all i (no self-connections).
//
// The result is symmetric with a zero diagonal. Because addition commutes the
// matrix does not depend on pattern order.
//
// Element type:
//
//	Train is generic over matrix.Number. Every entry satisfies |W[i][j]| ≤ M
//	for M patterns, so the supported pattern count is bounded by the element
//	type: int32 ⇒ 2³¹−1, int64 ⇒ 2⁶³−1, float64 ⇒ 2⁵³ (exact integers).
//	Exceeding it returns ErrTooManyPatterns instead of silently wrapping.
//
// Complexity:
//
//	Time   = O(M·N²)
//	Memory = O(N²)
//
// Errors:
//   - ErrEmptyInput        — no patterns.
//   - ErrDimensionMismatch — patterns of differing length.
//   - ErrTooManyPatterns   — more patterns than the element type can sum exactly.
package hebbian
