// Package matrix provides the dense square weight matrix used by the
// Hopfield trainer and recaller.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix generic over the Number element types
//     (int32, int64, float64) so integer and real-valued weights share one
//     implementation.
//   - Structural validators (square, symmetric, zero diagonal) that the
//     recaller runs before relaxation.
//   - Convert, to move a trained matrix between element types.
//
// All public accessors return sentinel errors instead of panicking.
// A Dense is not safe for concurrent mutation, but concurrent reads are fine,
// which is how recall shares one matrix across parallel probes.
package matrix
