// Package sparse implements a dictionary-of-keys sparse matrix over float64.
//
// The sparse package provides:
//
//   - Matrix, a nested row→column→value map that stores only assigned
//     entries, so memory scales with the stored-entry count rather than
//     rows·cols.
//   - Element access with a total, never-failing read path (At reports 0
//     for anything absent) and a strictly validated write path (Set).
//   - Arithmetic kernels (Add, Sub, Mul, Scale, Transpose) with fail-fast
//     dimension validation and deterministic results.
//   - Conversions to and from gonum/mat dense matrices for interop with
//     numeric routines.
//   - Random, a seeded Bernoulli generator for fixtures and benchmarks.
//
// Sparse storage pays off when the fraction of stored entries is small;
// for dense data the per-entry map overhead outweighs the savings.
//
// See the examples in this package and the triplet codec for usage patterns.
package sparse
