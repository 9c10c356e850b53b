// Package sparmat is your in-memory toolkit for building, transforming,
// and serializing sparse matrices held as dictionaries of keys.
//
// 🚀 What is sparmat?
//
//	A small, deterministic library that brings together:
//		• Core storage: rows x cols shape over a nested map of non-zero cells
//		• Total reads: At never fails, absent cells read as 0
//		• Kernels: Add, Sub, Mul, Scale, Transpose with strict shape checks
//		• Codec: a line-oriented triplet text format with precise error reporting
//		• Interop: converters to and from gonum dense matrices
//		• Generators: seeded random matrices for tests and benchmarks
//
// ✨ Why choose sparmat?
//
//   - Predictable – sorted iteration keeps every result and file byte-stable
//   - Honest errors – sentinel values wrapped with operation context
//   - Memory-proportional – cost follows stored entries, not rows x cols
//   - Tunable – functional options pick explicit or implicit zero storage
//
// Under the hood, everything is organized under three subpackages:
//
//	sparse/      - the Matrix type, kernels, gonum bridges, random builder
//	triplet/     - Decode/Encode plus ReadFile/WriteFile for the text format
//	cmd/sparmat/ - a command line calculator over the two packages above
//
// Quick example of the wire format:
//
//	rows=2
//	cols=3
//	(0, 1, 2.5)
//	(1, 2, -4)
//
//	describes a 2x3 matrix with two stored cells.
//
//	go get github.com/katalvlaran/sparmat
package sparmat
