// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary. Callers still use errors.Is to match.

var (
	// ErrInvalidDimensions is returned when a requested shape is negative.
	// Zero-sized axes are legal and denote an empty matrix.
	ErrInvalidDimensions = errors.New("sparse: negative dimension")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Set MUST return this, not panic; At never fails by contract.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, ingestion).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was
	// passed to an operation.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrInvalidProbability is returned by Random when the fill probability
	// lies outside [0, 1] or is NaN.
	ErrInvalidProbability = errors.New("sparse: probability out of [0,1]")

	// ErrNeedRandSource is returned by Random when trials are required
	// (probability > 0) but the random source is nil.
	ErrNeedRandSource = errors.New("sparse: nil random source")
)
