// SPDX-License-Identifier: MIT
// Package sparse: bridges to gonum dense matrices.
//
// The bridges keep the two representations decoupled: sparse form for
// storage and element-wise work, gonum form for the numeric routines
// (decompositions, solvers, formatted printing) that expect dense data.

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Conversion operation tags for unified error wrapping.
const (
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// ToDense materializes m as a gonum *mat.Dense.
//
// gonum cannot represent an empty axis, so zero-dimension matrices are
// rejected rather than silently reshaped.
//
// Errors: ErrNilMatrix; ErrInvalidDimensions when Rows or Cols is 0.
// Complexity: O(rows·cols) space, O(rows·cols + nnz) time.
func ToDense(m *Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, sparseErrorf(opToDense, fmt.Errorf("empty axis %dx%d: %w", m.rows, m.cols, ErrInvalidDimensions))
	}

	d := mat.NewDense(m.rows, m.cols, nil) // zero-filled backing slice
	for i, row := range m.entries {
		for j, v := range row {
			d.Set(i, j, v)
		}
	}

	return d, nil
}

// FromDense ingests any gonum mat.Matrix into a fresh sparse Matrix,
// storing only the non-zero source elements. Source zeros stay implicit
// regardless of the explicit-zero policy: the dense form has no notion of
// a written zero.
//
// Errors:
//   - ErrNilMatrix when d is nil.
//   - ErrNaNInf when the source holds NaN or ±Inf and validation is
//     enabled (lift with WithNoValidateNaNInf).
//
// Complexity: O(rows·cols) time, O(nnz) space.
func FromDense(d mat.Matrix, opts ...Option) (*Matrix, error) {
	if d == nil {
		return nil, sparseErrorf(opFromDense, ErrNilMatrix)
	}

	rows, cols := d.Dims()
	res := newWithOptions(rows, cols, gatherOptions(opts...))
	var (
		i, j int     // loop iterators
		v    float64 // current source element
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = d.At(i, j)
			if v == 0 {
				continue // implicit in sparse form
			}
			if res.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, sparseErrorf(opFromDense, fmt.Errorf("at (%d, %d): %w", i, j, ErrNaNInf))
			}
			res.store(i, j, v)
		}
	}

	return res, nil
}
