// SPDX-License-Identifier: MIT
// Package sparse: arithmetic kernels over sparse operands.
//
// All kernels are pure: operands are never mutated, and results are fresh
// matrices inheriting the left operand's storage policies. Validation is
// fail-fast through the canonical validators. Results never store an
// exact-zero element, so cancellation keeps outputs sparse.

package sparse

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
)

// Signs used by the shared add/sub kernel.
const (
	signAdd = +1.0
	signSub = -1.0
)

// sparseErrorf wraps an underlying error with the given operation tag.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new Matrix containing the element-wise sum a + b.
//
// Implementation:
//   - Stage 1 (Validate): nil checks and exact shape match.
//   - Stage 2 (Execute): union-of-stored-keys walk; positions stored in
//     neither operand stay implicit in the result.
//
// Behavior highlights:
//   - Touches only stored entries: cost is O(nnz), not O(rows·cols).
//   - Exact-zero sums (cancellation) are not stored in the result.
//
// Inputs:
//   - a, b: operands of identical shape; neither is mutated.
//
// Returns:
//   - fresh *Matrix of the same shape carrying a's storage policies.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from Stage 1).
//
// Determinism:
//   - Each output position is written exactly once from a single two-term
//     sum, so the result is independent of map iteration order.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)) expected, Space O(nnz(result)).
func Add(a, b *Matrix) (*Matrix, error) {
	res, err := addSub(a, b, signAdd)
	if err != nil {
		return nil, sparseErrorf(opAdd, err)
	}

	return res, nil
}

// Sub returns a new Matrix containing the element-wise difference a - b.
// Validation, determinism and cost match Add; see Add for the full contract.
func Sub(a, b *Matrix) (*Matrix, error) {
	res, err := addSub(a, b, signSub)
	if err != nil {
		return nil, sparseErrorf(opSub, err)
	}

	return res, nil
}

// addSub is the shared kernel behind Add (sign=+1) and Sub (sign=-1).
//
// Stage 1 validates the operands (non-nil, same shape). Stage 2 walks a's
// stored entries combining each with b's value at the same position, then
// walks the entries stored only in b. Every result position is decided
// exactly once; exact-zero outcomes are skipped.
func addSub(a, b *Matrix, sign float64) (*Matrix, error) {
	// Stage 1: validate operands.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, err
	}

	// Stage 2: allocate the result with a's shape and policies.
	res := newWithOptions(a.rows, a.cols, a.opts)

	var sum float64
	// Pass 1: positions stored in a (b's side reads through At, absent = 0).
	for i, row := range a.entries {
		for j, av := range row {
			sum = av + sign*b.At(i, j)
			if sum == 0 {
				continue // cancellation: keep the result sparse
			}
			res.store(i, j, sum)
		}
	}
	// Pass 2: positions stored only in b.
	for i, row := range b.entries {
		for j, bv := range row {
			if a.has(i, j) {
				continue // already combined in pass 1
			}
			sum = sign * bv
			if sum == 0 {
				continue // an explicit zero in b contributes nothing
			}
			res.store(i, j, sum)
		}
	}

	return res, nil
}

// Mul returns the matrix product a × b under the standard dot-product rule:
// result[i][j] = Σ_k a[i][k]·b[k][j].
//
// Implementation:
//   - Stage 1 (Validate): nil checks and a.Cols == b.Rows.
//   - Stage 2 (Execute): for each stored a[i][k], accumulate a[i][k]·b[k][j]
//     into result row i for every stored b[k][j]. Positions whose k-terms
//     are all absent contribute nothing and are never touched.
//   - Stage 3 (Finalize): sweep exact-zero accumulations (cancellation).
//
// Behavior highlights:
//   - A stored zero in either operand is skipped up front: it cannot change
//     any sum, so it only costs the key visit.
//   - Cost scales with stored-entry fan-out, not with rows·inner·cols.
//
// Inputs:
//   - a: left operand, shape r×n; b: right operand, shape n×c.
//
// Returns:
//   - fresh r×c *Matrix carrying a's storage policies.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from Stage 1).
//
// Determinism:
//   - Iteration runs in sorted i → k → j order, so the floating-point
//     accumulation order (and thus every result bit) is reproducible.
//
// Complexity:
//   - Time O(Σ over stored a[i][k] of nnz(b row k), plus key sorting),
//     Space O(nnz(result)).
func Mul(a, b *Matrix) (*Matrix, error) {
	// Stage 1: validate operands.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	// Stage 2: allocate the result and accumulate products.
	res := newWithOptions(a.rows, b.cols, a.opts)

	// Cache b's sorted column keys per row: each distinct k is sorted once.
	bCols := make(map[int][]int, len(b.entries))

	var av, bv float64
	for _, i := range a.rowKeys() { // fixed row order
		rowA := a.entries[i]
		for _, k := range sortedKeys(rowA) { // fixed inner-dimension order
			av = rowA[k]
			if av == 0 {
				continue // a stored zero cannot contribute
			}
			rowB, ok := b.entries[k]
			if !ok {
				continue // whole b row absent: every product is 0
			}
			cols, ok := bCols[k]
			if !ok {
				cols = sortedKeys(rowB)
				bCols[k] = cols
			}
			for _, j := range cols { // fixed column order
				bv = rowB[j]
				if bv == 0 {
					continue
				}
				res.addAt(i, j, av*bv)
			}
		}
	}

	// Stage 3: sweep exact-zero accumulations out of the result.
	res.dropZeros()

	return res, nil
}

// addAt accumulates delta into the entry at (i, j), creating it at delta.
func (m *Matrix) addAt(i, j int, delta float64) {
	row, ok := m.entries[i]
	if !ok {
		row = make(map[int]float64)
		m.entries[i] = row
	}
	row[j] += delta
}

// dropZeros removes exact-zero entries and prunes emptied row maps.
func (m *Matrix) dropZeros() {
	for i, row := range m.entries {
		for j, v := range row {
			if v == 0 {
				delete(row, j)
			}
		}
		if len(row) == 0 {
			delete(m.entries, i)
		}
	}
}

// Scale returns alpha·m as a new Matrix; m is not mutated. Exact-zero
// products (alpha == 0, or underflow to zero) stay implicit in the result.
//
// Errors: ErrNilMatrix.
// Complexity: O(nnz) time and space.
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScale, err)
	}

	res := newWithOptions(m.rows, m.cols, m.opts)
	var p float64
	for i, row := range m.entries {
		for j, v := range row {
			p = v * alpha
			if p == 0 {
				continue
			}
			res.store(i, j, p)
		}
	}

	return res, nil
}

// Transpose returns mᵀ: a cols×rows Matrix with every entry mirrored across
// the main diagonal. Each stored entry maps to exactly one output position,
// so the result is independent of iteration order.
//
// Errors: ErrNilMatrix.
// Complexity: O(nnz) time and space.
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}

	res := newWithOptions(m.cols, m.rows, m.opts)
	for i, row := range m.entries {
		for j, v := range row {
			res.store(j, i, v)
		}
	}

	return res, nil
}
