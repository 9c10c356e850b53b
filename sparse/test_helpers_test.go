// SPDX-License-Identifier: MIT
// Package sparse_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernel and property tests.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparmat/sparse"
)

// MustNew allocates an r×c *sparse.Matrix or fails the test.
func MustNew(t *testing.T, r, c int, opts ...sparse.Option) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(r, c, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSet writes v to m[i,j] or fails the test with the offending indices.
func MustSet(t *testing.T, m *sparse.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// NewFilled builds a Matrix from a 2D literal, storing only the non-zero
// cells so the fixture keeps sparse semantics (zeros stay implicit).
//
// Implementation:
//   - Stage 1: shape from the literal (rows = len(vals), cols = len(vals[0])).
//   - Stage 2: Set every non-zero cell in row-major order.
//
// Determinism: fixed fill order. Complexity: O(r·c).
func NewFilled(t *testing.T, vals [][]float64, opts ...sparse.Option) *sparse.Matrix {
	t.Helper()
	rows := len(vals)
	cols := 0
	if rows > 0 {
		cols = len(vals[0])
	}
	m := MustNew(t, rows, cols, opts...)
	for i, row := range vals {
		if len(row) != cols {
			t.Fatalf("NewFilled: ragged literal at row %d: %d values, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if v == 0 {
				continue // keep zeros implicit in fixtures
			}
			MustSet(t, m, i, j, v)
		}
	}

	return m
}

// CompareExact asserts strict element equality between a 2D literal and m,
// reading through At so implicit and explicit zeros compare alike.
func CompareExact(t *testing.T, want [][]float64, m *sparse.Matrix) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("CompareExact: Rows = %d; want %d", m.Rows(), len(want))
	}
	var v float64
	for i := range want {
		if len(want[i]) != m.Cols() {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, m.Cols(), len(want[i]))
		}
		for j := range want[i] {
			if v = m.At(i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d] = %v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// MustRandom builds a seeded random matrix or fails the test.
func MustRandom(t *testing.T, r, c int, p float64, seed int64) *sparse.Matrix {
	t.Helper()
	m, err := sparse.Random(r, c, p, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Random(%d,%d,p=%v,seed=%d): %v", r, c, p, seed, err)
	}

	return m
}

// refAddSub computes a + sign·b cell-by-cell over the full dense grid; the
// slow reference the union-of-keys kernels are checked against.
func refAddSub(a, b *sparse.Matrix, sign float64) [][]float64 {
	out := make([][]float64, a.Rows())
	for i := range out {
		out[i] = make([]float64, a.Cols())
		for j := range out[i] {
			out[i][j] = a.At(i, j) + sign*b.At(i, j)
		}
	}

	return out
}

// refMul computes a × b by the textbook triple loop over the dense grids.
// Terms accumulate in ascending k, matching the kernel's fixed order, so
// results compare bit-exactly.
func refMul(a, b *sparse.Matrix) [][]float64 {
	out := make([][]float64, a.Rows())
	var s float64
	for i := range out {
		out[i] = make([]float64, b.Cols())
		for j := range out[i] {
			s = 0
			for k := 0; k < a.Cols(); k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			out[i][j] = s
		}
	}

	return out
}
