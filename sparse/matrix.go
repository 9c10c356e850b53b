// SPDX-License-Identifier: MIT
// Package sparse: core dictionary-of-keys matrix type.
//
// Storage model:
//
//	entries[i][j] = v holds every assigned element; a missing key IS the
//	value 0. Row maps are created lazily on first write and pruned when
//	their last entry is removed, so memory tracks the stored-entry count.

package sparse

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Matrix is a mutable rows×cols sparse matrix of float64 values backed by a
// nested row→column→value map. The zero value is not usable; construct via
// New, Random, FromDense, or the triplet codec.
type Matrix struct {
	rows, cols int
	entries    map[int]map[int]float64
	opts       Options
}

// New returns an empty rows×cols Matrix in which every element reads as 0.
//
// Implementation:
//   - Stage 1: validate rows ≥ 0 and cols ≥ 0.
//   - Stage 2: allocate the outer row map only; inner maps are lazy.
//
// Inputs:
//   - rows, cols: matrix shape; zero is legal and denotes an empty axis.
//   - opts: storage policies (see Options); defaults per Default* constants.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity: O(1) time and space.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newWithOptions(rows, cols, gatherOptions(opts...)), nil
}

// newWithOptions builds an empty matrix from pre-gathered options. Internal
// fast path for kernels; the shape is assumed validated by the caller.
func newWithOptions(rows, cols int, opts Options) *Matrix {
	return &Matrix{
		rows:    rows,
		cols:    cols,
		entries: make(map[int]map[int]float64),
		opts:    opts,
	}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored entries. Under the default policy this
// includes explicitly written zeros; with WithImplicitZeros it equals the
// count of non-zero elements. Complexity: O(rows in use).
func (m *Matrix) NNZ() int {
	n := 0
	for _, row := range m.entries {
		n += len(row)
	}

	return n
}

// At returns the element at (i, j). At is total: out-of-range coordinates
// and absent entries both read as 0, so lookups never fail.
// Complexity: O(1) expected (two map probes).
func (m *Matrix) At(i, j int) float64 {
	row, ok := m.entries[i]
	if !ok {
		return 0
	}

	return row[j] // a missing key yields the zero value, i.e. 0
}

// Set assigns v at (i, j).
//
// Implementation:
//   - Stage 1: bounds check, then numeric-policy check.
//   - Stage 2: store, or remove when v == 0 under WithImplicitZeros.
//
// Errors:
//   - ErrOutOfRange when i or j is outside [0, Rows) × [0, Cols).
//   - ErrNaNInf when v is NaN or ±Inf and validation is enabled.
//
// Complexity: O(1) expected.
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Set(%d, %d): %w", i, j, ErrOutOfRange)
	}
	if m.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("Set(%d, %d): %w", i, j, ErrNaNInf)
	}
	if v == 0 && !m.opts.storeExplicitZeros {
		m.unset(i, j) // zero means "absent" under the implicit-zero policy

		return nil
	}
	m.store(i, j, v)

	return nil
}

// store writes v at (i, j) without validation, creating the row map lazily.
func (m *Matrix) store(i, j int, v float64) {
	row, ok := m.entries[i]
	if !ok {
		row = make(map[int]float64)
		m.entries[i] = row
	}
	row[j] = v
}

// unset removes the entry at (i, j), pruning the row map when it empties.
func (m *Matrix) unset(i, j int) {
	row, ok := m.entries[i]
	if !ok {
		return
	}
	delete(row, j)
	if len(row) == 0 {
		delete(m.entries, i)
	}
}

// has reports whether (i, j) is a stored entry (explicit zeros included).
func (m *Matrix) has(i, j int) bool {
	row, ok := m.entries[i]
	if !ok {
		return false
	}
	_, ok = row[j]

	return ok
}

// Clone returns a deep copy: same shape, same policies, independent storage.
// Complexity: O(nnz) time and space.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		rows:    m.rows,
		cols:    m.cols,
		entries: make(map[int]map[int]float64, len(m.entries)),
		opts:    m.opts,
	}
	for i, row := range m.entries {
		dst := make(map[int]float64, len(row))
		for j, v := range row {
			dst[j] = v
		}
		c.entries[i] = dst
	}

	return c
}

// ForEach visits every stored entry in row-ascending, column-ascending
// order and calls fn(i, j, v) for each. The fixed order makes dependent
// output (serialization, String) reproducible across runs.
// Complexity: O(nnz·log nnz) time due to key sorting, O(nnz) key space.
func (m *Matrix) ForEach(fn func(i, j int, v float64)) {
	for _, i := range m.rowKeys() {
		row := m.entries[i]
		for _, j := range sortedKeys(row) {
			fn(i, j, row[j])
		}
	}
}

// rowKeys returns the indices of rows holding at least one entry, ascending.
func (m *Matrix) rowKeys() []int {
	keys := make([]int, 0, len(m.entries))
	for i := range m.entries {
		keys = append(keys, i)
	}
	sort.Ints(keys)

	return keys
}

// sortedKeys returns the column indices of one row map, ascending.
func sortedKeys(row map[int]float64) []int {
	keys := make([]int, 0, len(row))
	for j := range row {
		keys = append(keys, j)
	}
	sort.Ints(keys)

	return keys
}

// Equal reports whether m and other share the same shape and the same
// elements. Comparison is element-wise over the union of stored keys, so an
// explicitly stored zero equals an absent entry. Per IEEE-754, any stored
// NaN (possible only under WithNoValidateNaNInf) compares unequal.
// Complexity: O(nnz(m) + nnz(other)) expected.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, row := range m.entries {
		for j, v := range row {
			if v != other.At(i, j) {
				return false
			}
		}
	}
	for i, row := range other.entries {
		for j, v := range row {
			if v != m.At(i, j) {
				return false
			}
		}
	}

	return true
}

// String renders the dense grid for debugging, one row per line in the form
// "[v0, v1, ...]". Intended for small matrices: Complexity O(rows·cols).
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int // loop iterators
	for i = 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.At(i, j))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
