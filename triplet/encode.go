// SPDX-License-Identifier: MIT
// Package triplet: encoder emitting the canonical text form.

package triplet

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sparmat/sparse"
)

// Canonical emission templates. They mirror the parse-side constants; keep
// the two in sync when evolving the format.
const (
	headerLineFmt = "%s=%d\n"        // key, count
	entryLineFmt  = "(%d, %d, %g)\n" // row, col, value
)

// Encode writes m to w in the canonical text form: the two header lines
// followed by one "(row, col, value)" line per stored entry in
// row-ascending, column-ascending order.
//
// Behavior highlights:
//   - Deterministic: equal storage serializes byte-identically, so encoded
//     files diff cleanly.
//   - Lossless: values print via %g, the shortest form that parses back to
//     the same float64; explicitly stored zeros are emitted like any other
//     entry.
//
// Errors:
//   - sparse.ErrNilMatrix for a nil matrix; ErrIO when a write fails.
//
// Complexity: O(nnz·log nnz) time (sorted emission), O(nnz) key space.
func Encode(w io.Writer, m *sparse.Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	if m == nil {
		return fmt.Errorf("Encode: %w", sparse.ErrNilMatrix)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, headerLineFmt, keyRows, m.Rows())
	fmt.Fprintf(bw, headerLineFmt, keyCols, m.Cols())

	entries := 0
	m.ForEach(func(i, j int, v float64) {
		fmt.Fprintf(bw, entryLineFmt, i, j, v)
		entries++
	})

	// bufio.Writer latches the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return ioErrorf("Encode: write", err)
	}
	o.log.Debug().Int("entries", entries).Msg("encode complete")

	return nil
}
