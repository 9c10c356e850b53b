// Package triplet reads and writes sparse matrices in a line-oriented text
// format: a two-line shape header followed by one "(row, col, value)" entry
// per line.
//
//	rows=3
//	cols=4
//	(0, 1, 2.5)
//	(2, 0, -7)
//
// The triplet package provides:
//
//   - Decode and Encode against io.Reader/io.Writer, plus ReadFile and
//     WriteFile conveniences for flat files.
//   - Strict, atomic parsing: any malformed line fails the whole decode
//     with ErrFormat carrying a 1-based line number; no partially filled
//     matrix ever escapes.
//   - Deterministic encoding in row-ascending, column-ascending order, so
//     equal matrices always serialize byte-identically.
//
// Duplicate coordinates follow last-wins semantics, exactly like a sequence
// of Set calls. Blank lines between entries are skipped; the two header
// lines themselves admit no blank lines before or between them.
//
// See the examples in this package and the sparse engine for usage patterns.
package triplet
