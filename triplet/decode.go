// SPDX-License-Identifier: MIT
// Package triplet: decoder for the header + entry-line text format.

package triplet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparmat/sparse"
)

// Literal syntax of the format, kept as named constants.
const (
	keyRows     = "rows" // first header key
	keyCols     = "cols" // second header key
	headerSep   = "="    // separates a header key from its count
	entryOpen   = "("    // first byte of an entry line
	entryClose  = ")"    // last byte of an entry line
	entrySep    = ","    // separates the three entry tokens
	entryTokens = 3      // row, col, value
	firstLine   = 1      // line numbers are 1-based in errors
)

// Decode parses one matrix from r.
//
// Implementation:
//   - Stage 1 (Header): read "rows=<count>" then "cols=<count>" from the
//     first two lines and construct the Matrix.
//   - Stage 2 (Entries): parse every remaining non-blank line as
//     "(row, col, value)" and apply it via Set; later duplicates win.
//
// Behavior highlights:
//   - Atomic: any violation returns a nil matrix; no partially filled
//     result is ever returned.
//   - Whitespace around the parentheses and between tokens is tolerated;
//     blank lines between entries are skipped. The header block itself
//     admits no blank lines.
//
// Inputs:
//   - r: source stream, consumed until EOF or the first violation.
//   - opts: WithLogger, WithMatrixOptions.
//
// Returns:
//   - fresh *sparse.Matrix holding every parsed entry.
//
// Errors:
//   - ErrFormat for header, syntax, bounds, and numeric-policy violations,
//     wrapped with the 1-based line number (the underlying sparse sentinel
//     stays matchable for bounds and numeric causes);
//   - ErrIO when the underlying read fails.
//
// Determinism:
//   - Input order decides duplicates (last wins); the stored result is
//     independent of everything else.
//
// Complexity: O(lines) time, O(nnz) space.
func Decode(r io.Reader, opts ...Option) (*sparse.Matrix, error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(r)

	// Stage 1: the two-line header, fixed key order.
	rows, err := scanHeader(sc, keyRows, firstLine)
	if err != nil {
		return nil, err
	}
	cols, err := scanHeader(sc, keyCols, firstLine+1)
	if err != nil {
		return nil, err
	}
	m, merr := sparse.New(rows, cols, o.matrixOpts...)
	if merr != nil {
		return nil, formatCauseErrorf(firstLine, merr) // unreachable after count checks; kept as a guard
	}
	o.log.Debug().Int("rows", rows).Int("cols", cols).Msg("header decoded")

	// Stage 2: entry lines until EOF.
	line := firstLine + 1 // last consumed line
	entries := 0
	var (
		text string
		i, j int
		v    float64
		perr error
	)
	for sc.Scan() {
		line++
		text = strings.TrimSpace(sc.Text())
		if text == "" {
			continue // blank separator line
		}
		if i, j, v, perr = parseEntry(text); perr != nil {
			return nil, formatErrorf(line, perr.Error())
		}
		if serr := m.Set(i, j, v); serr != nil {
			// Out-of-bounds coordinates and non-finite values are defects
			// of the input, so they classify as format violations.
			return nil, formatCauseErrorf(line, serr)
		}
		entries++
	}
	if serr := sc.Err(); serr != nil {
		return nil, ioErrorf("Decode: read", serr)
	}
	o.log.Debug().Int("entries", entries).Int("nnz", m.NNZ()).Msg("decode complete")

	return m, nil
}

// scanHeader consumes the line numbered lineNo and parses it as
// "<key>=<count>". A missing line (EOF) is a format violation; a failed
// read is an I/O one.
func scanHeader(sc *bufio.Scanner, key string, lineNo int) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, ioErrorf("Decode: read", err)
		}

		return 0, formatErrorf(lineNo, fmt.Sprintf("missing %s%s<count> header", key, headerSep))
	}
	n, err := parseHeaderLine(strings.TrimSpace(sc.Text()), key)
	if err != nil {
		return 0, formatErrorf(lineNo, err.Error())
	}

	return n, nil
}

// parseHeaderLine parses "<key>=<count>" with optional whitespace around
// either side of the separator. The key must match exactly; the count must
// be a non-negative base-10 integer.
func parseHeaderLine(text, key string) (int, error) {
	name, count, found := strings.Cut(text, headerSep)
	if !found {
		return 0, fmt.Errorf("header %q lacks %q (want %s%s<count>)", text, headerSep, key, headerSep)
	}
	if got := strings.TrimSpace(name); got != key {
		return 0, fmt.Errorf("header key %q, want %q", got, key)
	}
	raw := strings.TrimSpace(count)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("header count %q is not an integer", raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("header count %d is negative", n)
	}

	return n, nil
}

// parseEntry parses "(row, col, value)" into its three components. The
// outer parentheses are mandatory; interior whitespace is free-form.
func parseEntry(text string) (int, int, float64, error) {
	if !strings.HasPrefix(text, entryOpen) || !strings.HasSuffix(text, entryClose) {
		return 0, 0, 0, fmt.Errorf("entry %q is not parenthesized", text)
	}
	inner := text[len(entryOpen) : len(text)-len(entryClose)]
	parts := strings.Split(inner, entrySep)
	if len(parts) != entryTokens {
		return 0, 0, 0, fmt.Errorf("entry %q has %d comma-separated tokens, want %d", text, len(parts), entryTokens)
	}
	rowTok := strings.TrimSpace(parts[0])
	i, err := strconv.Atoi(rowTok)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("entry row %q is not an integer", rowTok)
	}
	colTok := strings.TrimSpace(parts[1])
	j, err := strconv.Atoi(colTok)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("entry col %q is not an integer", colTok)
	}
	valTok := strings.TrimSpace(parts[2])
	v, err := strconv.ParseFloat(valTok, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("entry value %q is not a number", valTok)
	}

	return i, j, v, nil
}
