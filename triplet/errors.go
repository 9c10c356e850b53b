// SPDX-License-Identifier: MIT
// Package triplet: sentinel error set (unified, consistent).
// Decode/Encode and the file helpers MUST classify every failure as exactly
// one of these sentinels; tests check them via errors.Is. Syntax problems
// and transport problems never mix.

package triplet

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "triplet: ..." for consistency and to allow
// easy grepping across logs. Wrapping errors add context (line numbers,
// paths, operations) in front; errors.Is keeps matching through the chain.

var (
	// ErrFormat indicates malformed input: a bad or missing header line, an
	// entry that does not parse as "(int, int, float)", an out-of-bounds
	// coordinate, or a non-finite value under the default numeric policy.
	// The wrapping error carries the 1-based line number of the violation.
	ErrFormat = errors.New("triplet: malformed input")

	// ErrIO indicates a failed underlying read, write, open, or close. The
	// wrapping error carries the operation and keeps the OS-level cause
	// matchable (e.g. errors.Is(err, os.ErrNotExist) still holds).
	ErrIO = errors.New("triplet: i/o failure")
)

// formatErrorf tags a syntax violation with its 1-based line number.
func formatErrorf(line int, detail string) error {
	return fmt.Errorf("line %d: %s: %w", line, detail, ErrFormat)
}

// formatCauseErrorf classifies a typed cause (bounds, numeric policy, shape)
// as ErrFormat while keeping the cause itself matchable via errors.Is.
func formatCauseErrorf(line int, cause error) error {
	return fmt.Errorf("line %d: %w: %w", line, cause, ErrFormat)
}

// ioErrorf tags a transport failure with its operation, keeping both the
// package sentinel and the OS-level cause matchable via errors.Is.
func ioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}
