// SPDX-License-Identifier: MIT
// Package triplet: flat-file conveniences over Decode and Encode.

package triplet

import (
	"fmt"
	"os"

	"github.com/katalvlaran/sparmat/sparse"
)

// ReadFile opens path and decodes one matrix from it.
//
// Errors: ErrIO when the file cannot be opened or read (the OS cause stays
// matchable, e.g. errors.Is(err, os.ErrNotExist)); ErrFormat as in Decode.
// Complexity: as Decode.
func ReadFile(path string, opts ...Option) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(fmt.Sprintf("ReadFile: open %s", path), err)
	}
	defer f.Close() // read-only handle: a close failure loses nothing

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return m, nil
}

// WriteFile encodes m into path, creating or truncating the file.
//
// The handle is closed before returning; a failed close reports ErrIO
// because buffered bytes may not have reached the file.
func WriteFile(path string, m *sparse.Matrix, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(fmt.Sprintf("WriteFile: create %s", path), err)
	}
	if err = Encode(f, m, opts...); err != nil {
		_ = f.Close() // best effort: the encode error wins

		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return ioErrorf(fmt.Sprintf("WriteFile: close %s", path), err)
	}

	return nil
}
