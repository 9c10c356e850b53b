// SPDX-License-Identifier: MIT
// Package triplet_test contains shared fixtures for the codec tests.
package triplet_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/sparmat/sparse"
	"github.com/katalvlaran/sparmat/triplet"
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

// MustDecode parses src or fails the test.
func MustDecode(t *testing.T, src string, opts ...triplet.Option) *sparse.Matrix {
	t.Helper()
	m, err := triplet.Decode(strings.NewReader(src), opts...)
	if err != nil {
		t.Fatalf("Decode(%q): %v", src, err)
	}

	return m
}

// EncodeToString serializes m or fails the test.
func EncodeToString(t *testing.T, m *sparse.Matrix) string {
	t.Helper()
	var sb strings.Builder
	if err := triplet.Encode(&sb, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	return sb.String()
}

// errReader fails every Read with its held error; it simulates a broken
// transport under the decoder.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// failWriter fails every Write; it simulates a full or broken sink under
// the encoder.
type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }
