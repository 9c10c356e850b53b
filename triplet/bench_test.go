// SPDX-License-Identifier: MIT
// Benchmarks for the codec. Inputs are synthesized once per size from a
// fixed seed so runs stay comparable.
package triplet_test

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/sparmat/sparse"
	"github.com/katalvlaran/sparmat/triplet"
)

const (
	benchSeed    int64   = 42   // shared source for benchmark inputs
	benchDensity float64 = 0.05 // fill ratio of the synthesized matrices
)

// sinkMatrix defeats dead-code elimination of benchmark results.
var sinkMatrix *sparse.Matrix

// benchSizes are the square dimensions exercised by every codec benchmark.
var benchSizes = []int{64, 256, 1024}

// benchMatrix builds an n-by-n input or aborts the benchmark.
func benchMatrix(b *testing.B, n int) *sparse.Matrix {
	b.Helper()
	m, err := sparse.Random(n, n, benchDensity, rand.New(rand.NewSource(benchSeed)))
	if err != nil {
		b.Fatalf("Random(%d, %d): %v", n, n, err)
	}
	return m
}

func BenchmarkDecode(b *testing.B) {
	var n int // current size
	for _, n = range benchSizes {
		var sb strings.Builder
		if err := triplet.Encode(&sb, benchMatrix(b, n)); err != nil {
			b.Fatalf("Encode: %v", err)
		}
		doc := sb.String()

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := triplet.Decode(strings.NewReader(doc))
				if err != nil {
					b.Fatalf("Decode: %v", err)
				}
				sinkMatrix = m
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	var n int // current size
	for _, n = range benchSizes {
		m := benchMatrix(b, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := triplet.Encode(io.Discard, m); err != nil {
					b.Fatalf("Encode: %v", err)
				}
			}
		})
	}
}
