// SPDX-License-Identifier: MIT
// Package sparse_test: runnable documentation examples.
package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparmat/sparse"
)

// ExampleNew builds a small matrix and shows the total read path: stored
// entries come back verbatim, everything else reads as 0.
func ExampleNew() {
	m, _ := sparse.New(2, 3)
	_ = m.Set(0, 0, 1.5)
	_ = m.Set(1, 2, -4)

	fmt.Println(m.At(0, 0), m.At(1, 2), m.At(1, 1))
	fmt.Println(m.NNZ())
	// Output:
	// 1.5 -4 0
	// 2
}

// ExampleAdd sums two sparse operands; only stored entries are touched.
func ExampleAdd() {
	a, _ := sparse.New(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(1, 1, 2)

	b, _ := sparse.New(2, 2)
	_ = b.Set(0, 1, 3)

	sum, _ := sparse.Add(a, b)
	fmt.Print(sum)
	// Output:
	// [1, 3]
	// [0, 2]
}

// ExampleMul multiplies under the standard dot-product rule.
func ExampleMul() {
	a, _ := sparse.New(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 3)
	_ = a.Set(1, 1, 4)

	b, _ := sparse.New(2, 2)
	_ = b.Set(0, 0, 5)
	_ = b.Set(0, 1, 6)
	_ = b.Set(1, 0, 7)
	_ = b.Set(1, 1, 8)

	prod, _ := sparse.Mul(a, b)
	fmt.Print(prod)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMatrix_ForEach visits stored entries in row-major sorted order,
// regardless of insertion order.
func ExampleMatrix_ForEach() {
	m, _ := sparse.New(3, 3)
	_ = m.Set(2, 0, 3)
	_ = m.Set(0, 1, 1)
	_ = m.Set(0, 0, 5)

	m.ForEach(func(i, j int, v float64) {
		fmt.Printf("(%d, %d) = %g\n", i, j, v)
	})
	// Output:
	// (0, 0) = 5
	// (0, 1) = 1
	// (2, 0) = 3
}

// ExampleTranspose mirrors entries across the main diagonal.
func ExampleTranspose() {
	m, _ := sparse.New(2, 3)
	_ = m.Set(0, 2, 7)
	_ = m.Set(1, 0, -1)

	tr, _ := sparse.Transpose(m)
	fmt.Print(tr)
	// Output:
	// [0, -1]
	// [0, 0]
	// [7, 0]
}
