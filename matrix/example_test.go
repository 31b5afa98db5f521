// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/mmcharchuta/NaiveR/matrix"
)

// ExampleFromRows builds a small count matrix and reads one cell safely.
func ExampleFromRows() {
	counts, err := matrix.FromRows([][]float64{
		{2, 0},
		{1, 3},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, _ := counts.At(1, 1)
	fmt.Printf("shape=%dx%d cell(1,1)=%g\n", counts.Rows(), counts.Cols(), v)
	fmt.Print(counts)
	// Output:
	// shape=2x2 cell(1,1)=3
	// [2, 0]
	// [1, 3]
}

// ExampleDense_At shows the error-returning access on a bad coordinate.
func ExampleDense_At() {
	m, _ := matrix.NewDense(2, 2)

	if _, err := m.At(5, 0); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Dense.At(5,0): matrix: index out of range
}
