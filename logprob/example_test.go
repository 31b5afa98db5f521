package logprob_test

import (
	"fmt"

	"github.com/mmcharchuta/NaiveR/logprob"
	"github.com/mmcharchuta/NaiveR/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEstimate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two k-mers observed across two genera.
//	  counts      = [[2, 0], [1, 3]]
//	  priors      = [0.5, 0.5]
//	  genusTotals = [4, 9]   → smoothing denominators [5, 10]
//
// Expectation:
//
//	out[0][0] = ln(2.5/5)  ≈ -0.6931
//	out[0][1] = ln(0.5/10) ≈ -2.9957
//	out[1][0] = ln(1.5/5)  ≈ -1.2040
//	out[1][1] = ln(3.5/10) ≈ -1.0498
//
// Complexity: O(K·G) time, O(K·G) memory
func ExampleEstimate() {
	counts, err := matrix.FromRows([][]float64{
		{2, 0},
		{1, 3},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	model, err := logprob.Estimate(counts, []float64{0.5, 0.5}, []float64{4, 9})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i := 0; i < model.Rows(); i++ {
		for j := 0; j < model.Cols(); j++ {
			v, _ := model.At(i, j)
			fmt.Printf("ln P(kmer %d | genus %d) = %.4f\n", i, j, v)
		}
	}
	// Output:
	// ln P(kmer 0 | genus 0) = -0.6931
	// ln P(kmer 0 | genus 1) = -2.9957
	// ln P(kmer 1 | genus 0) = -1.2040
	// ln P(kmer 1 | genus 1) = -1.0498
}
