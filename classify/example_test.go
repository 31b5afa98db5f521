package classify_test

import (
	"fmt"

	"github.com/mmcharchuta/NaiveR/classify"
	"github.com/mmcharchuta/NaiveR/logprob"
	"github.com/mmcharchuta/NaiveR/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleClassify
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The worked estimator scenario feeds classification: counts [[2,0],[1,3]]
//	with priors 0.5 and genus totals [4, 9] give the model
//	  [[ln 0.5,  ln 0.05],
//	   [ln 0.3,  ln 0.35]]
//	and a query consisting of k-mer 0 alone.
//
// Expectation:
//
//	scores = [ln 0.5, ln 0.05]; softmax = [0.5/0.55, 0.05/0.55] ≈ [0.909, 0.091],
//	so genus 0 wins.
func ExampleClassify() {
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

	res, err := classify.Classify(model, []int{0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("genus: %d\n", res.Genus)
	fmt.Printf("posterior: [%.3f %.3f]\n", res.Posterior[0], res.Posterior[1])
	// Output:
	// genus: 0
	// posterior: [0.909 0.091]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBootstrap
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Counts [[4,0],[3,1]] with the same priors and totals put genus 0 ahead
//	on both k-mers (ln 0.9 vs ln 0.05, ln 0.7 vs ln 0.15), so every
//	resample of the query agrees and the consensus saturates.
func ExampleBootstrap() {
	counts, err := matrix.FromRows([][]float64{
		{4, 0},
		{3, 1},
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

	cons, err := classify.Bootstrap(model, []int{0, 1, 0, 1, 1, 0},
		classify.WithTrials(50), classify.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("genus %d with %.2f agreement over %d trials\n",
		cons.Genus, cons.Agreement, cons.Trials)
	// Output:
	// genus 0 with 1.00 agreement over 50 trials
}
