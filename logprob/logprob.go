package logprob

import (
	"fmt"
	"math"

	"github.com/mmcharchuta/NaiveR/matrix"
)

// Estimate — smoothed log-probability estimation
//
// Description:
//
//	For every k-mer i and genus j, the conditional probability of seeing
//	k-mer i in genus j is estimated from raw counts with Laplace smoothing
//	and returned in natural-log space:
//
//	  denom[j]  = trunc(genusTotals[j]) + 1
//	  out[i][j] = ln( (counts[i][j] + priors[i]) / denom[j] )
//
// Algorithm Outline:
//  1. Validate shapes: counts non-nil, len(priors) == K, len(genusTotals) == G.
//     Numeric values are NOT validated; see Edge behavior below.
//  2. Compute denom[j] = trunc(genusTotals[j]) + 1 once per genus column.
//     The truncation toward zero of a fractional total is exact, intentional
//     behavior: 4.9 smooths to 5, not 6. Rounding instead would silently
//     change every probability in that column.
//  3. Fill a fresh K×G output in one deterministic row-major pass.
//
// Edge behavior (IEEE-754, never trapped):
//   - counts[i][j] + priors[i] == 0 → ln(0)  = -Inf
//   - counts[i][j] + priors[i] <  0 → ln(<0) = NaN
//   - denom[j] == 0 (negative total) → division by zero → ±Inf/NaN
//   - non-finite totals propagate: trunc(NaN) = NaN, trunc(+Inf) = +Inf
//
// Guarantees:
//   - inputs are never mutated; the output is freshly allocated per call
//   - deterministic: identical inputs produce bit-identical output
//   - each cell is independent; no accumulator is shared across cells
//
// Complexity:
//
//	Time   = O(K·G)
//	Memory = O(K·G) output + O(G) denominators
//
// Errors:
//   - matrix.ErrNilMatrix         — nil counts matrix or nil vector argument.
//   - matrix.ErrDimensionMismatch — priors length ≠ K or genusTotals length ≠ G.
func Estimate(counts *matrix.Dense, priors, genusTotals []float64) (*matrix.Dense, error) {
	// Stage 1 - shape validation; fail fast, never index out of bounds.
	if err := matrix.ValidateNotNil(counts); err != nil {
		return nil, fmt.Errorf("Estimate: counts: %w", err)
	}
	kmers, genera := counts.Shape()
	if err := matrix.ValidateVecLen(priors, kmers); err != nil {
		return nil, fmt.Errorf("Estimate: priors: %w", err)
	}
	if err := matrix.ValidateVecLen(genusTotals, genera); err != nil {
		return nil, fmt.Errorf("Estimate: genusTotals: %w", err)
	}

	// Stage 2 - smoothing denominators, once per genus column.
	denoms := denominators(genusTotals)

	// Stage 3 - kernel: fresh output, one deterministic row-major pass.
	out, err := matrix.NewDense(kmers, genera)
	if err != nil {
		return nil, fmt.Errorf("Estimate: output: %w", err)
	}
	out.Apply(func(i, j int, _ float64) float64 {
		c, _ := counts.At(i, j) // indices are valid by construction
		return math.Log((c + priors[i]) / denoms[j])
	})

	return out, nil
}

// denominators returns trunc(total)+1 for each genus total.
// math.Trunc keeps the computation in float64 so NaN and ±Inf totals
// propagate per IEEE-754 instead of hitting float→int conversion limits.
// Complexity: O(G).
func denominators(genusTotals []float64) []float64 {
	denoms := make([]float64, len(genusTotals))
	for j, total := range genusTotals {
		denoms[j] = math.Trunc(total) + 1
	}

	return denoms
}
