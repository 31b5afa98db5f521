// Package logprob computes the Laplace-smoothed, log-transformed conditional
// probability matrix at the heart of naive-Bayes taxonomic classification.
//
// 🚀 What does it compute?
//
//	Given a K×G matrix of k-mer counts per genus, per-k-mer prior
//	pseudo-counts, and per-genus sequence totals, Estimate produces the
//	K×G matrix of natural-log conditional probabilities
//
//	  out[i][j] = ln( (counts[i][j] + priors[i]) / (trunc(totals[j]) + 1) )
//
//	used downstream to score query sequences against genera.
//
// ✨ Key behavior:
//   - one synchronous pure pass, O(K·G) time, fresh output each call
//   - genus totals are truncated toward zero before the +1 smoothing term;
//     this is intentional, preserved behavior (4.9 → denominator 5, not 6)
//   - shape violations fail fast with matrix sentinels before any cell is
//     touched; numeric edge cases are never trapped: ln(0) = -Inf,
//     ln(negative) = NaN, and division by a zero denominator follow
//     IEEE-754 and land in the output verbatim
//   - deterministic: identical inputs give bit-identical output
//
// ⚙️ Usage:
//
//	import "github.com/mmcharchuta/NaiveR/logprob"
//
//	model, err := logprob.Estimate(counts, priors, genusTotals)
//	if err != nil { ... } // matrix.ErrNilMatrix / matrix.ErrDimensionMismatch
//
// Performance:
//
//   - Time:   O(K·G)
//   - Memory: O(K·G) for the freshly allocated output
//
// See examples in example_test.go and the runnable demo under examples/.
package logprob
