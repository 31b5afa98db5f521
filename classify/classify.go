package classify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mmcharchuta/NaiveR/matrix"
)

// validateQuery runs the shared entry checks for all scoring operations:
// non-nil model, non-empty k-mer list, and every index naming a model row.
// Failing fast here means the kernels below never observe a bad index, so
// in-loop row gathers cannot fail.
// Errors: matrix.ErrNilMatrix, ErrNoKmers, ErrKmerOutOfRange (wrapped with
// the offending position, index and row count).
// Complexity: O(len(kmers)).
func validateQuery(model *matrix.Dense, kmers []int) error {
	if err := matrix.ValidateNotNil(model); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if len(kmers) == 0 {
		return ErrNoKmers
	}
	rows := model.Rows()
	for m, idx := range kmers {
		if idx < 0 || idx >= rows {
			return fmt.Errorf("kmers[%d]=%d, model has %d rows: %w", m, idx, rows, ErrKmerOutOfRange)
		}
	}

	return nil
}

// accumulate adds the model row of every k-mer index into scores.
// scores must be zeroed and of length model.Cols(); indices must be
// pre-validated by validateQuery.
// Complexity: O(len(kmers)·G); no allocations.
func accumulate(model *matrix.Dense, kmers []int, scores []float64) {
	for _, idx := range kmers {
		row, _ := model.RowView(idx) // index valid by precondition
		floats.Add(scores, row)
	}
}

// Score returns the per-genus summed log-probabilities of a query:
// scores[g] = Σ over kmers of model[kmer][g]. In log space the sum is the
// naive-Bayes joint probability of observing all the query's k-mers under
// genus g. Repeated indices weigh each occurrence; pass kmer.Unique(...)
// first for presence/absence semantics.
//
// -Inf model cells (zero count, zero prior) flow into the sums per
// IEEE-754 and simply sink that genus; nothing is trapped.
//
// Errors: matrix.ErrNilMatrix for a nil model, ErrNoKmers for an empty
// query, ErrKmerOutOfRange for an index outside the model rows.
// Complexity: O(len(kmers)·G) time, O(G) memory.
func Score(model *matrix.Dense, kmers []int) ([]float64, error) {
	if err := validateQuery(model, kmers); err != nil {
		return nil, fmt.Errorf("Score: %w", err)
	}

	scores := make([]float64, model.Cols())
	accumulate(model, kmers, scores)

	return scores, nil
}

// Posterior converts log-space scores into softmax confidences:
// post[g] = exp(scores[g] - LogSumExp(scores)). The LogSumExp shift keeps
// the transform stable whenever at least one score is finite, in which
// case the result sums to 1 and -Inf scores get exactly zero mass.
// Degenerate inputs (all -Inf, or any NaN/+Inf score) propagate NaN per
// IEEE-754, never trapped. An empty input yields an empty slice.
// Complexity: O(G) time and memory.
func Posterior(scores []float64) []float64 {
	post := make([]float64, len(scores))
	if len(scores) == 0 {
		return post
	}

	lse := floats.LogSumExp(scores)
	for g, s := range scores {
		post[g] = math.Exp(s - lse)
	}

	return post
}

// Classify scores the query and reports the winning genus together with
// the raw scores and the posterior confidences.
// When several genera share the maximum score, the lowest genus index
// wins, deterministically.
//
// Errors: those of Score.
// Complexity: O(len(kmers)·G) time, O(G) memory.
func Classify(model *matrix.Dense, kmers []int) (Result, error) {
	if err := validateQuery(model, kmers); err != nil {
		return Result{}, fmt.Errorf("Classify: %w", err)
	}

	scores := make([]float64, model.Cols())
	accumulate(model, kmers, scores)

	return Result{
		Genus:     floats.MaxIdx(scores), // first maximum wins ties
		Scores:    scores,
		Posterior: Posterior(scores),
	}, nil
}

// Bootstrap measures how stable a genus call is under resampling of the
// query. Each trial draws a fraction of the k-mer list with replacement,
// classifies the resample, and the consensus is the most frequent call
// across trials.
//
// Stage 1 (validate): the same checks as Score, once, before any trial.
// Stage 2 (resolve): functional options over the Default* constants; the
// RNG stream follows the seed policy in rng.go (seed 0 ⇒ fixed default).
// Stage 3 (trials): resample → score → arg-max, tallied per genus. The
// sample and score buffers are reused; no per-trial allocations.
// Stage 4 (consensus): the genus with the most trial wins; ties resolve
// to the lowest genus index. Agreement is its share of trials, in (0, 1].
//
// Identical model, k-mers, options and seed ⇒ identical Consensus.
//
// Errors: those of Score.
// Complexity: O(T·S·G) time for T trials and per-trial sample size
// S = max(1, ⌊fraction·len(kmers)⌋); O(S + G) memory.
func Bootstrap(model *matrix.Dense, kmers []int, opts ...Option) (Consensus, error) {
	// Stage 1 - validate the full query up front so trials cannot fail.
	if err := validateQuery(model, kmers); err != nil {
		return Consensus{}, fmt.Errorf("Bootstrap: %w", err)
	}

	// Stage 2 - resolve options and the deterministic RNG stream.
	o := gatherOptions(opts...)
	rng := rngFromSeed(o.seed)

	// Per-trial sample size: the fraction truncates, the floor is one k-mer.
	size := int(o.sampleFraction * float64(len(kmers)))
	if size < 1 {
		size = 1
	}

	// Stage 3 - trial loop over reused buffers.
	genera := model.Cols()
	sample := make([]int, size)
	scores := make([]float64, genera)
	tally := make([]float64, genera)
	for trial := 0; trial < o.trials; trial++ {
		resample(sample, kmers, rng)
		for g := range scores {
			scores[g] = 0
		}
		accumulate(model, sample, scores)
		tally[floats.MaxIdx(scores)]++
	}

	// Stage 4 - consensus call; first maximum wins ties.
	winner := floats.MaxIdx(tally)

	return Consensus{
		Genus:     winner,
		Agreement: tally[winner] / float64(o.trials),
		Trials:    o.trials,
	}, nil
}
