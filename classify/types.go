package classify

import "errors"

// ErrNoKmers is returned when the query k-mer index list is empty; there is
// nothing to score, and returning flat zero scores would be misleading.
var ErrNoKmers = errors.New("classify: no k-mer indices to score")

// ErrKmerOutOfRange is returned when a k-mer index falls outside the model
// matrix rows; the model was built for a different k or the index is corrupt.
var ErrKmerOutOfRange = errors.New("classify: k-mer index outside model rows")

// Result holds the outcome of classifying one query against a model.
type Result struct {
	// Genus is the winning column index. When several genera share the
	// maximum score, the first (lowest index) wins, deterministically.
	Genus int

	// Scores holds the per-genus summed log-probabilities, length G.
	Scores []float64

	// Posterior holds softmax-normalized confidences, length G, summing
	// to 1 whenever at least one score is finite.
	Posterior []float64
}

// Consensus holds the outcome of bootstrap classification.
type Consensus struct {
	// Genus is the most frequent call across all trials.
	Genus int

	// Agreement is the fraction of trials agreeing with Genus, in (0, 1].
	Agreement float64

	// Trials is the number of bootstrap trials performed.
	Trials int
}
