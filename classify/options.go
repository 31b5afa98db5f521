// Package classify: functional configuration for Bootstrap.
// This file defines the Option type, the documented Default* constants
// (single source of truth for zero-value behavior) and the WithX
// constructors, which validate eagerly and panic only on programmer error.

package classify

import "math"

// Defaults — single source of truth for Bootstrap's zero-value behavior.
const (
	// DefaultTrials is the number of bootstrap resampling trials.
	DefaultTrials = 100

	// DefaultSampleFraction is the share of the query's k-mer list drawn
	// (with replacement) per trial. One eighth is the established ratio
	// for bootstrap-confidence taxonomy classifiers.
	DefaultSampleFraction = 0.125
)

// Stable panic messages for option constructors (no magic strings).
const (
	panicTrialsInvalid         = "classify: WithTrials: trials must be >= 1"
	panicSampleFractionInvalid = "classify: WithSampleFraction: fraction must be in (0, 1]"
)

// Option mutates bootstrap options. Safe to apply repeatedly; later options
// win. Constructors panic only on nonsensical values (programmer error) —
// runtime input problems are reported as sentinel errors, never panics.
type Option func(*options)

// options is the resolved Bootstrap configuration. Fields stay unexported
// so the Default* constants remain the single source of truth; public
// entry points accept ...Option and resolve them via gatherOptions.
type options struct {
	trials         int     // DefaultTrials
	sampleFraction float64 // DefaultSampleFraction
	seed           int64   // 0 ⇒ fixed default stream, see rng.go
}

// WithTrials sets the number of bootstrap trials.
// Panics with a stable message when n < 1.
// Complexity: O(1).
func WithTrials(n int) Option {
	if n < 1 {
		panic(panicTrialsInvalid)
	}

	return func(o *options) { o.trials = n }
}

// WithSampleFraction sets the share of the query's k-mer list resampled per
// trial. The per-trial sample size truncates toward zero but never drops
// below one k-mer, so any fraction in (0, 1] is meaningful.
// Panics with a stable message when f is NaN or outside (0, 1].
// Complexity: O(1).
func WithSampleFraction(f float64) Option {
	if math.IsNaN(f) || f <= 0 || f > 1 {
		panic(panicSampleFractionInvalid)
	}

	return func(o *options) { o.sampleFraction = f }
}

// WithSeed fixes the resampling RNG seed. Seed 0 selects the stable internal
// default (see rng.go), so the zero value stays reproducible; any other
// value is used verbatim.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// gatherOptions resolves user setters against the documented defaults,
// last-writer-wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) options {
	o := options{
		trials:         DefaultTrials,
		sampleFraction: DefaultSampleFraction,
		seed:           0, // rngFromSeed maps 0 to the fixed default seed
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
