// Package classify: deterministic RNG for bootstrap resampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical consensus across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Safety: no panics or logging; sentinel errors live in types.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every Bootstrap call builds its
//     own stream from the seed, so concurrent calls never share state.

package classify

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// resample fills dst with uniform draws (with replacement) from src.
// src must be non-empty; callers validate before the trial loop.
// Complexity: O(len(dst)); no allocations.
func resample(dst, src []int, rng *rand.Rand) {
	for i := range dst {
		dst[i] = src[rng.Intn(len(src))]
	}
}
