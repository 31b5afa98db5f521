// Package classify scores query sequences against an estimated
// log-probability model and reports genus calls with confidence.
//
// The classify package provides:
//
//   - Score: per-genus summed log-probabilities for a list of k-mer indices.
//   - Posterior: numerically stable softmax confidences over log-space scores.
//   - Classify: one-call scoring, arg-max genus pick and posterior.
//   - Bootstrap: seeded resampling consensus in the style of
//     bootstrap-confidence taxonomy classifiers, with functional options
//     for trial count, sample fraction and seed.
//
// Design principles:
//   - Deterministic: a single seeded RNG stream per call (see rng.go);
//     no time-based randomness, ties always resolve to the first maximum.
//   - Strict sentinels: shape failures forward matrix package sentinels;
//     domain failures use package-local ErrNoKmers / ErrKmerOutOfRange.
//   - Hot-path discipline: the trial loop reuses score and sample buffers;
//     no hidden allocations per trial.
//
// Genera are column indices into the model matrix. Mapping an index back
// to a taxonomy name is the caller's concern; this package never sees
// names, files or reference databases.
package classify
