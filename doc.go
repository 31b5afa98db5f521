// Package naiver is the numeric core of a naive-Bayes taxonomic
// classifier for DNA sequences — Laplace-smoothed log-probability
// estimation over k-mer/genus count data, plus the encoding and scoring
// routines that feed and consume it.
//
// 🚀 What is NaiveR?
//
//	A small, deterministic library that brings together:
//		• Dense containers: bounds-checked row-major float64 matrices
//		• Model estimation: smoothed ln((count+prior)/(total+1)) matrices
//		• Sequence encoding: ACGT k-mers → base-4 indices
//		• Classification: per-genus log-probability scoring, posteriors,
//		  and bootstrap consensus with seeded, reproducible resampling
//
// ✨ Why this shape?
//
//   - Pure functions – every call is synchronous, stateless, allocation-owned
//   - Safe by contract – sentinel errors instead of panics or unchecked access
//   - IEEE-754 faithful – ln(0) = -Inf and NaN propagate, never trapped
//   - Deterministic – bit-identical reruns; seeded randomness only
//
// Everything is organized under four subpackages:
//
//	matrix/   — Dense float64 matrix with error-returning At/Set and validators
//	logprob/  — the estimator: counts + priors + genus totals → log-probability matrix
//	kmer/     — base-4 k-mer index encoding of DNA sequences
//	classify/ — scoring, posteriors and bootstrap consensus over an estimated model
//
// Canonical pipeline:
//
//	counts, priors, totals ──logprob.Estimate──▶ model
//	query sequence ──kmer.Indices──▶ k-mer indices
//	model + indices ──classify.Classify / classify.Bootstrap──▶ genus call
//
// Dive into examples/ for a runnable end-to-end scenario.
//
//	go get github.com/mmcharchuta/NaiveR
package naiver
