// Package kmer encodes DNA sequences into base-4 k-mer indices, the row
// coordinates of the k-mer/genus matrices used across NaiveR.
//
// The kmer package provides:
//
//   - A fixed 2-bit alphabet (A=0, C=1, G=2, T=3, case-insensitive) so a
//     k-mer maps to an integer in [0, 4^k) — exactly the row index of the
//     count and log-probability matrices.
//   - Indices, a single-pass rolling scan that emits the index of every
//     length-k window of a sequence and drops windows containing bytes
//     outside the alphabet (ambiguity codes, gaps).
//   - Index for one k-mer, Unique for presence semantics, and NumKmers
//     for sizing model matrices (K = 4^k).
//
// Encoding is pure and deterministic; nothing here reads files or touches
// taxonomy. Sequences are treated as raw bytes, so inputs must be plain
// ASCII nucleotide text.
package kmer
