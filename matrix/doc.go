// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric containers used throughout
// NaiveR: row-major float64 matrices with bounds-checked, error-returning
// element access.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 matrix with O(1) At/Set access that
//     returns sentinel errors instead of panicking on bad coordinates.
//   - Constructors (NewDense, FromRows) that validate shape up front so
//     downstream kernels never observe degenerate containers.
//   - Deterministic traversal helpers (Do, Apply) for row-major kernels.
//   - Shared validators (ValidateNotNil, ValidateVecLen, ValidateSameShape)
//     so entry boundaries fail fast on shape violations with one sentinel
//     vocabulary.
//
// Values are stored verbatim: NaN and ±Inf are legal contents, because
// log-space data legitimately holds -Inf and the estimation contract
// requires IEEE-754 propagation rather than trapping.
//
// See the examples in this package and logprob for usage patterns.
package matrix
