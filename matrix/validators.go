// SPDX-License-Identifier: MIT
// Package matrix: shared entry-boundary validators.
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//  - Return sentinel errors under a short validator tag so call sites can
//    wrap uniformly and tests can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on the error path.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Keeps error labeling consistent across all validators.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
// Nil vectors are rejected to avoid subtle bugs in paired matrix/vector
// routines; the nil sentinel is reused for "nil argument".
//
// Returns ErrNilMatrix for nil x, ErrDimensionMismatch for a wrong length.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are non-nil (callers compose with ValidateNotNil).
//
// Returns ErrDimensionMismatch tagged with the differing axis.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}
