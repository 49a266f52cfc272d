// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap again with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square → VecLen).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Errors: ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n entries.
// Errors: ErrNilMatrix (nil slice), ErrDimensionMismatch (length).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec ensures every entry of x is finite.
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec: index %d", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible is the composite NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d",
			a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem is the composite precondition of Solve:
// NotNil(a) → Square(a) → VecLen(b, n) → FiniteVec(b).
// Matrix entries are checked for finiteness while they are copied.
func ValidateSystem(a Matrix, b []float64) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateFiniteVec(b); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}
