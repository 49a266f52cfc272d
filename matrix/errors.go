// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Operations
// wrap with fmt.Errorf("<Op>: %w", ErrX) at the boundary; callers still use
// errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> vector length -> NaN/Inf -> numeric (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that a slice-of-rows input is empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) return this, never panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add on different shapes, Mul where a.Cols != b.Rows, a rhs whose
	// length differs from the system size, or ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix or nil vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil argument")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required,
	// either on input or in a computed solution (overflow).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when elimination meets a pivot whose magnitude is
	// at or below the configured tolerance.
	ErrSingular = errors.New("matrix: singular matrix")
)
