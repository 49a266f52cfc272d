// SPDX-License-Identifier: MIT

// Package matrix - Gaussian elimination solver.
//
// Purpose:
//   - Solve square systems A·x = b by forward elimination to upper-triangular
//     form followed by back-substitution.
//   - Share one elimination kernel between Solve (one rhs column) and
//     Inverse (n rhs columns = identity).
//
// Contract:
//   - Inputs are copied on entry; the caller's matrix and vector are never mutated.
//   - A pivot with |p| <= tol * (largest |entry| of its original row) fails
//     with ErrSingular and the elimination step; NaN/Inf never leaks out of a
//     successful call.
//
// Complexity quicksheet:
//   - Solve: O(n³) time, O(n²) scratch. Inverse: O(n³) time, O(n²) scratch.

package matrix

import (
	"fmt"
	"math"
)

// system is the private working copy of an elimination problem:
// n×n coefficients and n×m right-hand sides, both row-major.
type system struct {
	n, m  int
	a     []float64 // coefficients, a[i*n+j]
	b     []float64 // right-hand sides, b[i*m+c]
	scale []float64 // max |entry| of each input row; follows its row through swaps
}

// loadSystem copies the square matrix a into a fresh system with m rhs columns.
// The rhs block is left zeroed; callers fill it.
// Errors: ErrNaNInf when an entry of a is not finite.
func loadSystem(a Matrix, m int) (*system, error) {
	n := a.Rows()
	s := &system{
		n: n,
		m: m,
		a:     make([]float64, n*n),
		b:     make([]float64, n*m),
		scale: make([]float64, n),
	}

	if d, ok := a.(*Dense); ok {
		copy(s.a, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = a.At(i, j); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				s.a[i*n+j] = v
			}
		}
	}

	for idx, v := range s.a {
		if isNonFinite(v) {
			return nil, fmt.Errorf("entry (%d,%d): %w", idx/n, idx%n, ErrNaNInf)
		}
		if av := math.Abs(v); av > s.scale[idx/n] {
			s.scale[idx/n] = av
		}
	}

	return s, nil
}

// swapRows exchanges rows p and q in the coefficient and rhs blocks and
// in the row scales.
func (s *system) swapRows(p, q int) {
	s.scale[p], s.scale[q] = s.scale[q], s.scale[p]
	var k int
	rp, rq := p*s.n, q*s.n
	for k = 0; k < s.n; k++ {
		s.a[rp+k], s.a[rq+k] = s.a[rq+k], s.a[rp+k]
	}
	rp, rq = p*s.m, q*s.m
	for k = 0; k < s.m; k++ {
		s.b[rp+k], s.b[rq+k] = s.b[rq+k], s.b[rp+k]
	}
}

// eliminate reduces s to upper-triangular form in place.
// Implementation:
//   - Stage 1: for each pivot column i, optionally pick the row p ≥ i with the
//     largest |a[p][i]| and swap it into position i.
//   - Stage 2: reject the pivot if |a[i][i]| <= tol*scale[i], where scale[i]
//     is the largest |entry| of the input row now sitting at position i.
//   - Stage 3: for each row j > i, factor = a[j][i]/a[i][i]; row_j -= factor*row_i
//     over columns i..n-1, and rhs_j -= factor*rhs_i.
//
// Errors:
//   - ErrSingular, wrapped with the step index and the rejected pivot value.
func (s *system) eliminate(o Options) error {
	n, m := s.n, s.m

	var (
		i, j, k, p   int
		pivot, f, av float64
		ri, rj       int // row offsets into a
		bi, bj       int // row offsets into b
	)
	for i = 0; i < n; i++ {
		if o.pivoting == PartialPivoting {
			p = i
			pivot = math.Abs(s.a[i*n+i])
			for j = i + 1; j < n; j++ {
				if av = math.Abs(s.a[j*n+i]); av > pivot {
					p, pivot = j, av
				}
			}
			if p != i {
				s.swapRows(p, i)
			}
		}

		ri = i * n
		pivot = s.a[ri+i]
		// A zero input row has scale 0 and lands here with pivot 0.
		if math.Abs(pivot) <= o.tol*s.scale[i] {
			return fmt.Errorf("step %d: pivot %g: %w", i, pivot, ErrSingular)
		}

		bi = i * m
		for j = i + 1; j < n; j++ {
			rj = j * n
			if s.a[rj+i] == 0 {
				continue
			}
			f = s.a[rj+i] / pivot
			for k = i; k < n; k++ {
				s.a[rj+k] -= f * s.a[ri+k]
			}
			bj = j * m
			for k = 0; k < m; k++ {
				s.b[bj+k] -= f * s.b[bi+k]
			}
		}
	}

	return nil
}

// backSubstitute solves the upper-triangular system for every rhs column.
// Returns x laid out like b (x[i*m+c]).
// Errors: ErrNaNInf if any component overflowed.
func (s *system) backSubstitute() ([]float64, error) {
	n, m := s.n, s.m
	x := make([]float64, n*m)

	var (
		i, j, c int
		sum     float64
		ri      int
	)
	for c = 0; c < m; c++ {
		for i = n - 1; i >= 0; i-- {
			ri = i * n
			sum = ZeroSum
			for j = i + 1; j < n; j++ {
				sum += s.a[ri+j] * x[j*m+c]
			}
			x[i*m+c] = (s.b[i*m+c] - sum) / s.a[ri+i]
			if isNonFinite(x[i*m+c]) {
				return nil, fmt.Errorf("component %d: %w", i, ErrNaNInf)
			}
		}
	}

	return x, nil
}

// Solve returns x such that A·x = b for a square, non-singular A.
// Implementation:
//   - Stage 1: ValidateSystem (nil → square → len(b)==n → finite b).
//   - Stage 2: copy A and b into a private system (finite A enforced).
//   - Stage 3: forward elimination (partial pivoting unless WithNoPivoting).
//   - Stage 4: back-substitution.
//
// Behavior highlights:
//   - Pure: a and b are never mutated.
//   - Zero or near-zero pivots are reported, not divided by.
//
// Inputs:
//   - a: n×n coefficient matrix.
//   - b: right-hand side of length n.
//   - opts: WithNoPivoting, WithPivoting, WithPivotTolerance.
//
// Returns:
//   - []float64: solution of length n.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (before any arithmetic).
//   - ErrNaNInf (non-finite input or overflowed solution).
//   - ErrSingular (pivot below tolerance).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	s, err := loadSystem(a, 1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	copy(s.b, b)

	if err = s.eliminate(o); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := s.backSubstitute()
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// SolveRows is Solve for the slice-of-rows representation.
// Ragged or empty rows fail with ErrDimensionMismatch / ErrInvalidDimensions.
func SolveRows(rows [][]float64, b []float64, opts ...Option) ([]float64, error) {
	a, err := NewFromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return Solve(a, b, opts...)
}

// Inverse returns A⁻¹ by eliminating A against the n×n identity.
// Same options, validation order and errors as Solve (minus the rhs checks).
// Complexity: Time O(n³), Space O(n²).
func Inverse(a Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	s, err := loadSystem(a, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		s.b[i*n+i] = 1.0
	}

	if err = s.eliminate(o); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	x, err := s.backSubstitute()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	// x is n×n row-major with column c solving A·x_c = e_c, i.e. exactly A⁻¹.
	copy(inv.data, x)

	return inv, nil
}
