// Package matrix provides a small dense linear-algebra toolkit: a row-major
// Dense type, element-wise addition, multiplication, matrix-vector products,
// and a Gaussian-elimination solver for square systems A·x = b.
//
// What & Why:
//
//	Engineering formulas occasionally need to solve a handful of coupled
//	linear equations (statics, nodal analysis, small stiffness systems).
//	Solve covers that with forward elimination and back-substitution,
//	partial pivoting by default, and explicit singularity detection instead
//	of silently propagating NaN/Inf.
//
// Guarantees:
//
//   - Inputs are never mutated; every operation works on copies and
//     returns freshly allocated results.
//   - No panics on user input; all failures are sentinel errors
//     (ErrNonSquare, ErrDimensionMismatch, ErrSingular, ...) matched via errors.Is.
//   - Deterministic loop orders; identical inputs give bitwise-identical outputs.
//
// Usage:
//
//	x, err := matrix.SolveRows([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	// x ≈ [0.8 1.4]
//
//	// pivoting-free elimination, still guarded against zero pivots
//	x, err = matrix.SolveRows(rows, b, matrix.WithNoPivoting())
//
// Complexity:
//
//	Add: O(r*c). Mul: O(r*n*c). Solve: O(n³) time, O(n²) scratch memory.
//	Inverse: O(n³), one elimination over the augmented identity.
package matrix
