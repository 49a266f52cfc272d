// Package engmath is a library of small, stateless engineering formulas
// with a dense linear-system solver at its core.
//
// What is inside?
//
//	matrix/           - Dense matrices, Add/Sub/Mul/MatVec, Gaussian elimination (Solve, Inverse)
//	civil/            - stress, strain, cantilever deflection, brick count & masonry time
//	mechanical/       - force, moment, energy, power, work, pressure, inertia, natural frequency,
//	                    elastic deformation, concrete bearing capacity
//	electromagnetism/ - Coulomb's law, Faraday's law
//	fluid/            - Bernoulli's equation, volumetric flow rate
//	materials/        - embedded YAML catalog of reference material properties
//
// Conventions shared by every package:
//
//   - SI units in and out, unless a parameter name says otherwise (e.g. strengthMPa).
//   - Pure functions: no global mutable state, inputs never mutated.
//   - Divisors are checked before dividing and rejected with a package sentinel
//     error (match with errors.Is), so no formula divides by zero. Other inputs
//     are not range-checked: a NaN or ±Inf numerator propagates per IEEE 754.
//   - matrix rejects NaN/Inf on input and never returns them from a solve.
//
// Quick example:
//
//	x, err := matrix.SolveRows([][]float64{{2, 1}, {1, 3}}, []float64{3, 5}) // [0.8 1.4]
//
//	go get github.com/katalvlaran/engmath
package engmath
