// Package civil computes closed-form quantities used in everyday civil
// engineering: axial stress and strain, cantilever beam deflection, and
// brick-wall masonry estimates.
//
// Every function is pure. Inputs are SI units (newtons, metres, pascals)
// unless the parameter name says otherwise. Functions that divide by an
// input return ErrNonPositive when that divisor is not strictly positive,
// instead of returning ±Inf.
//
// Usage:
//
//	sigma, err := civil.Stress(100, 0.05) // 2000 Pa
//	n, err := civil.Bricks(civil.Wall{Length: 5, Height: 2.5}, civil.Brick{Length: 0.3, Height: 0.2, Joint: 0.01})
package civil
