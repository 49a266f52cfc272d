// Package mechanical collects closed-form mechanics formulas: Newton's second
// law, moments, energy, power and work, pressure, discrete moment of inertia,
// undamped natural frequency, axial elastic deformation and the bearing
// capacity of a concrete section.
//
// Formulas that only multiply return a bare float64. Formulas that divide,
// take a square root or pair two slices validate their inputs and return an
// error wrapping ErrNonPositive or ErrLengthMismatch.
package mechanical
