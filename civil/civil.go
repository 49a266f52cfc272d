// SPDX-License-Identifier: MIT

package civil

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositive indicates that an input used as a divisor or a physical size
// was zero, negative, NaN or ±Inf.
var ErrNonPositive = errors.New("civil: value must be finite and > 0")

// ErrNegative indicates that a count or thickness that may be zero was negative or not finite.
var ErrNegative = errors.New("civil: value must be finite and >= 0")

// ErrOverflow indicates a result too large for its integer return type.
var ErrOverflow = errors.New("civil: result overflows int")

// requirePositive returns ErrNonPositive, tagged with the parameter name,
// unless v is finite and strictly positive.
func requirePositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%s=%g: %w", name, v, ErrNonPositive)
	}

	return nil
}

// Stress returns σ = F / A in pascals.
func Stress(force, area float64) (float64, error) {
	if err := requirePositive("area", area); err != nil {
		return 0, fmt.Errorf("Stress: %w", err)
	}

	return force / area, nil
}

// Strain returns ε = ΔL / L (dimensionless).
func Strain(deltaLength, originalLength float64) (float64, error) {
	if err := requirePositive("originalLength", originalLength); err != nil {
		return 0, fmt.Errorf("Strain: %w", err)
	}

	return deltaLength / originalLength, nil
}

// BeamDeflection returns the tip deflection of a cantilever under an end
// point load, δ = P·L³ / (3·E·I), in metres.
//
// Inputs:
//   - load: P in newtons.
//   - length: L in metres.
//   - elasticModulus: E in pascals (see materials.Lookup).
//   - inertia: second moment of area I in m⁴.
func BeamDeflection(load, length, elasticModulus, inertia float64) (float64, error) {
	if err := requirePositive("elasticModulus", elasticModulus); err != nil {
		return 0, fmt.Errorf("BeamDeflection: %w", err)
	}
	if err := requirePositive("inertia", inertia); err != nil {
		return 0, fmt.Errorf("BeamDeflection: %w", err)
	}

	return load * length * length * length / (3 * elasticModulus * inertia), nil
}
