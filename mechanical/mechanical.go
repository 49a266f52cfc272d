// SPDX-License-Identifier: MIT

package mechanical

import (
	"errors"
	"fmt"
	"math"
)

// StandardGravity is g in m/s², used to convert a force capacity to mass.
const StandardGravity = 9.81

// pascalsPerMegapascal converts MPa to Pa.
const pascalsPerMegapascal = 1e6

var (
	// ErrNonPositive indicates a divisor or physical size that was not finite and > 0.
	ErrNonPositive = errors.New("mechanical: value must be finite and > 0")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("mechanical: slice length mismatch")
)

func requirePositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%s=%g: %w", name, v, ErrNonPositive)
	}

	return nil
}

// Force returns F = m·a in newtons.
func Force(mass, acceleration float64) float64 { return mass * acceleration }

// Moment returns M = F·d in newton-metres.
func Moment(force, distance float64) float64 { return force * distance }

// KineticEnergy returns E = ½·m·v² in joules.
func KineticEnergy(mass, velocity float64) float64 { return 0.5 * mass * velocity * velocity }

// Power returns P = F·v in watts.
func Power(force, velocity float64) float64 { return force * velocity }

// Work returns W = F·d·cos(θ) in joules, with θ in degrees between the force
// and the displacement.
func Work(force, distance, angleDeg float64) float64 {
	return force * distance * math.Cos(angleDeg*math.Pi/180)
}

// Pressure returns p = F / A in pascals.
func Pressure(force, area float64) (float64, error) {
	if err := requirePositive("area", area); err != nil {
		return 0, fmt.Errorf("Pressure: %w", err)
	}

	return force / area, nil
}

// MomentOfInertia returns I = Σ mᵢ·rᵢ² for point masses at distances rᵢ
// from the axis, in kg·m². Both slices must have the same length; empty
// input yields 0.
func MomentOfInertia(masses, distances []float64) (float64, error) {
	if len(masses) != len(distances) {
		return 0, fmt.Errorf("MomentOfInertia: %d masses, %d distances: %w",
			len(masses), len(distances), ErrLengthMismatch)
	}
	var sum float64
	for i := range masses {
		sum += masses[i] * distances[i] * distances[i]
	}

	return sum, nil
}

// NaturalFrequency returns the undamped natural frequency of a
// spring-mass system, f = (1/2π)·√(k/m), in hertz.
func NaturalFrequency(stiffness, mass float64) (float64, error) {
	if err := requirePositive("stiffness", stiffness); err != nil {
		return 0, fmt.Errorf("NaturalFrequency: %w", err)
	}
	if err := requirePositive("mass", mass); err != nil {
		return 0, fmt.Errorf("NaturalFrequency: %w", err)
	}

	return math.Sqrt(stiffness/mass) / (2 * math.Pi), nil
}

// ElasticDeformation returns the axial elongation δ = F·L / (E·A) in metres.
func ElasticDeformation(force, length, elasticModulus, area float64) (float64, error) {
	if err := requirePositive("elasticModulus", elasticModulus); err != nil {
		return 0, fmt.Errorf("ElasticDeformation: %w", err)
	}
	if err := requirePositive("area", area); err != nil {
		return 0, fmt.Errorf("ElasticDeformation: %w", err)
	}

	return force * length / (elasticModulus * area), nil
}

// ConcreteResistance returns the mass in kilograms a concrete section can
// carry in pure compression: fc [MPa] · 1e6 · A [m²] / g.
func ConcreteResistance(strengthMPa, area float64) (float64, error) {
	if err := requirePositive("strengthMPa", strengthMPa); err != nil {
		return 0, fmt.Errorf("ConcreteResistance: %w", err)
	}
	if err := requirePositive("area", area); err != nil {
		return 0, fmt.Errorf("ConcreteResistance: %w", err)
	}
	capacity := strengthMPa * pascalsPerMegapascal * area // N

	return capacity / StandardGravity, nil
}
