// SPDX-License-Identifier: MIT

package electromagnetism

import (
	"errors"
	"fmt"
	"math"
)

// CoulombConstant is k = 1/(4πε₀) in N·m²/C².
const CoulombConstant = 8.9875517923e9

var (
	// ErrNonPositiveDistance is returned when the charge separation is not finite and > 0.
	ErrNonPositiveDistance = errors.New("electromagnetism: distance must be finite and > 0")

	// ErrNonPositiveInterval is returned when the time interval is not finite and > 0.
	ErrNonPositiveInterval = errors.New("electromagnetism: time interval must be finite and > 0")
)

// CoulombsLaw returns F = k·q1·q2 / r² in newtons. Charges are in coulombs,
// r in metres. A positive result is repulsive, a negative one attractive.
func CoulombsLaw(q1, q2, distance float64) (float64, error) {
	if !(distance > 0) || math.IsInf(distance, 1) {
		return 0, fmt.Errorf("CoulombsLaw: distance=%g: %w", distance, ErrNonPositiveDistance)
	}

	return CoulombConstant * q1 * q2 / (distance * distance), nil
}

// FaradaysLaw returns the induced EMF ε = −ΔΦ/Δt in volts for a flux change
// in webers over dt seconds (single turn; the sign follows Lenz's law).
func FaradaysLaw(fluxChange, dt float64) (float64, error) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return 0, fmt.Errorf("FaradaysLaw: dt=%g: %w", dt, ErrNonPositiveInterval)
	}

	return -fluxChange / dt, nil
}
