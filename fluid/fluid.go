// SPDX-License-Identifier: MIT

package fluid

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositiveDensity is returned when the fluid density is not finite and > 0.
var ErrNonPositiveDensity = errors.New("fluid: density must be finite and > 0")

// Bernoulli returns the static pressure at point 2 of a horizontal streamline,
// p2 = p1 + ½ρv1² − ½ρv2², in pascals. Pressures are in Pa, speeds in m/s,
// density in kg/m³ (see materials.Lookup("water")).
func Bernoulli(p1, v1, v2, density float64) (float64, error) {
	if !(density > 0) || math.IsInf(density, 1) {
		return 0, fmt.Errorf("Bernoulli: density=%g: %w", density, ErrNonPositiveDensity)
	}

	return p1 + 0.5*density*v1*v1 - 0.5*density*v2*v2, nil
}

// VolumetricFlowRate returns Q = A·v in m³/s.
func VolumetricFlowRate(area, velocity float64) float64 { return area * velocity }
