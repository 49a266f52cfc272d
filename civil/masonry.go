// SPDX-License-Identifier: MIT

package civil

import (
	"fmt"
	"math"
)

// Wall is the face of a wall to be built, in metres.
type Wall struct {
	Length float64
	Height float64
}

// Brick describes a brick face and the mortar joint laid around it, in metres.
type Brick struct {
	Length float64
	Height float64
	Joint  float64 // mortar joint thickness, >= 0
}

// Bricks returns the number of bricks needed to cover the wall face:
// ceil(L·H / ((l+j)·(h+j))). Each brick is counted with one joint on its
// length and one on its height. A count that int cannot hold fails with
// ErrOverflow.
func Bricks(w Wall, b Brick) (int, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"wall.Length", w.Length},
		{"wall.Height", w.Height},
		{"brick.Length", b.Length},
		{"brick.Height", b.Height},
	} {
		if err := requirePositive(p.name, p.v); err != nil {
			return 0, fmt.Errorf("Bricks: %w", err)
		}
	}
	if !(b.Joint >= 0) || math.IsInf(b.Joint, 1) {
		return 0, fmt.Errorf("Bricks: brick.Joint=%g: %w", b.Joint, ErrNegative)
	}

	wallArea := w.Length * w.Height
	brickArea := (b.Length + b.Joint) * (b.Height + b.Joint)
	q := math.Ceil(wallArea / brickArea)
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold.
	if !(q < float64(math.MaxInt)) {
		return 0, fmt.Errorf("Bricks: %g bricks: %w", q, ErrOverflow)
	}

	return int(q), nil
}

// MasonryTime returns the number of working days needed to lay bricks at
// bricksPerDay. The result is fractional; round up for scheduling.
func MasonryTime(bricks int, bricksPerDay float64) (float64, error) {
	if bricks < 0 {
		return 0, fmt.Errorf("MasonryTime: bricks=%d: %w", bricks, ErrNegative)
	}
	if err := requirePositive("bricksPerDay", bricksPerDay); err != nil {
		return 0, fmt.Errorf("MasonryTime: %w", err)
	}

	return float64(bricks) / bricksPerDay, nil
}
