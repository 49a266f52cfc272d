package civil_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/engmath/civil"
)

// ExampleBricks estimates bricks and bricklaying days for a 5 m × 2.5 m wall.
func ExampleBricks() {
	n, err := civil.Bricks(
		civil.Wall{Length: 5, Height: 2.5},
		civil.Brick{Length: 0.3, Height: 0.2, Joint: 0.01},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	days, _ := civil.MasonryTime(n, 450)
	fmt.Printf("%d bricks, %.0f day(s)\n", n, math.Ceil(days))

	// Output:
	// 193 bricks, 1 day(s)
}
