package mechanical_test

import (
	"fmt"

	"github.com/katalvlaran/engmath/mechanical"
)

func ExampleNaturalFrequency() {
	// 1 kg on a 1 kN/m spring
	f, err := mechanical.NaturalFrequency(1000, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f Hz\n", f)

	// Output:
	// 5.03 Hz
}
