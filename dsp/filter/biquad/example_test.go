package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

func ExampleNewNormalized() {
	c, err := biquad.NewNormalized(0.5, 1.0, 0.5, 2.0, -0.4, 0.08)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("zeros:", c.Zeros())
	fmt.Println("poles:", c.Poles())
	// Output:
	// zeros: [0.25 0.5 0.25]
	// poles: [1 -0.2 0.04]
}

func ExampleCoefficients_PoleZeroPair() {
	// First-order lowpass: zero at Nyquist, pole at 0.2.
	c := biquad.New(0.4, 0.4, 0, -0.2, 0)

	pair := c.PoleZeroPair()
	fmt.Printf("pole=%.2f zero=%.2f stable=%v\n", real(pair.Poles[0]), real(pair.Zeros[0]), c.IsStable())
	// Output:
	// pole=0.20 zero=-1.00 stable=true
}
