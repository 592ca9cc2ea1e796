package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/dsp/filter/response"
)

func ExampleDesign() {
	c, err := design.Design(design.KindLowShelf1stOrder, design.Params[float64]{GainDB: 5, Fc: 100}, 1000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("a0=%.8f a1=%.8f a2=%.0f\n", c.A0, c.A1, c.A2)
	fmt.Printf("b0=%.0f b1=%.8f b2=%.0f\n", c.B0, c.B1, c.B2)
	// Output:
	// a0=1.19086312 a1=-0.31866233 a2=0
	// b0=1 b1=-0.50952545 b2=0
}

func ExamplePeakEq() {
	c := design.PeakEq(5.0, 100, 10, 1000)

	for _, f := range []float64{90, 100, 110} {
		r := response.TrigAt(c, f, 1000)
		fmt.Printf("%3.0f Hz: %.4f dB\n", f, r.DB())
	}
	// Output:
	//  90 Hz: 1.3313 dB
	// 100 Hz: 5.0000 dB
	// 110 Hz: 1.5041 dB
}

func ExampleDesignButterworthCascade() {
	sections, err := design.DesignButterworthCascade(design.KindLowPass, 4, 1000.0, 48000.0)
	if err != nil {
		fmt.Println(err)
		return
	}

	qs, _ := design.ButterworthQFactors[float64](4)
	fmt.Printf("sections=%d q=%.4f,%.4f\n", len(sections), qs[0], qs[1])
	for _, f := range []float64{100, 1000, 10000} {
		fmt.Printf("%5.0f Hz: %.2f dB\n", f, response.CascadeTrigAt(sections, f, 48000).DB())
	}
	// Output:
	// sections=2 q=0.5412,1.3066
	//   100 Hz: -0.00 dB
	//  1000 Hz: -3.01 dB
	// 10000 Hz: -85.48 dB
}

func ExampleParseKind() {
	k, err := design.ParseKind("bell")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(k, k.UsesGain(), k.UsesQ())
	// Output:
	// peak true true
}
