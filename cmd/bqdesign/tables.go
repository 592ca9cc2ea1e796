package main

import (
	"fmt"
	"io"
	"math/cmplx"
	"text/tabwriter"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

func newTable(w io.Writer, header, rule string) (*tabwriter.Writer, error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return nil, fmt.Errorf("write table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return nil, fmt.Errorf("write table header: %w", err)
	}
	return tw, nil
}

func writeCoefficients(w io.Writer, sections []biquad.Coefficients[float64]) error {
	tw, err := newTable(w,
		"Section\ta0\ta1\ta2\tb0\tb1\tb2",
		"-------\t--\t--\t--\t--\t--\t--")
	if err != nil {
		return err
	}

	for i, c := range sections {
		if _, err := fmt.Fprintf(tw, "%d\t%.10f\t%.10f\t%.10f\t%g\t%.10f\t%.10f\n",
			i, c.A0, c.A1, c.A2, c.B0, c.B1, c.B2); err != nil {
			return fmt.Errorf("write coefficient row: %w", err)
		}
	}
	return tw.Flush()
}

func writePoleZeros(w io.Writer, sections []biquad.Coefficients[float64]) error {
	tw, err := newTable(w,
		"Section\tPoles\tZeros\t|p|max\tStable",
		"-------\t-----\t-----\t------\t------")
	if err != nil {
		return err
	}

	for i, pz := range biquad.PoleZeroPairs(sections) {
		radius := max(cmplx.Abs(pz.Poles[0]), cmplx.Abs(pz.Poles[1]))
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%.6f\t%t\n",
			i, formatRoots(pz.Poles), formatRoots(pz.Zeros), radius, sections[i].IsStable()); err != nil {
			return fmt.Errorf("write pole/zero row: %w", err)
		}
	}
	return tw.Flush()
}

func writeResponse(w io.Writer, rows []responseRow) error {
	tw, err := newTable(w,
		"Frequency [Hz]\tMagnitude [dB]\tPhase [deg]",
		"--------------\t--------------\t-----------")
	if err != nil {
		return err
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%.2f\t%.4f\t%.2f\n", r.Hz, r.DB, r.Phase); err != nil {
			return fmt.Errorf("write response row: %w", err)
		}
	}
	return tw.Flush()
}

func writeKinds(w io.Writer, kinds []design.Kind) error {
	tw, err := newTable(w,
		"Kind\tOrder\tGain\tQ",
		"----\t-----\t----\t-")
	if err != nil {
		return err
	}

	for _, k := range kinds {
		order := 2
		if k.IsFirstOrder() {
			order = 1
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", k, order, yesNo(k.UsesGain()), yesNo(k.UsesQ())); err != nil {
			return fmt.Errorf("write kind row: %w", err)
		}
	}
	return tw.Flush()
}

func formatRoots(roots [2]complex128) string {
	return fmt.Sprintf("%s, %s", formatComplex(roots[0]), formatComplex(roots[1]))
}

func formatComplex(z complex128) string {
	if imag(z) == 0 {
		return fmt.Sprintf("%.4f", real(z))
	}
	return fmt.Sprintf("%.4f%+.4fi", real(z), imag(z))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
