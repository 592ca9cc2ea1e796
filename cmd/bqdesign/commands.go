package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/dsp/filter/response"
)

// sweepFlags select the frequencies a response table is printed for.
type sweepFlags struct {
	Points int     `help:"Number of response points." default:"12"`
	Linear bool    `help:"Space response points linearly instead of logarithmically."`
	MinHz  float64 `name:"min-hz" help:"Lowest response frequency in Hz." default:"20"`
	MaxHz  float64 `name:"max-hz" help:"Highest response frequency in Hz (0 for Nyquist, capped at Nyquist)." default:"0"`
}

func (s sweepFlags) frequencies(fs float64) ([]float64, error) {
	hi := fs / 2
	if s.MaxHz > 0 {
		hi = core.Clamp(s.MaxHz, 0, fs/2)
	}
	if s.Linear {
		return response.LinearFrequencies(s.Points, s.MinHz, hi)
	}
	return response.LogFrequencies(s.Points, s.MinHz, hi)
}

type designCmd struct {
	Kind     string  `arg:"" help:"Filter kind (see the kinds command)."`
	Fc       float64 `help:"Corner or center frequency in Hz." default:"1000"`
	Fs       float64 `help:"Sample rate in Hz." default:"48000"`
	Gain     float64 `help:"Gain in dB for peak and shelving kinds." default:"0"`
	Q        float64 `help:"Quality factor." default:"0.7071067811865476"`
	Strategy string  `help:"Evaluation strategy." enum:"complex,trig" default:"trig"`
	Grid     bool    `help:"Evaluate on the uniform FFT grid; --points must be a power of two."`
	Workers  int     `help:"Batch evaluation workers (0 for GOMAXPROCS)." default:"0"`

	Sweep sweepFlags `embed:""`
}

func (c *designCmd) Run(rc *runContext) error {
	kind, err := design.ParseKind(c.Kind)
	if err != nil {
		return err
	}

	params := design.Params[float64]{GainDB: c.Gain, Fc: c.Fc, Q: c.Q}
	coeffs, err := design.Design(kind, params, c.Fs)
	if err != nil {
		return err
	}
	rc.log.Debug("designed section", "kind", kind, "fc", c.Fc, "fs", c.Fs, "coefficients", coeffs)

	printTitle(rc.out, fmt.Sprintf("%s @ %g Hz", kind, c.Fc))
	printKeyValue(rc.out, "Sample rate", fmt.Sprintf("%g Hz", c.Fs))
	if kind.UsesQ() {
		printKeyValue(rc.out, "Q", fmt.Sprintf("%g", c.Q))
	}
	if kind.UsesGain() {
		printKeyValue(rc.out, "Gain", fmt.Sprintf("%g dB", c.Gain))
	}

	printSection(rc.out, "Coefficients")
	if err := writeCoefficients(rc.out, []biquad.Coefficients[float64]{coeffs}); err != nil {
		return err
	}

	printSection(rc.out, "Poles and zeros")
	if err := writePoleZeros(rc.out, []biquad.Coefficients[float64]{coeffs}); err != nil {
		return err
	}

	rows, err := c.response(rc, coeffs)
	if err != nil {
		return err
	}

	printSection(rc.out, "Response")
	return writeResponse(rc.out, rows)
}

func (c *designCmd) response(rc *runContext, coeffs biquad.Coefficients[float64]) ([]responseRow, error) {
	if c.Grid {
		h, err := response.Grid(coeffs.Zeros(), coeffs.Poles(), c.Sweep.Points)
		if err != nil {
			return nil, err
		}
		rc.log.Debug("evaluated fft grid", "bins", len(h))
		return complexRows(response.GridFrequencies(c.Sweep.Points, c.Fs), h), nil
	}

	freqs, err := c.Sweep.frequencies(c.Fs)
	if err != nil {
		return nil, err
	}

	eval := response.NewEvaluator[float64](evalOptions(c.Fs, c.Workers)...)
	rc.log.Debug("evaluating response", "strategy", c.Strategy, "points", len(freqs), "workers", eval.Config().Workers)

	if c.Strategy == "complex" {
		return complexRows(freqs, eval.BiquadComplex(coeffs, freqs)), nil
	}
	return resultRows(freqs, eval.BiquadTrig(coeffs, freqs)), nil
}

type butterworthCmd struct {
	Type     string  `arg:"" help:"Response type." enum:"lp,hp,lowpass,highpass"`
	Order    int     `help:"Filter order." default:"4"`
	Fc       float64 `help:"Cutoff frequency in Hz." default:"1000"`
	Fs       float64 `help:"Sample rate in Hz." default:"48000"`
	Strategy string  `help:"Evaluation strategy." enum:"complex,trig" default:"complex"`
	Workers  int     `help:"Batch evaluation workers (0 for GOMAXPROCS)." default:"0"`

	Sweep sweepFlags `embed:""`
}

func (c *butterworthCmd) Run(rc *runContext) error {
	kind, err := design.ParseKind(c.Type)
	if err != nil {
		return err
	}

	sections, err := design.DesignButterworthCascade(kind, c.Order, c.Fc, c.Fs)
	if err != nil {
		return err
	}
	qs, err := design.ButterworthQFactors[float64](c.Order)
	if err != nil {
		return err
	}
	rc.log.Debug("designed cascade", "kind", kind, "order", c.Order, "sections", len(sections))

	printTitle(rc.out, fmt.Sprintf("Butterworth %s, order %d @ %g Hz", kind, c.Order, c.Fc))
	printKeyValue(rc.out, "Sample rate", fmt.Sprintf("%g Hz", c.Fs))
	printKeyValue(rc.out, "Sections", len(sections))
	printKeyValue(rc.out, "Q factors", formatFloats(qs))

	printSection(rc.out, "Coefficients")
	if err := writeCoefficients(rc.out, sections); err != nil {
		return err
	}

	printSection(rc.out, "Poles and zeros")
	if err := writePoleZeros(rc.out, sections); err != nil {
		return err
	}

	freqs, err := c.Sweep.frequencies(c.Fs)
	if err != nil {
		return err
	}
	eval := response.NewEvaluator[float64](evalOptions(c.Fs, c.Workers)...)

	var rows []responseRow
	if c.Strategy == "complex" {
		rows = complexRows(freqs, eval.Cascade(sections, freqs))
	} else {
		rows = resultRows(freqs, eval.CascadeTrig(sections, freqs))
	}

	printSection(rc.out, "Response")
	return writeResponse(rc.out, rows)
}

type kindsCmd struct{}

func (c *kindsCmd) Run(rc *runContext) error {
	printTitle(rc.out, "Filter kinds")
	return writeKinds(rc.out, design.Kinds())
}

func evalOptions(fs float64, workers int) []core.EvalOption {
	opts := []core.EvalOption{core.WithSampleRate(fs)}
	if workers > 0 {
		opts = append(opts, core.WithWorkers(workers))
	}
	return opts
}

// responseRow is one line of a response table.
type responseRow struct {
	Hz    float64
	DB    float64
	Phase float64 // degrees
}

func complexRows(freqs []float64, h []complex128) []responseRow {
	db := response.MagnitudesDB(h)
	phase := response.Phases(h)

	rows := make([]responseRow, len(h))
	for i := range h {
		rows[i] = responseRow{Hz: freqs[i], DB: db[i], Phase: phase[i] * 180 / math.Pi}
	}
	return rows
}

func resultRows(freqs []float64, res []response.Result[float64]) []responseRow {
	rows := make([]responseRow, len(res))
	for i, r := range res {
		rows[i] = responseRow{Hz: freqs[i], DB: r.DB(), Phase: r.Phase * 180 / math.Pi}
	}
	return rows
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4f", x)
	}
	return strings.Join(parts, ", ")
}
