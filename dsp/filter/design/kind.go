package design

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// Kind selects a filter archetype for [Design].
type Kind int

// Supported kinds, each naming the designer [Design] dispatches to.
const (
	// KindAllPass1stOrder is a first-order allpass; see [AllPass1stOrder].
	KindAllPass1stOrder Kind = iota
	// KindAllPassQ is a second-order allpass; see [AllPassQ].
	KindAllPassQ
	// KindLowPass is a second-order lowpass with variable Q; see [LowPass].
	KindLowPass
	// KindHighPass is a second-order highpass with variable Q; see [HighPass].
	KindHighPass
	// KindLowPass12dbOct is a Butterworth lowpass; see [LowPass12dbOct].
	KindLowPass12dbOct
	// KindHighPass12dbOct is a Butterworth highpass; see [HighPass12dbOct].
	KindHighPass12dbOct
	// KindLowPass1stOrder is a first-order lowpass; see [LowPass1stOrder].
	KindLowPass1stOrder
	// KindHighPass1stOrder is a first-order highpass; see [HighPass1stOrder].
	KindHighPass1stOrder
	// KindBandPass is a 0 dB peak bandpass; see [BandPass].
	KindBandPass
	// KindNotch is a band-reject filter; see [Notch].
	KindNotch
	// KindPeakEq is a peaking equalizer; see [PeakEq].
	KindPeakEq
	// KindHighShelf is a second-order high shelf; see [HighShelf].
	KindHighShelf
	// KindLowShelf is a second-order low shelf; see [LowShelf].
	KindLowShelf
	// KindHighShelfQ is a high shelf with variable Q; see [HighShelfQ].
	KindHighShelfQ
	// KindLowShelfQ is a low shelf with variable Q; see [LowShelfQ].
	KindLowShelfQ
	// KindHighShelf1stOrder is a first-order high shelf; see [HighShelf1stOrder].
	KindHighShelf1stOrder
	// KindLowShelf1stOrder is a first-order low shelf; see [LowShelf1stOrder].
	KindLowShelf1stOrder
	// KindOnePoleLowPass is a single-pole lowpass; see [OnePoleLowPass].
	KindOnePoleLowPass
	// KindOnePoleHighPass is a single-pole highpass; see [OnePoleHighPass].
	KindOnePoleHighPass

	kindCount
)

var kindNames = [kindCount]string{
	KindAllPass1stOrder:   "allpass1",
	KindAllPassQ:          "allpassq",
	KindLowPass:           "lowpass",
	KindHighPass:          "highpass",
	KindLowPass12dbOct:    "lowpass12",
	KindHighPass12dbOct:   "highpass12",
	KindLowPass1stOrder:   "lowpass1",
	KindHighPass1stOrder:  "highpass1",
	KindBandPass:          "bandpass",
	KindNotch:             "notch",
	KindPeakEq:            "peak",
	KindHighShelf:         "highshelf",
	KindLowShelf:          "lowshelf",
	KindHighShelfQ:        "highshelfq",
	KindLowShelfQ:         "lowshelfq",
	KindHighShelf1stOrder: "highshelf1",
	KindLowShelf1stOrder:  "lowshelf1",
	KindOnePoleLowPass:    "onepole-lowpass",
	KindOnePoleHighPass:   "onepole-highpass",
}

var kindAliases = map[string]Kind{
	"lp":     KindLowPass,
	"hp":     KindHighPass,
	"bp":     KindBandPass,
	"ap":     KindAllPassQ,
	"peakeq": KindPeakEq,
	"bell":   KindPeakEq,
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// String returns the canonical lower-case name accepted by [ParseKind].
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a kind by canonical name or short alias, ignoring case.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == key {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// UsesGain reports whether the kind reads [Params].GainDB.
func (k Kind) UsesGain() bool {
	switch k {
	case KindPeakEq, KindHighShelf, KindLowShelf, KindHighShelfQ, KindLowShelfQ,
		KindHighShelf1stOrder, KindLowShelf1stOrder:
		return true
	default:
		return false
	}
}

// UsesQ reports whether the kind reads [Params].Q.
func (k Kind) UsesQ() bool {
	switch k {
	case KindAllPassQ, KindLowPass, KindHighPass, KindBandPass, KindNotch,
		KindPeakEq, KindHighShelfQ, KindLowShelfQ:
		return true
	default:
		return false
	}
}

// IsFirstOrder reports whether the kind yields a section with A2 = B2 = 0.
func (k Kind) IsFirstOrder() bool {
	switch k {
	case KindAllPass1stOrder, KindLowPass1stOrder, KindHighPass1stOrder,
		KindHighShelf1stOrder, KindLowShelf1stOrder, KindOnePoleLowPass, KindOnePoleHighPass:
		return true
	default:
		return false
	}
}

// Params carries the design parameters. Fields a kind does not use are
// ignored.
type Params[F core.Float] struct {
	GainDB F // peak or shelf gain in dB; negative values cut
	Fc     F // center or corner frequency in Hz
	Q      F // quality factor
}

// Design dispatches to the designer for kind after validating p and fs.
func Design[F core.Float](kind Kind, p Params[F], fs F) (biquad.Coefficients[F], error) {
	if kind < 0 || kind >= kindCount {
		return biquad.Coefficients[F]{}, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	if err := validate(kind, p, fs); err != nil {
		return biquad.Coefficients[F]{}, fmt.Errorf("%s: %w", kind, err)
	}

	switch kind {
	case KindAllPass1stOrder:
		return AllPass1stOrder(p.Fc, fs), nil
	case KindAllPassQ:
		return AllPassQ(p.Fc, p.Q, fs), nil
	case KindLowPass:
		return LowPass(p.Fc, p.Q, fs), nil
	case KindHighPass:
		return HighPass(p.Fc, p.Q, fs), nil
	case KindLowPass12dbOct:
		return LowPass12dbOct(p.Fc, fs), nil
	case KindHighPass12dbOct:
		return HighPass12dbOct(p.Fc, fs), nil
	case KindLowPass1stOrder:
		return LowPass1stOrder(p.Fc, fs), nil
	case KindHighPass1stOrder:
		return HighPass1stOrder(p.Fc, fs), nil
	case KindBandPass:
		return BandPass(p.Fc, p.Q, fs), nil
	case KindNotch:
		return Notch(p.Fc, p.Q, fs), nil
	case KindPeakEq:
		return PeakEq(p.GainDB, p.Fc, p.Q, fs), nil
	case KindHighShelf:
		return HighShelf(p.GainDB, p.Fc, fs), nil
	case KindLowShelf:
		return LowShelf(p.GainDB, p.Fc, fs), nil
	case KindHighShelfQ:
		return HighShelfQ(p.GainDB, p.Fc, p.Q, fs), nil
	case KindLowShelfQ:
		return LowShelfQ(p.GainDB, p.Fc, p.Q, fs), nil
	case KindHighShelf1stOrder:
		return HighShelf1stOrder(p.GainDB, p.Fc, fs), nil
	case KindLowShelf1stOrder:
		return LowShelf1stOrder(p.GainDB, p.Fc, fs), nil
	case KindOnePoleLowPass:
		return OnePoleLowPass(p.Fc, fs), nil
	default:
		return OnePoleHighPass(p.Fc, fs), nil
	}
}

func validate[F core.Float](kind Kind, p Params[F], fs F) error {
	if err := validateRate(p.Fc, fs); err != nil {
		return err
	}
	if kind.UsesQ() && !(p.Q > 0 && core.IsFinite(p.Q)) {
		return fmt.Errorf("%w: quality factor must be > 0: %v", ErrInvalidArgument, p.Q)
	}
	if kind.UsesGain() && !core.IsFinite(p.GainDB) {
		return fmt.Errorf("%w: gain must be finite: %v dB", ErrInvalidArgument, p.GainDB)
	}
	return nil
}

func validateRate[F core.Float](fc, fs F) error {
	if !(fs > 0 && core.IsFinite(fs)) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidArgument, fs)
	}
	if !(fc > 0 && fc < fs/2) {
		return fmt.Errorf("%w: frequency must be in (0, %v): %v", ErrInvalidArgument, fs/2, fc)
	}
	return nil
}
