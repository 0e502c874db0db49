package design

import (
	"math"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// DefaultQ is the Butterworth quality factor of a single section, 1/sqrt(2).
const DefaultQ = 1 / math.Sqrt2

// Spec describes a filter to design.
type Spec struct {
	Shape      Shape
	Freq       float64 // center/cutoff frequency f0 in Hz
	SampleRate float64 // fs in Hz
	Q          float64 // quality factor; ignored by Compute when Order > 2
	Order      int     // filter order, at least 2
}

// Section synthesizes one normalized second-order section for the spec's
// shape, frequency, sample rate and Q. The spec's order is ignored.
//
// The formulas are the RBJ Audio EQ Cookbook forms with
//
//	w0    = 2*pi*f0/fs
//	alpha = sin(w0) / (2*Q)
//
// normalized so that a0 = 1.
func Section(s Spec) biquad.Coefficients {
	return section(s.Shape, s.Freq, s.SampleRate, s.Q)
}

func section(shape Shape, freq, sampleRate, q float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	switch shape {
	case LowPass:
		return normalizeBiquad((1-cw)/2, 1-cw, (1-cw)/2, a0, a1, a2)
	case HighPass:
		return normalizeBiquad((1+cw)/2, -(1 + cw), (1+cw)/2, a0, a1, a2)
	case BandPassSkirt:
		return normalizeBiquad(sw/2, 0, -sw/2, a0, a1, a2)
	case BandPassPeak:
		return normalizeBiquad(alpha, 0, -alpha, a0, a1, a2)
	case Notch:
		return normalizeBiquad(1, -2*cw, 1, a0, a1, a2)
	default:
		return normalizeBiquad(1, 0, 0, 1, 0, 0)
	}
}

// normalizeBiquad divides every coefficient by a0. Degenerate a0 values are
// not guarded: a zero or non-finite a0 yields Inf/NaN coefficients.
func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
