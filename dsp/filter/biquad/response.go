package biquad

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"github.com/tphakala/simd/f64"
)

// FloorDB is the level reported for a true null, where the squared
// magnitude is exactly zero and its logarithm would be -Inf.
const FloorDB = -200.0

// lnToDB converts a natural-log power ratio to decibels (10/ln 10).
const lnToDB = 10 / math.Ln10

// Transfer returns the complex frequency response H(e^jw) at the normalized
// angular frequency w (rad/sample).
func (c Coefficients) Transfer(w float64) complex128 {
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// logPowerRatio returns ln|H(e^jw)|^2 evaluated algebraically from the
// coefficients with phi = sin(w/2)^2.
func (c Coefficients) logPowerRatio(w float64) float64 {
	s := math.Sin(w / 2)
	phi := s * s
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	bs := b0 + b1 + b2
	num := bs*bs - 4*(b0*b1+4*b0*b2+b1*b2)*phi + 16*b0*b2*phi*phi

	as := 1 + a1 + a2
	den := as*as - 4*(a1+4*a2+a1*a2)*phi + 16*a2*phi*phi

	return math.Log(num) - math.Log(den)
}

// MagnitudeDB returns 10*log10(|H(e^jw)|^2) at the normalized angular
// frequency w. A true null is reported as FloorDB.
func (c Coefficients) MagnitudeDB(w float64) float64 {
	return floorDB(lnToDB * c.logPowerRatio(w))
}

func floorDB(db float64) float64 {
	if math.IsInf(db, -1) {
		return FloorDB
	}

	return db
}

// SectionResponse evaluates the magnitude response of one section in dB on
// the grid w_i = pi*i/N for i = 0..N. N is DefaultGridSize unless set with
// WithGridSize.
func SectionResponse(c Coefficients, opts ...Option) []float64 {
	cfg := newConfig(opts)
	return sectionResponse(c, cfg.gridSize)
}

func sectionResponse(c Coefficients, n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = c.logPowerRatio(math.Pi * float64(i) / float64(n))
	}

	f64.Scale(out, out, lnToDB)

	for i, v := range out {
		out[i] = floorDB(v)
	}

	return out
}

// Response evaluates the magnitude response of d in dB on N+1 grid points
// from DC to Nyquist.
//
// A cascade's response is the point-wise sum of its sections' responses,
// accumulated in section order from zero. A nil design or an empty cascade
// yields 0 dB everywhere.
func Response(d Design, opts ...Option) []float64 {
	cfg := newConfig(opts)

	switch d := d.(type) {
	case Single:
		return sectionResponse(d.Coefficients, cfg.gridSize)
	case Cascade:
		return cascadeResponse(d, cfg.gridSize)
	case nil:
		return cascadeResponse(nil, cfg.gridSize)
	default:
		panic(fmt.Sprintf("biquad: unsupported design %T", d))
	}
}

func cascadeResponse(sections []Coefficients, n int) []float64 {
	out := make([]float64, n+1)
	for i := range sections {
		vecmath.AddBlockInPlace(out, sectionResponse(sections[i], n))
	}

	return out
}
