package design

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// CascadeQ returns the per-section quality factors used to realize a filter
// of the given order (> 2) as a cascade of second-order sections.
//
// The poles of a Butterworth prototype are spread evenly over a half circle
// in steps of pi/order. Each conjugate pole pair at angle theta becomes a
// section with Q = 1/(2*cos(theta)). For odd orders the single real pole is
// approximated by a leading section with Q = 0.5.
//
// The order is not validated; orders below 1 produce an empty or meaningless
// result.
func CascadeQ(order int) []float64 {
	pairs := order / 2
	oddPoles := order % 2
	poleIncrement := math.Pi / float64(order)

	startAngle := poleIncrement
	qs := make([]float64, 0, max(pairs+oddPoles, 0))

	if oddPoles == 0 {
		startAngle /= 2
	} else {
		qs = append(qs, 0.5)
	}

	for i := range pairs {
		qs = append(qs, 1/(2*math.Cos(startAngle+float64(i)*poleIncrement)))
	}

	return qs
}

// Compute realizes the spec.
//
// For Order <= 2 it returns a [biquad.Single] built from the spec's own Q.
// For higher orders the spec's Q is ignored and a [biquad.Cascade] is built
// with one section per value of CascadeQ(Order), in that order.
func Compute(s Spec) biquad.Design {
	if s.Order <= 2 {
		return biquad.Single{Coefficients: Section(s)}
	}

	qs := CascadeQ(s.Order)
	sections := make(biquad.Cascade, len(qs))
	for i, q := range qs {
		sections[i] = section(s.Shape, s.Freq, s.SampleRate, q)
	}

	return sections
}

// ComputeAll realizes independent specs concurrently. The result has the
// same length and order as specs.
func ComputeAll(specs []Spec) []biquad.Design {
	out := make([]biquad.Design, len(specs))

	var wg sync.WaitGroup
	for i := range specs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = Compute(specs[i])
		}(i)
	}
	wg.Wait()

	return out
}
