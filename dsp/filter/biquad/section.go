package biquad

import "math"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Passthrough returns the identity section (B0=1, all else 0).
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// Rounded returns a copy with every coefficient rounded to the given number
// of decimal places. It is meant for display; processing should always use
// the full-precision values. Values that round to zero are returned as +0.
func (c Coefficients) Rounded(places int) Coefficients {
	p := math.Pow(10, float64(places))
	r := func(v float64) float64 {
		v = math.Round(v*p) / p
		if v == 0 {
			return 0
		}
		return v
	}

	return Coefficients{
		B0: r(c.B0),
		B1: r(c.B1),
		B2: r(c.B2),
		A1: r(c.A1),
		A2: r(c.A2),
	}
}

// ApplySection filters x through one section and returns a new slice of the
// same length. x is not modified.
//
// The recursion is the Direct Form I difference equation
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// Output history before the first sample is always zero. Input history is
// chosen by the [Boundary] option: x[0] is repeated by default.
func ApplySection(x []float64, c Coefficients, opts ...Option) []float64 {
	cfg := newConfig(opts)
	return applySection(x, c, cfg.boundary)
}

func applySection(x []float64, c Coefficients, boundary Boundary) []float64 {
	y := make([]float64, len(x))
	if len(x) == 0 {
		return y
	}

	var x1, x2, y1, y2 float64
	if boundary == BoundaryReplicate {
		x1, x2 = x[0], x[0]
	}

	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	for n, xn := range x {
		yn := b0*xn + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, xn
		y2, y1 = y1, yn
		y[n] = yn
	}

	return y
}
