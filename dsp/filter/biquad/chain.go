package biquad

import "fmt"

// Design is a realized filter: either a [Single] section or a [Cascade] of
// sections. The set of implementations is closed; [Apply] and [Response]
// match on it exhaustively.
type Design interface {
	// Sections returns the sections in processing order.
	Sections() []Coefficients
	// Order returns the nominal filter order (2 per section).
	Order() int

	design()
}

// Single is a design made of exactly one second-order section.
type Single struct {
	Coefficients
}

// Sections returns a one-element slice holding the section.
func (s Single) Sections() []Coefficients { return []Coefficients{s.Coefficients} }

// Order returns 2.
func (Single) Order() int { return 2 }

func (Single) design() {}

// Cascade is an ordered chain of sections processed in series. Each section's
// full output is the next section's full input.
type Cascade []Coefficients

// Sections returns the cascade itself.
func (c Cascade) Sections() []Coefficients { return c }

// Order returns 2 per section.
func (c Cascade) Order() int { return 2 * len(c) }

func (Cascade) design() {}

// Apply filters x through d and returns a new slice of the same length.
//
// For a [Cascade] the sections run one after another over the whole
// sequence; each stage applies the boundary rule to its own input. A nil
// design or an empty cascade returns a copy of x.
func Apply(x []float64, d Design, opts ...Option) []float64 {
	cfg := newConfig(opts)

	switch d := d.(type) {
	case Single:
		return applySection(x, d.Coefficients, cfg.boundary)
	case Cascade:
		return applyCascade(x, d, cfg.boundary)
	case nil:
		return applyCascade(x, nil, cfg.boundary)
	default:
		panic(fmt.Sprintf("biquad: unsupported design %T", d))
	}
}

func applyCascade(x []float64, sections []Coefficients, boundary Boundary) []float64 {
	if len(sections) == 0 {
		out := make([]float64, len(x))
		copy(out, x)
		return out
	}

	out := x
	for i := range sections {
		out = applySection(out, sections[i], boundary)
	}

	return out
}

// ImpulseResponse returns the first n samples of the impulse response of d.
// Missing input history is zero, as an impulse has no past. It returns nil
// for n <= 0.
func ImpulseResponse(d Design, n int) []float64 {
	if n <= 0 {
		return nil
	}

	impulse := make([]float64, n)
	impulse[0] = 1

	return Apply(impulse, d, WithBoundary(BoundaryZero))
}
