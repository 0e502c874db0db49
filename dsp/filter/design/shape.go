package design

import "strings"

// Shape is the response shape of a section.
type Shape int

const (
	// Passthrough is the identity filter. It is also what unknown shape names
	// resolve to.
	Passthrough Shape = iota
	// LowPass is the RBJ lowpass.
	LowPass
	// HighPass is the RBJ highpass.
	HighPass
	// BandPassSkirt is the RBJ bandpass with constant skirt gain (peak gain = Q).
	BandPassSkirt
	// BandPassPeak is the RBJ bandpass with constant 0 dB peak gain.
	BandPassPeak
	// Notch is the RBJ notch.
	Notch
)

// Shapes lists the designable shapes, excluding Passthrough, in menu order.
var Shapes = []Shape{LowPass, HighPass, BandPassSkirt, BandPassPeak, Notch}

// String returns the short code of the shape as used in saved settings.
func (s Shape) String() string {
	switch s {
	case LowPass:
		return "lpf"
	case HighPass:
		return "hpf"
	case BandPassSkirt:
		return "bpf1"
	case BandPassPeak:
		return "bpf2"
	case Notch:
		return "notch"
	default:
		return "passthrough"
	}
}

// Description returns a human readable name of the shape.
func (s Shape) Description() string {
	switch s {
	case LowPass:
		return "Low Pass Filter"
	case HighPass:
		return "High Pass Filter"
	case BandPassSkirt:
		return "Band Pass Filter (constant skirt gain)"
	case BandPassPeak:
		return "Band Pass Filter (constant peak gain)"
	case Notch:
		return "Notch Filter"
	default:
		return "Passthrough"
	}
}

// ParseShape maps a shape code or long name to a Shape. Matching is case
// insensitive. Anything unrecognized resolves to Passthrough.
func ParseShape(name string) Shape {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lpf", "lowpass", "low-pass":
		return LowPass
	case "hpf", "highpass", "high-pass":
		return HighPass
	case "bpf1", "bandpass-skirt", "bandpass":
		return BandPassSkirt
	case "bpf2", "bandpass-peak":
		return BandPassPeak
	case "notch":
		return Notch
	default:
		return Passthrough
	}
}
