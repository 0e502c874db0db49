// Package testutil holds deterministic test signals and comparison helpers
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand/v2"
	"slices"
)

// Tone returns n samples of amplitude*sin(w*i). w is in rad/sample, the unit
// of the response grid, so a tone can be matched against a grid point.
func Tone(w, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out
}

// Noise returns n samples of uniform noise in [-amplitude, amplitude). The
// same seed always yields the same samples.
func Noise(seed uint64, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Impulse returns n samples that are zero except for a 1 at pos. A pos
// outside [0, n) gives all zeros.
func Impulse(n, pos int) []float64 {
	out := DC(0, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// DC returns n copies of value.
func DC(value float64, n int) []float64 {
	return slices.Repeat([]float64{value}, n)
}

// Ramp returns start, start+step, start+2*step, ...
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
