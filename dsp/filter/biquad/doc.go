// Package biquad provides second-order IIR (biquad) filter primitives.
//
// A [Coefficients] value describes one normalized second-order section. A
// [Design] is either a [Single] section or an ordered [Cascade] of sections,
// as produced by the designers in dsp/filter/design.
//
// [Apply] runs a design over a whole sample sequence using the Direct Form I
// difference equation, and [Response] evaluates its magnitude response in dB
// over a uniform grid from DC to Nyquist using a closed-form expression.
// Both are pure functions: no state is carried between calls.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
