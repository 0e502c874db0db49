// Package design computes biquad coefficients for the classic RBJ
// cookbook shapes.
//
// [Section] synthesizes one normalized second-order section from a [Spec].
// [Compute] realizes a spec of any order: order 2 yields a [biquad.Single],
// higher orders a [biquad.Cascade] whose per-section Q values follow a
// Butterworth-style pole-angle distribution (see [CascadeQ]).
//
// Designers never fail and never validate their input. Out-of-range
// frequencies, a zero sample rate or a zero Q propagate through the
// formulas as NaN or Inf.
package design
