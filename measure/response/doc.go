// Package response measures the magnitude response of a biquad design
// numerically: the impulse response is computed by running the filter and
// transformed with an FFT.
//
// With an FFT of size 2N the bins land exactly on the grid used by
// biquad.Response with grid size N, so both can be compared point by point.
//
// # Usage
//
//	measured, err := response.Measure(d, 1024)
//	dev, err := response.MaxDeviation(d, 1024, -120)
package response
