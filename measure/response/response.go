package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// Errors returned by the measurement functions.
var (
	ErrInvalidSize = errors.New("response: FFT size must be a power of two >= 4")
	ErrNonFinite   = errors.New("response: impulse response is not finite")
)

// Measure returns the magnitude response of d in dB at the fftSize/2+1 bins
// from DC to Nyquist. Bin k corresponds to w = 2*pi*k/fftSize. Bins with zero
// magnitude are reported as biquad.FloorDB.
//
// The impulse response is truncated to fftSize samples, so slowly decaying
// (high-Q) designs need a larger size to be measured accurately.
func Measure(d biquad.Design, fftSize int) ([]float64, error) {
	if fftSize < 4 || fftSize&(fftSize-1) != 0 {
		return nil, ErrInvalidSize
	}

	ir := biquad.ImpulseResponse(d, fftSize)

	in := make([]complex128, fftSize)
	for i, v := range ir {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	for k, m := range mag {
		if m == 0 {
			mag[k] = biquad.FloorDB
			continue
		}
		mag[k] = 20 * math.Log10(m)
	}

	return mag, nil
}

// MaxDeviation returns the largest absolute difference in dB between the
// closed-form response of d (grid size fftSize/2) and its measured response.
// Points where the closed form lies below floorDB are skipped, as the
// measurement there is dominated by truncation and rounding.
func MaxDeviation(d biquad.Design, fftSize int, floorDB float64) (float64, error) {
	measured, err := Measure(d, fftSize)
	if err != nil {
		return 0, err
	}

	closed := biquad.Response(d, biquad.WithGridSize(fftSize/2))

	var maxDev float64
	for i, want := range closed {
		if want < floorDB || math.IsNaN(want) {
			continue
		}
		maxDev = max(maxDev, math.Abs(measured[i]-want))
	}

	return maxDev, nil
}
