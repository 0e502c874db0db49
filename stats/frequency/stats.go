// Package frequency summarizes magnitude responses sampled on a uniform
// grid from DC to Nyquist.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Summary describes a dB response grid.
type Summary struct {
	Points    int
	PeakDB    float64
	PeakIndex int
	MinDB     float64
	MinIndex  int
	// BandLow and BandHigh are the first and last grid indices whose level is
	// within 3 dB of the peak. Points in between may dip lower (as in a notch).
	BandLow  int
	BandHigh int
}

// Summarize computes a Summary of responseDB. NaN points are ignored. ok is
// false when there is no finite-or-infinite point to summarize.
func Summarize(responseDB []float64) (s Summary, ok bool) {
	valid := make([]float64, 0, len(responseDB))
	index := make([]int, 0, len(responseDB))
	for i, v := range responseDB {
		if math.IsNaN(v) {
			continue
		}
		valid = append(valid, v)
		index = append(index, i)
	}
	if len(valid) == 0 {
		return Summary{Points: len(responseDB)}, false
	}

	maxAt := floats.MaxIdx(valid)
	minAt := floats.MinIdx(valid)

	s = Summary{
		Points:    len(responseDB),
		PeakDB:    valid[maxAt],
		PeakIndex: index[maxAt],
		MinDB:     valid[minAt],
		MinIndex:  index[minAt],
		BandLow:   -1,
		BandHigh:  -1,
	}

	threshold := s.PeakDB - 3
	for j, v := range valid {
		if v < threshold {
			continue
		}
		if s.BandLow < 0 {
			s.BandLow = index[j]
		}
		s.BandHigh = index[j]
	}

	return s, true
}

// GridFrequency returns the frequency in Hz of grid index i on a grid of n
// intervals spanning 0..sampleRate/2.
func GridFrequency(i, n int, sampleRate float64) float64 {
	return float64(i) * sampleRate / float64(2*n)
}
