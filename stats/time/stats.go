// Package time computes time-domain summaries of sample sequences.
package time

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain statistics of a sample sequence.
type Stats struct {
	Length int
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Range  float64 // max - min
	Mean   float64
	Median float64 // upper middle element for even lengths
	RMS    float64
	Peak   float64 // max(|max|, |min|)
}

// Calculate computes all statistics of signal. An empty signal yields a
// zero Stats with NaN for every value field.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		nan := math.NaN()
		return Stats{
			Min: nan, Max: nan, Range: nan, Mean: nan,
			Median: nan, RMS: nan, Peak: nan,
		}
	}

	minPos := floats.MinIdx(signal)
	maxPos := floats.MaxIdx(signal)
	lo, hi := signal[minPos], signal[maxPos]

	return Stats{
		Length: n,
		Min:    lo,
		MinPos: minPos,
		Max:    hi,
		MaxPos: maxPos,
		Range:  hi - lo,
		Mean:   stat.Mean(signal, nil),
		Median: Median(signal),
		RMS:    floats.Norm(signal, 2) / math.Sqrt(float64(n)),
		Peak:   math.Max(math.Abs(lo), math.Abs(hi)),
	}
}

// Median returns the element at index len/2 of the sorted signal, which is
// the upper of the two middle values for even lengths. It returns NaN for an
// empty signal. signal is not modified.
func Median(signal []float64) float64 {
	if len(signal) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(signal))
	copy(sorted, signal)
	sort.Float64s(sorted)

	return sorted[len(sorted)/2]
}

// Domain returns a display window for a filtered sequence that has the same
// height as the raw data's range and is centred on the filtered median. It
// lets raw and filtered data share one vertical scale while the filtered
// trace stays in view even when its offset differs. ok is false if either
// sequence is empty.
func Domain(raw, filtered []float64) (lo, hi float64, ok bool) {
	if len(raw) == 0 || len(filtered) == 0 {
		return 0, 0, false
	}

	half := (floats.Max(raw) - floats.Min(raw)) / 2
	mid := Median(filtered)

	return mid - half, mid + half, true
}
