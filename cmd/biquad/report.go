package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/measure/response"
	frequencystats "github.com/cwbudde/algo-biquad/stats/frequency"
	timestats "github.com/cwbudde/algo-biquad/stats/time"
)

// displayPlaces is the number of decimals coefficients are shown with.
const displayPlaces = 4

func writeDesign(w io.Writer, spec design.Spec, d biquad.Design) error {
	if _, err := fmt.Fprintf(w, "%s, f0=%g Hz, fs=%g Hz, order %d\n",
		spec.Shape.Description(), spec.Freq, spec.SampleRate, d.Order()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Section\tb0\tb1\tb2\ta1\ta2\n")
	fmt.Fprintf(tw, "-------\t--\t--\t--\t--\t--\n")
	for i, c := range d.Sections() {
		r := c.Rounded(displayPlaces)
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n", i+1, r.B0, r.B1, r.B2, r.A1, r.A2)
	}

	return tw.Flush()
}

func writeSamples(w io.Writer, raw, filtered []float64) error {
	if len(raw) == 0 {
		_, err := fmt.Fprintln(w, "\nNo samples found in data.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\n\tn\tInput\tFiltered\t\n")
	for i := range raw {
		fmt.Fprintf(tw, "\t%d\t%g\t%.6g\t\n", i, raw[i], filtered[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	in := timestats.Calculate(raw)
	out := timestats.Calculate(filtered)
	fmt.Fprintf(w, "\nInput:    min %.6g, max %.6g, median %.6g\n", in.Min, in.Max, in.Median)
	fmt.Fprintf(w, "Filtered: min %.6g, max %.6g, median %.6g\n", out.Min, out.Max, out.Median)

	lo, hi, _ := timestats.Domain(raw, filtered)
	_, err := fmt.Fprintf(w, "Filtered display range: [%.6g, %.6g]\n", lo, hi)
	return err
}

func writeResponse(w io.Writer, resp []float64, sampleRate float64) error {
	n := len(resp) - 1

	if s, ok := frequencystats.Summarize(resp); ok {
		fmt.Fprintf(w, "\nPeak %.2f dB at %.6g Hz, floor %.2f dB at %.6g Hz\n",
			s.PeakDB, frequencystats.GridFrequency(s.PeakIndex, n, sampleRate),
			s.MinDB, frequencystats.GridFrequency(s.MinIndex, n, sampleRate))
		fmt.Fprintf(w, "Within 3 dB of peak: %.6g .. %.6g Hz\n",
			frequencystats.GridFrequency(s.BandLow, n, sampleRate),
			frequencystats.GridFrequency(s.BandHigh, n, sampleRate))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\n\ti\tFrequency [Hz]\tMagnitude [dB]\t\n")
	for i, db := range resp {
		fmt.Fprintf(tw, "\t%d\t%.6g\t%.4f\t\n", i, frequencystats.GridFrequency(i, n, sampleRate), db)
	}

	return tw.Flush()
}

func writeMeasurement(w io.Writer, d biquad.Design, fftSize int) error {
	dev, err := response.MaxDeviation(d, fftSize, -120)
	if err != nil {
		_, werr := fmt.Fprintf(w, "\nMeasured response unavailable: %v\n", err)
		return werr
	}

	status := "ok"
	if dev > 0.01 || math.IsNaN(dev) {
		status = "impulse response truncated, try a lower Q"
	}
	_, err = fmt.Fprintf(w, "\nFFT-measured response (%d points): max deviation %.2g dB (%s)\n", fftSize, dev, status)
	return err
}

// writeComparison prints one row per design: its order, section count, level
// at f0 and the band within 3 dB of its peak.
func writeComparison(w io.Writer, specs []design.Spec, designs []biquad.Design, opts []biquad.Option) error {
	if _, err := fmt.Fprintln(w, "\nComparison:"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\tOrder\tSections\tAt f0 [dB]\tPeak [dB]\t-3 dB band [Hz]\t\n")
	for i, d := range designs {
		s := specs[i]
		w0 := 2 * math.Pi * s.Freq / s.SampleRate

		var atF0 float64
		for _, c := range d.Sections() {
			atF0 += c.MagnitudeDB(w0)
		}

		resp := biquad.Response(d, opts...)
		n := len(resp) - 1
		band := "-"
		peak := math.NaN()
		if sum, ok := frequencystats.Summarize(resp); ok {
			peak = sum.PeakDB
			band = fmt.Sprintf("%.6g .. %.6g",
				frequencystats.GridFrequency(sum.BandLow, n, s.SampleRate),
				frequencystats.GridFrequency(sum.BandHigh, n, s.SampleRate))
		}

		fmt.Fprintf(tw, "\t%d\t%d\t%.2f\t%.2f\t%s\t\n", d.Order(), len(d.Sections()), atF0, peak, band)
	}

	return tw.Flush()
}
