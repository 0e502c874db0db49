package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/internal/wavio"
	timestats "github.com/cwbudde/algo-biquad/stats/time"
)

// filterChannels filters every channel through d, one goroutine per channel.
// Within a channel the cascade runs strictly in order.
func filterChannels(channels [][]float64, d biquad.Design, opts []biquad.Option) [][]float64 {
	out := make([][]float64, len(channels))

	var wg sync.WaitGroup
	for ch := range channels {
		wg.Add(1)
		go func(ch int) {
			defer wg.Done()
			out[ch] = biquad.Apply(channels[ch], d, opts...)
		}(ch)
	}
	wg.Wait()

	return out
}

// filterWAV filters the WAV file at inPath and, if outPath is set, writes
// the result in the same format.
func filterWAV(inPath, outPath string, d biquad.Design, opts []biquad.Option, verbose bool, w io.Writer) error {
	start := time.Now()

	sig, err := wavio.Read(inPath)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", sig.SampleRate, len(sig.Channels), sig.BitDepth)
	}

	filtered := &wavio.Signal{
		SampleRate: sig.SampleRate,
		BitDepth:   sig.BitDepth,
		Channels:   filterChannels(sig.Channels, d, opts),
	}

	fmt.Fprintf(w, "\nFiltered %s (%d channels, %d samples)\n", filepath.Base(inPath), len(sig.Channels), sig.Frames())
	for ch := range sig.Channels {
		in := timestats.Calculate(sig.Channels[ch])
		out := timestats.Calculate(filtered.Channels[ch])
		fmt.Fprintf(w, "  channel %d: peak %.4f -> %.4f, rms %.4f -> %.4f\n", ch+1, in.Peak, out.Peak, in.RMS, out.RMS)
	}

	if outPath == "" {
		return nil
	}

	if err := wavio.Write(outPath, filtered); err != nil {
		return err
	}
	if verbose {
		log.Printf("Wrote %s in %s", outPath, time.Since(start).Round(time.Millisecond))
	}

	_, err = fmt.Fprintf(w, "Wrote %s\n", filepath.Base(outPath))
	return err
}
