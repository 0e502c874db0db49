package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/internal/settings"
	"github.com/cwbudde/algo-biquad/internal/wavio"
)

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, biquad.DefaultGridSize, opts.grid)
	assert.Equal(t, "replicate", opts.boundary)
	assert.Empty(t, opts.set)
}

func TestParseFlags_RecordsSetFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-type", "hpf", "-q", "2", "-response"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, opts.set["type"])
	assert.True(t, opts.set["q"])
	assert.False(t, opts.set["f0"])
	assert.True(t, opts.response)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"-out", "x.wav"}, io.Discard)
	require.ErrorIs(t, err, errUsage)

	_, err = parseFlags([]string{"stray"}, io.Discard)
	require.ErrorIs(t, err, errUsage)

	_, err = parseFlags([]string{"-nope"}, io.Discard)
	require.Error(t, err)

	_, err = parseFlags([]string{"-h"}, io.Discard)
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseBoundary(t *testing.T) {
	b, err := parseBoundary("zero")
	require.NoError(t, err)
	assert.Equal(t, biquad.BoundaryZero, b)

	b, err = parseBoundary("replicate")
	require.NoError(t, err)
	assert.Equal(t, biquad.BoundaryReplicate, b)

	_, err = parseBoundary("mirror")
	require.ErrorIs(t, err, errUsage)
}

func TestOptionsApply(t *testing.T) {
	opts, err := parseFlags([]string{"-type", "BPF2", "-f0", "100", "-order", "4", "-data", "1 2"}, io.Discard)
	require.NoError(t, err)

	cfg := settings.New()
	opts.apply(cfg)
	assert.Equal(t, &settings.Settings{FilterType: "bpf2", F0: 100, Fs: 1, Q: 0.707, Order: 4, Data: "1 2"}, cfg)
}

func TestRun_ReportAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	var out bytes.Buffer

	err := run([]string{
		"-settings", path, "-save",
		"-type", "lpf", "-f0", "12000", "-fs", "48000", "-q", "0.70710678",
		"-data", "5 5 5",
	}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Low Pass Filter")
	assert.Contains(t, text, "0.2929")
	assert.Contains(t, text, "0.5858")
	assert.Contains(t, text, "0.1716")
	assert.Contains(t, text, "Filtered display range")

	saved, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "5 5 5", saved.Data)
	assert.Equal(t, 12000.0, saved.F0)

	// A second run without flags picks the saved settings up.
	out.Reset()
	require.NoError(t, run([]string{"-settings", path, "-response", "-grid", "10"}, &out))
	assert.Contains(t, out.String(), "Magnitude [dB]")
	assert.Contains(t, out.String(), "Low Pass Filter, f0=12000 Hz, fs=48000 Hz")
}

func TestWriteDesign_Cascade(t *testing.T) {
	spec := design.Spec{Shape: design.HighPass, Freq: 100, SampleRate: 8000, Order: 5}
	var out bytes.Buffer
	require.NoError(t, writeDesign(&out, spec, design.Compute(spec)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 6) // title, header, rule, 3 sections
	assert.Contains(t, lines[0], "order 6")
}

func TestWriteSamples_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeSamples(&out, nil, nil))
	assert.Contains(t, out.String(), "No samples")
}

func TestWriteMeasurement(t *testing.T) {
	var out bytes.Buffer
	d := design.Compute(design.Spec{Shape: design.LowPass, Freq: 1000, SampleRate: 48000, Q: 1, Order: 2})
	require.NoError(t, writeMeasurement(&out, d, 4096))
	assert.Contains(t, out.String(), "(ok)")

	out.Reset()
	require.NoError(t, writeMeasurement(&out, d, 100))
	assert.Contains(t, out.String(), "unavailable")
}

func TestFilterChannels(t *testing.T) {
	d := biquad.Cascade{{B0: 0.5, B1: 0.5}, biquad.Passthrough()}
	in := [][]float64{{2, 4, 6}, {1, 1, 1}}

	out := filterChannels(in, d, nil)
	require.Len(t, out, 2)
	assert.Equal(t, []float64{2, 3, 5}, out[0])
	assert.Equal(t, []float64{1, 1, 1}, out[1])
}

func TestFilterWAV(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.wav")
	outPath := filepath.Join(dir, "out.wav")

	require.NoError(t, wavio.Write(inPath, &wavio.Signal{
		SampleRate: 8000,
		BitDepth:   16,
		Channels:   [][]float64{{0.5, -0.5, 0.5, -0.5}, {0.25, 0.25, 0.25, 0.25}},
	}))

	var out bytes.Buffer
	d := biquad.Single{Coefficients: biquad.Coefficients{B0: 0.5, B1: 0.5}}
	require.NoError(t, filterWAV(inPath, outPath, d, nil, false, &out))
	assert.Contains(t, out.String(), "2 channels, 4 samples")

	got, err := wavio.Read(outPath)
	require.NoError(t, err)
	require.Len(t, got.Channels, 2)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0, 0}, got.Channels[0], 1.0/32768)
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.25, 0.25}, got.Channels[1], 1.0/32768)
}

func TestFilterWAV_MissingInput(t *testing.T) {
	err := filterWAV("/nonexistent/in.wav", "", biquad.Cascade{}, nil, false, io.Discard)
	require.Error(t, err)
	assert.False(t, errors.Is(err, errUsage))
}

func TestOptionsApply_TypeResetsQ(t *testing.T) {
	cfg := settings.New()
	cfg.Q = 9

	opts, err := parseFlags([]string{"-type", "notch"}, io.Discard)
	require.NoError(t, err)
	opts.apply(cfg)
	assert.Equal(t, settings.New().Q, cfg.Q)

	opts, err = parseFlags([]string{"-type", "notch", "-q", "3"}, io.Discard)
	require.NoError(t, err)
	opts.apply(cfg)
	assert.Equal(t, 3.0, cfg.Q)
}

func TestParseFlags_Compare(t *testing.T) {
	opts, err := parseFlags([]string{"-compare", "2, 4,8"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 8}, opts.compareOrders)

	for _, bad := range []string{"2,x", "0", "4,,6"} {
		_, err := parseFlags([]string{"-compare", bad}, io.Discard)
		require.ErrorIs(t, err, errUsage, bad)
	}
}

func TestWriteComparison(t *testing.T) {
	base := design.Spec{Shape: design.LowPass, Freq: 1000, SampleRate: 48000, Q: design.DefaultQ}
	var specs []design.Spec
	for _, order := range []int{2, 4, 5} {
		s := base
		s.Order = order
		specs = append(specs, s)
	}

	var out bytes.Buffer
	require.NoError(t, writeComparison(&out, specs, design.ComputeAll(specs), nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5) // title, header, 3 designs
	assert.Equal(t, []string{"2", "1", "-3.01"}, strings.Fields(lines[2])[:3])
	assert.Equal(t, []string{"4", "2", "-3.01"}, strings.Fields(lines[3])[:3])
	// Odd orders carry a Q=0.5 section: 0.5*0.618*1.618 = 0.5 at f0.
	assert.Equal(t, []string{"6", "3", "-6.02"}, strings.Fields(lines[4])[:3])
}

func TestRun_Compare(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{
		"-settings", filepath.Join(t.TempDir(), "s.yaml"),
		"-type", "hpf", "-f0", "100", "-fs", "8000", "-compare", "2,6",
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Comparison:")
	assert.Contains(t, out.String(), "-3 dB band [Hz]")
}

func TestOptionsWantsReport(t *testing.T) {
	for _, args := range [][]string{{"-data", "1"}, {"-response"}, {"-measure"}, {"-compare", "2"}, {"-in", "a.wav"}} {
		opts, err := parseFlags(args, io.Discard)
		require.NoError(t, err)
		assert.True(t, opts.wantsReport(), args)
	}

	opts, err := parseFlags([]string{"-type", "hpf"}, io.Discard)
	require.NoError(t, err)
	assert.False(t, opts.wantsReport())
}
