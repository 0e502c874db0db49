// Package wavio converts between PCM WAV files and per-channel float
// sample sequences in [-1, 1).
package wavio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"
)

// Errors returned by Read and Write.
var (
	ErrInvalidWAV          = errors.New("wavio: invalid WAV file")
	ErrUnsupportedBitDepth = errors.New("wavio: unsupported bit depth")
	ErrUnsupportedFormat   = errors.New("wavio: unsupported WAV format, integer PCM required")
	ErrNoChannels          = errors.New("wavio: signal has no channels")
	ErrChannelLength       = errors.New("wavio: channels differ in length")
)

// pcmFormat is the WAV format tag for integer PCM.
const pcmFormat = 1

// Signal is a deinterleaved PCM signal.
type Signal struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// Frames returns the number of samples per channel.
func (s *Signal) Frames() int {
	if len(s.Channels) == 0 {
		return 0
	}
	return len(s.Channels[0])
}

// fullScale returns the magnitude of the most negative sample value.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return math.Ldexp(1, bitDepth-1), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// Read decodes the WAV file at path.
func Read(path string) (*Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: failed to open input file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWAV, path)
	}
	if dec.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: failed to decode PCM data: %w", err)
	}

	numCh := int(dec.NumChans)
	if numCh < 1 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWAV, path)
	}
	frames := len(buf.Data) / numCh

	channels := make([][]float64, numCh)
	for ch := range channels {
		samples := make([]float64, frames)
		for i := range samples {
			samples[i] = float64(buf.Data[i*numCh+ch])
		}
		f64.Scale(samples, samples, 1/scale)
		channels[ch] = samples
	}

	return &Signal{
		SampleRate: int(dec.SampleRate),
		BitDepth:   bitDepth,
		Channels:   channels,
	}, nil
}

// Write encodes s as integer PCM at path. Samples are clipped to the range
// of the bit depth.
func Write(path string, s *Signal) error {
	scale, err := fullScale(s.BitDepth)
	if err != nil {
		return err
	}

	numCh := len(s.Channels)
	if numCh == 0 {
		return ErrNoChannels
	}

	frames := s.Frames()
	for _, ch := range s.Channels {
		if len(ch) != frames {
			return ErrChannelLength
		}
	}

	data := make([]int, frames*numCh)
	for ch, samples := range s.Channels {
		for i, v := range samples {
			data[i*numCh+ch] = toPCM(v, scale)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, s.SampleRate, s.BitDepth, numCh, pcmFormat)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: numCh, SampleRate: s.SampleRate},
		SourceBitDepth: s.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("wavio: failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("wavio: failed to finalize WAV header: %w", err)
	}

	return f.Close()
}

func toPCM(v, scale float64) int {
	if math.IsNaN(v) {
		return 0
	}

	x := math.Round(v * scale)
	switch {
	case x > scale-1:
		x = scale - 1
	case x < -scale:
		x = -scale
	}

	return int(x)
}
