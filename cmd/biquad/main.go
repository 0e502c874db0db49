// Command biquad designs RBJ biquad filters, applies them to data and prints
// their frequency response.
//
// Usage:
//
//	biquad [flags]
//
// The last used filter settings are kept in a settings file; flags given on
// the command line override them for this run and -save stores the result.
//
// Examples:
//
//	biquad -type lpf -f0 1000 -fs 48000 -q 0.707
//	biquad -type hpf -f0 0.05 -order 4 -data "12 15 11 14 13 40 12"
//	biquad -type notch -f0 50 -fs 1000 -q 5 -response
//	biquad -type lpf -f0 1000 -fs 48000 -compare 2,4,8
//	biquad -type lpf -f0 3000 -fs 44100 -order 6 -in in.wav -out out.wav
//	biquad -i
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/internal/settings"
	"github.com/cwbudde/algo-biquad/internal/textdata"
)

// measureFFTSize is the FFT size used by -measure.
const measureFFTSize = 4096

var errUsage = errors.New("invalid arguments")

type options struct {
	settingsPath string
	save         bool

	shape string
	f0    float64
	fs    float64
	q     float64
	order int
	data  string

	in  string
	out string

	response bool
	measure  bool
	compare  string
	grid     int
	boundary string

	interactive bool
	verbose     bool

	// set records the flags given explicitly on the command line.
	set map[string]bool

	compareOrders []int
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}

	fl := flag.NewFlagSet("biquad", flag.ContinueOnError)
	fl.SetOutput(stderr)
	fl.StringVar(&opts.settingsPath, "settings", "", "settings file (default: user config dir)")
	fl.BoolVar(&opts.save, "save", false, "save the effective settings")
	fl.StringVar(&opts.shape, "type", "", "filter type: lpf, hpf, bpf1, bpf2, notch")
	fl.Float64Var(&opts.f0, "f0", 0, "center/cutoff frequency in Hz")
	fl.Float64Var(&opts.fs, "fs", 0, "sample rate in Hz")
	fl.Float64Var(&opts.q, "q", 0, "quality factor (ignored for order > 2)")
	fl.IntVar(&opts.order, "order", 0, "filter order")
	fl.StringVar(&opts.data, "data", "", "text containing the samples to filter")
	fl.StringVar(&opts.in, "in", "", "WAV file to filter")
	fl.StringVar(&opts.out, "out", "", "filtered WAV output (requires -in)")
	fl.BoolVar(&opts.response, "response", false, "print the magnitude response table")
	fl.BoolVar(&opts.measure, "measure", false, "compare the closed-form response with an FFT measurement")
	fl.StringVar(&opts.compare, "compare", "", "comma-separated orders to design side by side, e.g. 2,4,8")
	fl.IntVar(&opts.grid, "grid", biquad.DefaultGridSize, "response grid intervals (points = grid+1)")
	fl.StringVar(&opts.boundary, "boundary", biquad.BoundaryReplicate.String(), "input boundary rule: replicate or zero")
	fl.BoolVar(&opts.interactive, "i", false, "interactive mode")
	fl.BoolVar(&opts.verbose, "v", false, "verbose output")
	fl.Usage = func() {
		fmt.Fprintf(stderr, "Usage: biquad [flags]\n\n")
		fmt.Fprintf(stderr, "Designs biquad filters, filters data and prints the frequency response.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fl.PrintDefaults()
	}

	if err := fl.Parse(args); err != nil {
		return nil, err
	}
	if fl.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", errUsage, fl.Arg(0))
	}
	fl.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if opts.out != "" && opts.in == "" {
		return nil, fmt.Errorf("%w: -out requires -in", errUsage)
	}

	if opts.compare != "" {
		orders, err := parseOrders(opts.compare)
		if err != nil {
			return nil, err
		}
		opts.compareOrders = orders
	}

	return opts, nil
}

func parseOrders(list string) ([]int, error) {
	var orders []int
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: bad order %q in -compare", errUsage, field)
		}
		orders = append(orders, n)
	}

	return orders, nil
}

func parseBoundary(name string) (biquad.Boundary, error) {
	switch name {
	case biquad.BoundaryReplicate.String():
		return biquad.BoundaryReplicate, nil
	case biquad.BoundaryZero.String():
		return biquad.BoundaryZero, nil
	default:
		return 0, fmt.Errorf("%w: unknown boundary %q", errUsage, name)
	}
}

// apply overrides s with the flags set on the command line. A new -type
// resets Q to its default unless -q is given too.
func (o *options) apply(s *settings.Settings) {
	if o.set["type"] {
		s.FilterType = design.ParseShape(o.shape).String()
		s.Q = settings.New().Q
	}
	if o.set["f0"] {
		s.F0 = o.f0
	}
	if o.set["fs"] {
		s.Fs = o.fs
	}
	if o.set["q"] {
		s.Q = o.q
	}
	if o.set["order"] {
		s.Order = o.order
	}
	if o.set["data"] {
		s.Data = o.data
	}
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	boundary, err := parseBoundary(opts.boundary)
	if err != nil {
		return err
	}
	procOpts := []biquad.Option{biquad.WithBoundary(boundary), biquad.WithGridSize(opts.grid)}

	path := opts.settingsPath
	if path == "" {
		if path, err = settings.DefaultPath(); err != nil && opts.verbose {
			log.Printf("settings disabled: %v", err)
		}
	}

	cfg := settings.New()
	if path != "" {
		if cfg, err = settings.Load(path); err != nil {
			log.Printf("ignoring settings: %v", err)
		} else if opts.verbose {
			log.Printf("Settings: %s", path)
		}
	}
	opts.apply(cfg)

	if opts.verbose {
		log.Printf("Filter: %s f0=%g fs=%g q=%g order=%d", cfg.FilterType, cfg.F0, cfg.Fs, cfg.Q, cfg.Order)
		log.Printf("Boundary: %s, grid: %d", boundary, opts.grid)
	}

	if opts.interactive || (!opts.wantsReport() && isTerminal(os.Stdin)) {
		if err := interactive(cfg, procOpts, stdout); err != nil {
			return err
		}
	} else if err := report(stdout, cfg, opts, procOpts); err != nil {
		return err
	}

	if opts.save && path != "" {
		if err := settings.Save(path, cfg); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("Saved settings to %s", path)
		}
	}

	return nil
}

// wantsReport reports whether any flag asks for non-interactive output.
func (o *options) wantsReport() bool {
	return o.set["data"] || o.in != "" || o.response || o.measure || len(o.compareOrders) > 0
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// report prints the non-interactive output for the given settings.
func report(w io.Writer, cfg *settings.Settings, opts *options, procOpts []biquad.Option) error {
	spec := cfg.Spec()
	d := design.Compute(spec)

	if err := writeDesign(w, spec, d); err != nil {
		return err
	}

	if cfg.Data != "" {
		var ex textdata.Extractor
		raw := ex.Extract(cfg.Data)
		if err := writeSamples(w, raw, biquad.Apply(raw, d, procOpts...)); err != nil {
			return err
		}
	}

	if opts.in != "" {
		if err := filterWAV(opts.in, opts.out, d, procOpts, opts.verbose, w); err != nil {
			return err
		}
	}

	if opts.response {
		resp := biquad.Response(d, procOpts...)
		if err := writeResponse(w, resp, spec.SampleRate); err != nil {
			return err
		}
	}

	if opts.measure {
		if err := writeMeasurement(w, d, measureFFTSize); err != nil {
			return err
		}
	}

	if len(opts.compareOrders) > 0 {
		specs := make([]design.Spec, len(opts.compareOrders))
		for i, order := range opts.compareOrders {
			specs[i] = spec
			specs[i].Order = order
		}
		if err := writeComparison(w, specs, design.ComputeAll(specs), procOpts); err != nil {
			return err
		}
	}

	return nil
}
