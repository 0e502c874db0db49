package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/internal/settings"
	"github.com/cwbudde/algo-biquad/internal/textdata"
)

const helpText = `Paste or type data to filter it with the current design.
Commands:
  :type lpf|hpf|bpf1|bpf2|notch   :f0 Hz   :fs Hz   :q Q   :order N
  :show       print the coefficients
  :again      filter the last data again
  :response   print the response summary and table
  :help       this text
  :quit       leave (Ctrl-D works too)
`

// lineReader is the part of *readline.Instance the session uses.
type lineReader interface {
	Readline() (string, error)
}

// session is the state of an interactive run. It edits cfg in place, so the
// caller can save the final settings.
type session struct {
	cfg      *settings.Settings
	opts     []biquad.Option
	w        io.Writer
	design   biquad.Design
	extract  textdata.Extractor
	lastData string
}

func newSession(cfg *settings.Settings, opts []biquad.Option, w io.Writer) *session {
	s := &session{cfg: cfg, opts: opts, w: w, lastData: cfg.Data}
	s.redesign()
	return s
}

func (s *session) redesign() {
	s.design = design.Compute(s.cfg.Spec())
}

func interactive(cfg *settings.Settings, opts []biquad.Option, w io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "data> ",
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return fmt.Errorf("failed to start interactive mode: %w", err)
	}
	defer rl.Close()

	fmt.Fprint(w, helpText)
	return newSession(cfg, opts, w).loop(rl)
}

func (s *session) loop(r lineReader) error {
	if err := writeDesign(s.w, s.cfg.Spec(), s.design); err != nil {
		return err
	}

	for {
		line, err := r.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.handle(strings.TrimSpace(line))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handle processes one input line. It returns true when the session ends.
func (s *session) handle(line string) (bool, error) {
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		s.lastData = line
		return false, s.filter(line)
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err := fmt.Fprint(s.w, helpText)
		return false, err
	case "show":
		return false, writeDesign(s.w, s.cfg.Spec(), s.design)
	case "again":
		if s.lastData == "" {
			_, err := fmt.Fprintln(s.w, "no data yet")
			return false, err
		}
		return false, s.filter(s.lastData)
	case "response":
		return false, writeResponse(s.w, biquad.Response(s.design, s.opts...), s.cfg.Fs)
	case "type", "f0", "fs", "q", "order":
		if err := s.set(cmd, arg); err != nil {
			_, werr := fmt.Fprintf(s.w, "%v\n", err)
			return false, werr
		}
		s.redesign()
		return false, writeDesign(s.w, s.cfg.Spec(), s.design)
	default:
		_, err := fmt.Fprintf(s.w, "unknown command %q, try :help\n", cmd)
		return false, err
	}
}

func (s *session) set(name, value string) error {
	if name == "type" {
		// A new shape starts over from the default Q.
		s.cfg.FilterType = design.ParseShape(value).String()
		s.cfg.Q = settings.New().Q
		return nil
	}

	if name == "order" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("order: %q is not an integer", value)
		}
		s.cfg.Order = n
		return nil
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s: %q is not a number", name, value)
	}
	switch name {
	case "f0":
		s.cfg.F0 = v
	case "fs":
		s.cfg.Fs = v
	case "q":
		s.cfg.Q = v
	}

	return nil
}

func (s *session) filter(text string) error {
	s.cfg.Data = text
	raw := s.extract.Extract(text)
	return writeSamples(s.w, raw, biquad.Apply(raw, s.design, s.opts...))
}
