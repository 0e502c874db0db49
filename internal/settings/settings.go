// Package settings persists the last used filter form state.
//
// The file is YAML. Because YAML is a superset of JSON, a JSON object using
// the same keys loads as well.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

// Errors returned by Load.
var ErrMalformed = errors.New("settings: malformed settings file")

// Settings is the persisted form state.
type Settings struct {
	FilterType string  `yaml:"filterType"`
	F0         float64 `yaml:"f0"`
	Fs         float64 `yaml:"fs"`
	Q          float64 `yaml:"q"`
	Order      int     `yaml:"order"`
	Data       string  `yaml:"dataString,omitempty"`
}

// New returns Settings with default values: a lowpass at the Nyquist
// frequency of a unit sample rate.
func New() *Settings {
	return &Settings{
		FilterType: design.LowPass.String(),
		F0:         0.5,
		Fs:         1,
		Q:          0.707,
		Order:      2,
	}
}

// Spec converts the settings into a filter spec.
func (s *Settings) Spec() design.Spec {
	return design.Spec{
		Shape:      design.ParseShape(s.FilterType),
		Freq:       s.F0,
		SampleRate: s.Fs,
		Q:          s.Q,
		Order:      s.Order,
	}
}

// DefaultPath returns the settings file location in the user's config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: no config directory: %w", err)
	}

	return filepath.Join(dir, "biquad", "settings.yaml"), nil
}

// Load reads settings from path. Keys missing from the file keep their
// defaults. A missing file is not an error. For an unreadable or malformed
// file the defaults are returned together with the error, so callers may
// log it and carry on.
func Load(path string) (*Settings, error) {
	s := New()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("settings: failed to read %s: %w", path, err)
	}

	loaded := New()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return s, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	return loaded, nil
}

// Save writes s to path, creating parent directories as needed.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: failed to encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("settings: failed to write %s: %w", path, err)
	}

	return nil
}
