// Package config holds the tracker settings and loads them from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application name.
	AppName = "tracker"

	// IDSchemeTime issues "<unix-millis>-<seq>" ids.
	IDSchemeTime = "time"

	// IDSchemeUUID issues random UUIDs.
	IDSchemeUUID = "uuid"

	// DefaultPrompt is the top-level selection prompt.
	DefaultPrompt = "Select:"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds settings.
type Config struct {
	// Quiet suppresses prompts.
	Quiet bool `yaml:"quiet"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`

	// IDScheme selects how task ids are generated: "time" or "uuid".
	IDScheme string `yaml:"id_scheme"`

	// Prompt is shown when asking for a menu selection.
	Prompt string `yaml:"prompt"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		IDScheme: IDSchemeTime,
		Prompt:   DefaultPrompt,
	}
}

// Load reads a YAML file over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.IDScheme {
	case IDSchemeTime, IDSchemeUUID:
	default:
		return fmt.Errorf("%w: unknown id_scheme %q", ErrInvalid, c.IDScheme)
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	return nil
}
