package config

import (
	"fmt"
	"os"

	"pixel-garden/internal/garden"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTuning = "classic"
	DefaultFPS    = 60
	DefaultWidth  = 640
	DefaultHeight = 400
	DefaultScale  = 2
)

// Config describes one run of any host.
type Config struct {
	// Tuning names a preset. TuningFile, when set, wins over it.
	Tuning     string            `yaml:"tuning"`
	TuningFile string            `yaml:"tuning_file,omitempty"`
	Seed       int64             `yaml:"seed"`
	FPS        int               `yaml:"fps"`
	Overrides  map[string]string `yaml:"overrides,omitempty"`

	// Width and Height are the window's logical size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Tuning: DefaultTuning,
		FPS:    DefaultFPS,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Scale:  DefaultScale,
	}
}

// Load reads a YAML config. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Set records an override, replacing any earlier value for key.
func (c *Config) Set(key, value string) {
	if c.Overrides == nil {
		c.Overrides = map[string]string{}
	}
	c.Overrides[key] = value
}

// Resolve builds the tuning the run uses: the tuning file or named preset,
// with overrides applied and the result validated.
func (c *Config) Resolve() (garden.Tuning, error) {
	var (
		t   garden.Tuning
		err error
	)
	switch {
	case c.TuningFile != "":
		t, err = garden.LoadTuning(c.TuningFile)
		if err != nil {
			return garden.Tuning{}, fmt.Errorf("tuning file %s: %w", c.TuningFile, err)
		}
	default:
		name := c.Tuning
		if name == "" {
			name = DefaultTuning
		}
		var ok bool
		t, ok = garden.Preset(name)
		if !ok {
			return garden.Tuning{}, fmt.Errorf("%w: %q (have %v)", garden.ErrUnknownTuning, name, garden.PresetNames())
		}
	}
	if err := t.Apply(c.Overrides); err != nil {
		return garden.Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return garden.Tuning{}, err
	}
	return t, nil
}

// FrameRate returns FPS, falling back to the default when unset.
func (c *Config) FrameRate() int {
	if c.FPS <= 0 {
		return DefaultFPS
	}
	return c.FPS
}
