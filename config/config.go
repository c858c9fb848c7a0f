// Package config loads the tracker's YAML configuration
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPollIntervalMs   = 33 // ~30 Hz
	DefaultDetectIntervalMs = 1000
	DefaultOverlaySize      = 6
	MinOverlaySize          = 1
	MaxOverlaySize          = 10
)

type Config struct {
	PollIntervalMs   int           `yaml:"poll_interval_ms"`
	DetectIntervalMs int           `yaml:"detect_interval_ms"`
	HTTP             HTTPConfig    `yaml:"http"`
	Overlay          OverlayConfig `yaml:"overlay"`

	// RecordDir, when set, saves every game session as a replayable dump below it
	RecordDir string `yaml:"record_dir"`
}

// ---- HTTP ----

type HTTPConfig struct {
	Listen         string   `yaml:"listen"` // empty disables the HTTP server
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ---- OVERLAY ----

type OverlayConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Path     string  `yaml:"path"`
	Size     float32 `yaml:"size"`
	ColorMap string  `yaml:"colormap"`
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

func (c *Config) DetectInterval() time.Duration {
	return time.Duration(c.DetectIntervalMs) * time.Millisecond
}

// Load reads path, then validates and normalizes the result.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	Normalize(cfg)
	return cfg, nil
}

// decode rejects unknown keys so typos do not silently fall back to defaults
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
