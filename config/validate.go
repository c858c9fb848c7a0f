package config

import (
	"fmt"

	"stattracker/colormap"
)

// Validate checks configuration correctness.
// Zero values are accepted and filled in by Normalize.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.PollIntervalMs < 0 {
		return fmt.Errorf("poll_interval_ms must not be negative, got %d", cfg.PollIntervalMs)
	}
	if cfg.DetectIntervalMs < 0 {
		return fmt.Errorf("detect_interval_ms must not be negative, got %d", cfg.DetectIntervalMs)
	}

	o := cfg.Overlay
	if o.Size != 0 && (o.Size < MinOverlaySize || o.Size > MaxOverlaySize) {
		return fmt.Errorf("overlay.size must be between %d and %d, got %v", MinOverlaySize, MaxOverlaySize, o.Size)
	}
	if o.ColorMap != "" {
		if _, ok := colormap.ByLabel(o.ColorMap); !ok {
			return fmt.Errorf("overlay.colormap %q is not one of %q", o.ColorMap, colormap.Labels())
		}
	}
	if o.Enabled && o.Path == "" {
		return fmt.Errorf("overlay.enabled is set but overlay.path is empty")
	}

	for _, origin := range cfg.HTTP.AllowedOrigins {
		if origin == "" {
			return fmt.Errorf("http.allowed_origins must not contain empty entries")
		}
	}

	return nil
}
