package config

import "stattracker/colormap"

// Normalize fills in defaults.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.PollIntervalMs == 0 {
		cfg.PollIntervalMs = DefaultPollIntervalMs
	}
	if cfg.DetectIntervalMs == 0 {
		cfg.DetectIntervalMs = DefaultDetectIntervalMs
	}

	if cfg.Overlay.Size == 0 {
		cfg.Overlay.Size = DefaultOverlaySize
	}
	if cfg.Overlay.ColorMap == "" {
		cfg.Overlay.ColorMap = colormap.Default().Label
	}

	if cfg.HTTP.Listen != "" && len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}
}
