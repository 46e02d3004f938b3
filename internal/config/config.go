// Package config loads the studio's TOML settings file.
//
// Settings cover the operational surface only (listen address, default
// canvas size, log level); particle effect documents are handled by the
// particle package, not here.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings are the studio binary's settings.
type Settings struct {
	// Listen is the HTTP listen address for serve mode.
	Listen string `toml:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	Canvas CanvasSettings `toml:"canvas"`
}

// CanvasSettings is the default editor viewport size, used when a request
// does not carry its own dimensions.
type CanvasSettings struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Listen:   ":8470",
		LogLevel: "info",
		Canvas:   CanvasSettings{Width: 800, Height: 600},
	}
}

// Load reads settings from path. A missing file is not an error: defaults
// are returned so the binary runs without any setup. Fields absent from the
// file keep their defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return s, nil
}
