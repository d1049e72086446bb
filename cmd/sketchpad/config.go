package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the sketchpad settings read from a TOML file.
type Config struct {
	Width        int      `toml:"width"`
	Height       int      `toml:"height"`
	Background   string   `toml:"background"`
	Palette      []string `toml:"palette"`
	PenWidth     int      `toml:"pen_width"`
	PenColor     string   `toml:"pen_color"`
	HistoryLimit int      `toml:"history_limit"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Background: "#FFFFFF",
		Palette: []string{
			"#000000", // black
			"#FF0000", // red
			"#00AA00", // green
			"#0000FF", // blue
			"#FFCC00", // yellow
		},
		PenWidth: 3,
		PenColor: "#000000",
	}
}

// loadConfig reads the config file at path, falling back to defaults
// when the file does not exist. Fields left unset in the file keep
// their default values.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the -config flag
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config %s: canvas size must be positive, got %dx%d",
			path, cfg.Width, cfg.Height)
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = defaultConfig().Palette
	}
	return cfg, nil
}
