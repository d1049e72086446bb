package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketchpad.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	want := defaultConfig()
	if cfg.Width != want.Width || cfg.Height != want.Height {
		t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, want.Width, want.Height)
	}
	if cfg.Background != want.Background {
		t.Errorf("Background = %q, want %q", cfg.Background, want.Background)
	}
	if len(cfg.Palette) != len(want.Palette) {
		t.Errorf("Palette has %d entries, want %d", len(cfg.Palette), len(want.Palette))
	}
}

func TestLoadConfig_OverridesFromFile(t *testing.T) {
	path := writeConfig(t, `
width = 1024
height = 768
background = "#EEEEEE"
palette = ["#112233", "#445566"]
pen_width = 8
pen_color = "#112233"
history_limit = 50
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("size = %dx%d, want 1024x768", cfg.Width, cfg.Height)
	}
	if cfg.Background != "#EEEEEE" {
		t.Errorf("Background = %q, want #EEEEEE", cfg.Background)
	}
	if len(cfg.Palette) != 2 || cfg.Palette[0] != "#112233" {
		t.Errorf("Palette = %v, want [#112233 #445566]", cfg.Palette)
	}
	if cfg.PenWidth != 8 {
		t.Errorf("PenWidth = %d, want 8", cfg.PenWidth)
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.HistoryLimit)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `pen_width = 12`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.PenWidth != 12 {
		t.Errorf("PenWidth = %d, want 12", cfg.PenWidth)
	}
	want := defaultConfig()
	if cfg.Width != want.Width || cfg.Background != want.Background {
		t.Error("unset fields lost their default values")
	}
}

func TestLoadConfig_RejectsInvalidSize(t *testing.T) {
	path := writeConfig(t, "width = 0\nheight = 600\n")

	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig accepted a zero canvas width")
	}
}

func TestLoadConfig_RejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "width = [not toml")

	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig accepted malformed TOML")
	}
}

func TestLoadConfig_EmptyPaletteFallsBack(t *testing.T) {
	path := writeConfig(t, "palette = []\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Palette) == 0 {
		t.Error("empty palette was not replaced with the default")
	}
}
