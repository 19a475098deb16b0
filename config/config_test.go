package config

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"island-generator/components"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigMatchesWindow(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 75 || cfg.Height != 60 {
		t.Fatalf("expected 75x60 tiles, got=%dx%d", cfg.Width, cfg.Height)
	}
	w, h := GetWindowSize(cfg.Width, cfg.Height, cfg.TileSize)
	if w != WindowWidth || h != WindowHeight {
		t.Fatalf("expected %dx%d window, got=%dx%d", WindowWidth, WindowHeight, w, h)
	}
	if cfg.RegenerateInterval() != time.Second {
		t.Fatalf("expected 1s interval, got=%v", cfg.RegenerateInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	mutations := map[string]func(*Config){
		"zero width":     func(c *Config) { c.Width = 0 },
		"huge height":    func(c *Config) { c.Height = MaxDimension + 1 },
		"zero tile":      func(c *Config) { c.TileSize = 0 },
		"zero interval":  func(c *Config) { c.RegenerateMs = 0 },
		"negative depth": func(c *Config) { c.MaxDepth = -1 },
		"bad palette":    func(c *Config) { c.Palette.Sand = "sand" },
	}
	for name, mutate := range mutations {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got=%v", name, err)
		}
	}
}

func TestLoadFileKeepsDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, `{"width": 48, "height": 24, "seed": 7, "palette": {"water": "#102030"}}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Width != 48 || cfg.Height != 24 || cfg.Seed != 7 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.TileSize != TileSize || cfg.RegenerateMs != RegenerateMs {
		t.Fatalf("expected defaults for missing fields, got=%+v", cfg)
	}

	mapping, err := cfg.TileMapping()
	if err != nil {
		t.Fatalf("TileMapping: %v", err)
	}
	if got := mapping.GetTileDefinition(components.TileWater).FG; got != (color.RGBA{0x10, 0x20, 0x30, 255}) {
		t.Fatalf("expected palette override for water, got=%v", got)
	}
	if got := mapping.GetTileDefinition(components.TileGrass).FG; got != components.GrassColor {
		t.Fatalf("expected default grass colour, got=%v", got)
	}
}

func TestLoadFileRejectsBadJSON(t *testing.T) {
	path := writeConfig(t, `{"width": "wide"}`)
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestMergePrefersExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 100
	cfg.Seed = 42

	fromFile := DefaultConfig()
	fromFile.Width = 30
	fromFile.Height = 20
	fromFile.Seed = 9

	Merge(cfg, fromFile, map[string]bool{"width": true})

	if cfg.Width != 100 {
		t.Fatalf("expected flag width to win, got=%d", cfg.Width)
	}
	if cfg.Height != 20 || cfg.Seed != 9 {
		t.Fatalf("expected file values for unset flags, got=%+v", cfg)
	}
}

func TestApplyEnvServerAddr(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9999")
	cfg := DefaultConfig()
	ApplyEnv(cfg)
	if cfg.ServerAddr != ":9999" {
		t.Fatalf("expected env override, got=%q", cfg.ServerAddr)
	}
}

func TestParseHexColor(t *testing.T) {
	clr, err := ParseHexColor("#40c080")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if clr != (color.RGBA{0x40, 0xc0, 0x80, 255}) {
		t.Fatalf("unexpected colour %v", clr)
	}
	for _, bad := range []string{"", "#fff", "#gggggg", "12345678"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestLoadSourceFromLocalPath(t *testing.T) {
	path := writeConfig(t, `{"width": 32, "height": 16}`)

	cfg, err := LoadSource(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 16 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestFetchRejectsEmptySource(t *testing.T) {
	if _, err := Fetch(context.Background(), "", t.TempDir()); err == nil {
		t.Fatalf("expected error for empty source")
	}
}
