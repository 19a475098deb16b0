package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"island-generator/components"
	"island-generator/generation"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// MaxDimension bounds grid sizes accepted from files and requests
const MaxDimension = 512

// Config holds the generator and presentation settings
type Config struct {
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	TileSize     int           `json:"tile_size"`
	Seed         int64         `json:"seed"` // 0 = seed from the clock
	RegenerateMs int           `json:"regenerate_ms"`
	MaxDepth     int           `json:"max_depth"` // 0 = no clamp
	ServerAddr   string        `json:"server_addr"`
	Palette      PaletteConfig `json:"palette"`
}

// PaletteConfig overrides tile colours with "#rrggbb" strings
type PaletteConfig struct {
	Water string `json:"water,omitempty"`
	Sand  string `json:"sand,omitempty"`
	Grass string `json:"grass,omitempty"`
}

// DefaultConfig returns a Config matching the original 600x480 window
func DefaultConfig() *Config {
	return &Config{
		Width:        GridWidth,
		Height:       GridHeight,
		TileSize:     TileSize,
		RegenerateMs: RegenerateMs,
		MaxDepth:     generation.DefaultMaxDepth,
		ServerAddr:   ":8080",
	}
}

// RegenerateInterval returns RegenerateMs as a duration
func (c *Config) RegenerateInterval() time.Duration {
	return time.Duration(c.RegenerateMs) * time.Millisecond
}

// Validate checks the ranges of every numeric setting
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: grid %dx%d must be within 1..%d", ErrInvalidConfig, c.Width, c.Height, MaxDimension)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.TileSize)
	}
	if c.RegenerateMs <= 0 {
		return fmt.Errorf("%w: regenerate interval %dms must be positive", ErrInvalidConfig, c.RegenerateMs)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	}
	if _, err := c.TileMapping(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// TileMapping builds the tile colours, applying any palette overrides
func (c *Config) TileMapping() (*components.TileMappingComponent, error) {
	mapping := components.NewTileMappingComponent()
	overrides := []struct {
		tile  components.Tile
		value string
	}{
		{components.TileWater, c.Palette.Water},
		{components.TileSand, c.Palette.Sand},
		{components.TileGrass, c.Palette.Grass},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		clr, err := ParseHexColor(o.value)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", o.tile, err)
		}
		mapping.SetColor(o.tile, clr)
	}
	return mapping, nil
}

// ParseHexColor parses "#rrggbb" or "rrggbb"
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// LoadFile reads a JSON config. Fields missing from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["tile-size"] {
		cfg.TileSize = fromFile.TileSize
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["regenerate-ms"] {
		cfg.RegenerateMs = fromFile.RegenerateMs
	}
	if !explicitFlags["max-depth"] {
		cfg.MaxDepth = fromFile.MaxDepth
	}
	if !explicitFlags["addr"] {
		cfg.ServerAddr = fromFile.ServerAddr
	}
	cfg.Palette = fromFile.Palette
}

// ApplyEnv overrides settings from the environment
func ApplyEnv(cfg *Config) {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}
}
