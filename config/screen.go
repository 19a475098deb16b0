package config

import "image/color"

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 8

	// Window dimensions in pixels
	WindowWidth  = 600
	WindowHeight = 480

	// Grid dimensions in tiles (derived from window and tile size)
	GridWidth  = WindowWidth / TileSize
	GridHeight = WindowHeight / TileSize

	// How often a fresh island replaces the current one, in milliseconds
	RegenerateMs = 1000
)

// BackgroundColor is drawn behind the tiles
var BackgroundColor = color.RGBA{48, 48, 48, 255}

// GetWindowSize returns the window size for a grid of the given size
func GetWindowSize(width, height, tileSize int) (int, int) {
	return width * tileSize, height * tileSize
}
