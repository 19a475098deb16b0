package components

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions is returned when a grid is requested with a non-positive size
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Tile is the terrain kind stored in each grid cell
type Tile uint8

// Tile types
const (
	TileWater Tile = iota
	TileSand
	TileGrass
)

// String returns the lowercase name of the tile
func (t Tile) String() string {
	switch t {
	case TileWater:
		return "water"
	case TileSand:
		return "sand"
	case TileGrass:
		return "grass"
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// Glyph returns the single character used for text dumps of the map
func (t Tile) Glyph() rune {
	switch t {
	case TileWater:
		return '.'
	case TileSand:
		return ':'
	case TileGrass:
		return '#'
	}
	return '?'
}

// ParseGlyph is the inverse of Glyph
func ParseGlyph(r rune) (Tile, bool) {
	switch r {
	case '.':
		return TileWater, true
	case ':':
		return TileSand, true
	case '#':
		return TileGrass, true
	}
	return 0, false
}

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// Vec2 is an unrounded position, used for lobe centres
type Vec2 struct {
	X, Y float64
}

// Grid stores the island tiles in row-major order
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// ShortestSide returns min(width, height)
func (g *Grid) ShortestSide() int {
	return min(g.width, g.height)
}

// InBounds reports whether p lies inside the grid
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(p Point) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("components: point (%d, %d) outside %dx%d grid", p.X, p.Y, g.width, g.height))
	}
	return p.Y*g.width + p.X
}

// Get returns the tile at p. Callers must check InBounds first.
func (g *Grid) Get(p Point) Tile {
	return g.tiles[g.index(p)]
}

// Set writes the tile at p. Callers must check InBounds first.
func (g *Grid) Set(p Point, tile Tile) {
	g.tiles[g.index(p)] = tile
}

// Fill sets every cell to tile
func (g *Grid) Fill(tile Tile) {
	for i := range g.tiles {
		g.tiles[i] = tile
	}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		tiles:  make([]Tile, len(g.tiles)),
	}
	copy(c.tiles, g.tiles)
	return c
}

// Equal reports whether both grids have the same size and tiles
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold tile
func (g *Grid) Count(tile Tile) int {
	n := 0
	for _, t := range g.tiles {
		if t == tile {
			n++
		}
	}
	return n
}

// Rows renders each row as a string of tile glyphs
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		for _, t := range g.tiles[y*g.width : (y+1)*g.width] {
			sb.WriteRune(t.Glyph())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the glyph rows separated by newlines
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// ParseGrid builds a grid from glyph rows. All rows must have the same length.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	width := len([]rune(rows[0]))
	g, err := NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			tile, ok := ParseGlyph(r)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown glyph %q at column %d", y, r, x)
			}
			g.Set(Point{X: x, Y: y}, tile)
		}
	}
	return g, nil
}
