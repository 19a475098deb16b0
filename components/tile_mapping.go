package components

import (
	"image/color"
)

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune        // Character used by text renderers
	FG    color.Color // Fill colour of the tile square
}

// NewTileDefinition creates a tile definition using a character code
func NewTileDefinition(glyph rune, fg color.Color) TileDefinition {
	return TileDefinition{
		Glyph: glyph,
		FG:    fg,
	}
}

// TileMappingComponent maps tile types to their visual representation
type TileMappingComponent struct {
	Definitions map[Tile]TileDefinition
}

// Default island colours
var (
	WaterColor = color.RGBA{64, 64, 192, 255}
	SandColor  = color.RGBA{192, 192, 128, 255}
	GrassColor = color.RGBA{64, 128, 64, 255}
)

// NewTileMappingComponent creates a default tile mapping
func NewTileMappingComponent() *TileMappingComponent {
	mapping := &TileMappingComponent{
		Definitions: make(map[Tile]TileDefinition),
	}
	mapping.Definitions[TileWater] = NewTileDefinition(TileWater.Glyph(), WaterColor)
	mapping.Definitions[TileSand] = NewTileDefinition(TileSand.Glyph(), SandColor)
	mapping.Definitions[TileGrass] = NewTileDefinition(TileGrass.Glyph(), GrassColor)
	return mapping
}

// SetColor overrides the fill colour of a tile type
func (t *TileMappingComponent) SetColor(tile Tile, fg color.Color) {
	def := t.GetTileDefinition(tile)
	def.Glyph = tile.Glyph()
	def.FG = fg
	t.Definitions[tile] = def
}

// GetTileDefinition returns the visual definition for a given tile type
func (t *TileMappingComponent) GetTileDefinition(tile Tile) TileDefinition {
	if def, exists := t.Definitions[tile]; exists {
		return def
	}

	// Return a default if the tile type isn't defined
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255}, // Magenta for undefined tiles
	}
}
