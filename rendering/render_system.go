package rendering

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"island-generator/components"
)

// RenderSystem draws an island grid as coloured squares
type RenderSystem struct {
	tileMapping *components.TileMappingComponent
	tileSize    int
	background  color.Color
	showStatus  bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(tileMapping *components.TileMappingComponent, tileSize int, background color.Color) *RenderSystem {
	return &RenderSystem{
		tileMapping: tileMapping,
		tileSize:    tileSize,
		background:  background,
	}
}

// ToggleStatus shows or hides the status line overlay
func (s *RenderSystem) ToggleStatus() {
	s.showStatus = !s.showStatus
}

// Draw clears the screen and draws every tile at (x*tileSize, y*tileSize)
func (s *RenderSystem) Draw(screen *ebiten.Image, grid *components.Grid, status string) {
	screen.Fill(s.background)
	if grid == nil {
		return
	}

	size := float32(s.tileSize)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tileDef := s.tileMapping.GetTileDefinition(grid.Get(components.Point{X: x, Y: y}))
			vector.DrawFilledRect(screen, float32(x)*size, float32(y)*size, size, size, tileDef.FG, false)
		}
	}

	if s.showStatus && status != "" {
		ebitenutil.DebugPrint(screen, status)
	}
}
