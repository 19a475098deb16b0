package server

import (
	"image"
	"image/draw"

	"island-generator/components"
)

// DrawGrid paints each tile as a tileSize square in its mapped colour
func DrawGrid(grid *components.Grid, mapping *components.TileMappingComponent, tileSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width()*tileSize, grid.Height()*tileSize))
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			def := mapping.GetTileDefinition(grid.Get(components.Point{X: x, Y: y}))
			rect := image.Rect(x*tileSize, y*tileSize, (x+1)*tileSize, (y+1)*tileSize)
			draw.Draw(img, rect, image.NewUniform(def.FG), image.Point{}, draw.Src)
		}
	}
	return img
}
