package generation

import (
	"island-generator/components"
)

// ShoreRange is the Chebyshev radius searched for water around each grass tile
const ShoreRange = 2

// ApplyShoreline turns every grass tile with water within ShoreRange into sand.
// All tests read the grid as it was before the pass; writes land afterwards.
func ApplyShoreline(grid *components.Grid) {
	// First pass: find grass tiles near the coast
	var coast []components.Point
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := components.Point{X: x, Y: y}
			if grid.Get(p) == components.TileGrass && HasTileInRange(grid, components.TileWater, ShoreRange, p) {
				coast = append(coast, p)
			}
		}
	}

	// Second pass: apply sand
	for _, p := range coast {
		grid.Set(p, components.TileSand)
	}
}

// HasTileInRange reports whether tile occurs within Chebyshev distance r of p.
// Cells outside the grid are skipped, not treated as water.
func HasTileInRange(grid *components.Grid, tile components.Tile, r int, p components.Point) bool {
	for yy := p.Y - r; yy <= p.Y+r; yy++ {
		for xx := p.X - r; xx <= p.X+r; xx++ {
			q := components.Point{X: xx, Y: yy}
			if grid.InBounds(q) && grid.Get(q) == tile {
				return true
			}
		}
	}
	return false
}
