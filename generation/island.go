package generation

import (
	"math"

	"island-generator/components"
)

// Lobe shape constants
const (
	// diskShrink trims the stamped disk slightly so overlapping lobes leave a ragged coast
	diskShrink = 0.995

	minNeighbours = 4
	maxNeighbours = 7 // exclusive

	minRadiusFraction = 0.5
	maxRadiusFraction = 0.75 // exclusive
)

// LandGenerator stamps circular grass lobes onto a grid and branches into
// smaller child lobes around each one
type LandGenerator struct {
	rng   RandomSource
	lobes int
}

// NewLandGenerator creates a land generator drawing from rng
func NewLandGenerator(rng RandomSource) *LandGenerator {
	return &LandGenerator{rng: rng}
}

// Lobes returns how many lobes have been stamped since the generator was created
func (g *LandGenerator) Lobes() int {
	return g.lobes
}

// Generate stamps a lobe at center and recurses into its children until
// iterations runs out. Coordinates outside the grid are ignored.
func (g *LandGenerator) Generate(grid *components.Grid, center components.Vec2, radius, iterations float64) {
	if iterations <= 0 || radius <= 0 {
		return
	}

	g.stamp(grid, center, radius)

	// The loop starts at 1, so a lobe gets neighbours-1 children
	neighbours := g.rng.IntRange(minNeighbours, maxNeighbours)
	for i := 1; i < neighbours; i++ {
		angle := g.rng.Uniform(0, 2*math.Pi)
		r := radius * g.rng.Uniform(minRadiusFraction, maxRadiusFraction)
		child := components.Vec2{
			X: center.X + 2*r*math.Sin(angle),
			Y: center.Y + 2*r*math.Cos(angle),
		}
		g.Generate(grid, child, r, iterations-1)
	}
}

// stamp sets every in-bounds cell inside the shrunken disk to grass.
// The scan window is [c-r, c+r) on both axes, truncated toward zero.
func (g *LandGenerator) stamp(grid *components.Grid, center components.Vec2, radius float64) {
	g.lobes++
	limit := radius * radius * diskShrink

	for y := int(center.Y - radius); y < int(center.Y+radius); y++ {
		for x := int(center.X - radius); x < int(center.X+radius); x++ {
			p := components.Point{X: x, Y: y}
			if !grid.InBounds(p) {
				continue
			}
			dx := center.X - float64(x)
			dy := center.Y - float64(y)
			if dx*dx+dy*dy < limit {
				grid.Set(p, components.TileGrass)
			}
		}
	}
}
