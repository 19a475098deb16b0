package generation

import (
	"fmt"
	"time"

	"island-generator/components"
)

// DefaultMaxDepth caps the recursion depth of the land generator.
// A 48x24 grid needs 11 levels; tiny grids would otherwise ask for dozens.
const DefaultMaxDepth = 11

// Parameters are the arguments of the root Generate call
type Parameters struct {
	Center     components.Vec2
	Radius     float64
	Iterations float64
}

// InitialParameters computes the root lobe for grid: centred, a quarter of
// the shortest side wide, with radius/(radius/8)^2 iterations
func InitialParameters(grid *components.Grid) Parameters {
	radius := float64(grid.ShortestSide()) / 4
	params := Parameters{
		Center: components.Vec2{
			X: float64(grid.Width()) / 2,
			Y: float64(grid.Height()) / 2,
		},
		Radius: radius,
	}
	if radius > 0 {
		step := radius / 8
		params.Iterations = radius / (step * step)
	}
	return params
}

// Stats summarises one generation pass
type Stats struct {
	Width      int
	Height     int
	Lobes      int
	Iterations float64
	Water      int
	Sand       int
	Grass      int
	Elapsed    time.Duration
}

// Land returns the number of non-water tiles
func (s Stats) Land() int {
	return s.Sand + s.Grass
}

// String formats the stats for the message log
func (s Stats) String() string {
	return fmt.Sprintf("Island %dx%d: %d lobes, %d grass, %d sand, %d water (%s)",
		s.Width, s.Height, s.Lobes, s.Grass, s.Sand, s.Water, s.Elapsed.Round(time.Microsecond))
}

// MapBuilder runs complete generation passes
type MapBuilder struct {
	rng      RandomSource
	maxDepth int
}

// NewMapBuilder creates a map builder seeded with the current time
func NewMapBuilder() *MapBuilder {
	return NewMapBuilderWithSource(NewRandomSource(time.Now().UnixNano()))
}

// NewMapBuilderWithSource creates a map builder drawing from rng
func NewMapBuilderWithSource(rng RandomSource) *MapBuilder {
	return &MapBuilder{
		rng:      rng,
		maxDepth: DefaultMaxDepth,
	}
}

// SetSeed allows setting a specific seed for reproducible islands
func (b *MapBuilder) SetSeed(seed int64) {
	b.rng = NewRandomSource(seed)
}

// SetMaxDepth changes the recursion cap. Zero or less disables it.
func (b *MapBuilder) SetMaxDepth(depth int) {
	b.maxDepth = depth
}

// Build generates a new island grid
func (b *MapBuilder) Build(width, height int) (*components.Grid, error) {
	grid, _, err := b.BuildWithStats(width, height)
	return grid, err
}

// BuildWithStats generates a new island grid and reports what went into it
func (b *MapBuilder) BuildWithStats(width, height int) (*components.Grid, Stats, error) {
	start := time.Now()

	grid, err := components.NewGrid(width, height)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to allocate island grid: %w", err)
	}
	grid.Fill(components.TileWater)

	params := InitialParameters(grid)
	if b.maxDepth > 0 && params.Iterations > float64(b.maxDepth) {
		params.Iterations = float64(b.maxDepth)
	}

	land := NewLandGenerator(b.rng)
	land.Generate(grid, params.Center, params.Radius, params.Iterations)
	ApplyShoreline(grid)

	stats := Stats{
		Width:      width,
		Height:     height,
		Lobes:      land.Lobes(),
		Iterations: params.Iterations,
		Water:      grid.Count(components.TileWater),
		Sand:       grid.Count(components.TileSand),
		Grass:      grid.Count(components.TileGrass),
		Elapsed:    time.Since(start),
	}
	return grid, stats, nil
}
