package generation

import (
	"island-generator/components"
)

// RandomSource supplies the draws used by the land generator.
// Both ranges are half-open: [min, max).
type RandomSource interface {
	IntRange(min, max int) int
	Uniform(min, max float64) float64
}

// IslandBuilder produces a finished island grid along with its stats
type IslandBuilder interface {
	BuildWithStats(width, height int) (*components.Grid, Stats, error)
}
