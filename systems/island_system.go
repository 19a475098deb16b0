package systems

import (
	"fmt"
	"time"

	"island-generator/components"
	"island-generator/generation"
)

// IslandSystem owns the displayed island and replaces it on a fixed cadence
type IslandSystem struct {
	builder  generation.IslandBuilder
	width    int
	height   int
	interval time.Duration
	elapsed  time.Duration
	grid     *components.Grid
	log      *MessageLog
}

// NewIslandSystem creates an island system and builds the first island
func NewIslandSystem(builder generation.IslandBuilder, width, height int, interval time.Duration, log *MessageLog) (*IslandSystem, error) {
	s := &IslandSystem{
		builder:  builder,
		width:    width,
		height:   height,
		interval: interval,
		log:      log,
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Update advances the clock by dt seconds and rebuilds once the interval has passed
func (s *IslandSystem) Update(dt float64) error {
	s.elapsed += time.Duration(dt * float64(time.Second))
	if s.elapsed < s.interval {
		return nil
	}
	s.elapsed = 0
	return s.Regenerate()
}

// Regenerate builds a new island immediately
func (s *IslandSystem) Regenerate() error {
	grid, stats, err := s.builder.BuildWithStats(s.width, s.height)
	if err != nil {
		return fmt.Errorf("failed to build island: %w", err)
	}
	s.grid = grid
	s.log.Add(stats.String())
	return nil
}

// Grid returns the island currently on display
func (s *IslandSystem) Grid() *components.Grid {
	return s.grid
}
