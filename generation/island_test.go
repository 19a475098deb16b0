package generation

import (
	"testing"

	"island-generator/components"
)

// stubSource returns fixed values and counts the draws made
type stubSource struct {
	neighbours   int
	intCalls     int
	uniformCalls int
}

func (s *stubSource) IntRange(min, max int) int {
	s.intCalls++
	return s.neighbours
}

func (s *stubSource) Uniform(min, max float64) float64 {
	s.uniformCalls++
	return min
}

func waterGrid(t *testing.T, width, height int) *components.Grid {
	t.Helper()
	g, err := components.NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Fill(components.TileWater)
	return g
}

func TestGenerateSingleLobe(t *testing.T) {
	grid := waterGrid(t, 10, 10)
	rng := &stubSource{neighbours: 1}

	NewLandGenerator(rng).Generate(grid, components.Vec2{X: 5, Y: 5}, 2, 1)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			dx, dy := 5-x, 5-y
			want := components.TileWater
			if float64(dx*dx+dy*dy) < 4*0.995 {
				want = components.TileGrass
			}
			if got := grid.Get(components.Point{X: x, Y: y}); got != want {
				t.Fatalf("tile (%d,%d): expected %v, got=%v", x, y, want, got)
			}
		}
	}
	if got := grid.Get(components.Point{X: 5, Y: 7}); got != components.TileWater {
		t.Fatalf("expected (5,7) at distance^2=4 to stay water, got=%v", got)
	}
	if got := grid.Count(components.TileGrass); got != 9 {
		t.Fatalf("expected 9 grass tiles, got=%d", got)
	}
	if rng.uniformCalls != 0 {
		t.Fatalf("expected no child draws, got=%d", rng.uniformCalls)
	}
}

func TestGenerateSpawnsNeighboursMinusOneChildren(t *testing.T) {
	grid := waterGrid(t, 40, 40)
	rng := &stubSource{neighbours: 3}

	land := NewLandGenerator(rng)
	land.Generate(grid, components.Vec2{X: 20, Y: 20}, 6, 2)

	// root + 2 children; grandchildren hit the iteration floor before stamping
	if land.Lobes() != 3 {
		t.Fatalf("expected 3 lobes, got=%d", land.Lobes())
	}
	if rng.intCalls != 3 {
		t.Fatalf("expected a branch draw per stamped lobe (3), got=%d", rng.intCalls)
	}
	if rng.uniformCalls != 12 {
		t.Fatalf("expected 2 draws per spawned child (12), got=%d", rng.uniformCalls)
	}
}

func TestGenerateChildPlacement(t *testing.T) {
	grid := waterGrid(t, 40, 40)
	// angle 0 places the child straight down: +y by 2r
	rng := &stubSource{neighbours: 2}

	NewLandGenerator(rng).Generate(grid, components.Vec2{X: 20, Y: 10}, 4, 2)

	// child radius 2 centred at (20, 14)
	if got := grid.Get(components.Point{X: 20, Y: 15}); got != components.TileGrass {
		t.Fatalf("expected child lobe to reach (20,15), got=%v", got)
	}
	if got := grid.Get(components.Point{X: 20, Y: 16}); got != components.TileWater {
		t.Fatalf("expected (20,16) past the child rim to stay water, got=%v", got)
	}
	if got := grid.Get(components.Point{X: 20, Y: 4}); got != components.TileWater {
		t.Fatalf("expected no lobe above the root, got=%v", got)
	}
}

func TestGenerateStopsOnNonPositiveInput(t *testing.T) {
	grid := waterGrid(t, 10, 10)
	rng := &stubSource{neighbours: 6}
	land := NewLandGenerator(rng)

	land.Generate(grid, components.Vec2{X: 5, Y: 5}, 3, 0)
	land.Generate(grid, components.Vec2{X: 5, Y: 5}, 0, 4)
	land.Generate(grid, components.Vec2{X: 5, Y: 5}, 3, -1.5)

	if land.Lobes() != 0 || rng.intCalls != 0 {
		t.Fatalf("expected no stamping, got lobes=%d draws=%d", land.Lobes(), rng.intCalls)
	}
	if grid.Count(components.TileWater) != 100 {
		t.Fatalf("expected grid untouched")
	}
}

func TestGenerateIgnoresOutOfBoundsCells(t *testing.T) {
	// Grid.Set panics outside the grid, so any stray write fails the test
	grid := waterGrid(t, 12, 8)
	rng := NewRandomSource(7)

	land := NewLandGenerator(rng)
	land.Generate(grid, components.Vec2{X: -3, Y: 2}, 6, 4)
	land.Generate(grid, components.Vec2{X: 14.5, Y: 9.5}, 5, 4)

	if grid.Count(components.TileGrass) == 0 {
		t.Fatalf("expected lobes overlapping the edge to stamp some grass")
	}
}

func TestMathRandSourceRanges(t *testing.T) {
	rng := NewRandomSource(42)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		n := rng.IntRange(4, 7)
		if n < 4 || n >= 7 {
			t.Fatalf("IntRange(4, 7) = %d, out of range", n)
		}
		seen[n] = true

		f := rng.Uniform(0.5, 0.75)
		if f < 0.5 || f >= 0.75 {
			t.Fatalf("Uniform(0.5, 0.75) = %f, out of range", f)
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected all of 4, 5, 6 to be drawn, got=%v", seen)
	}
}
