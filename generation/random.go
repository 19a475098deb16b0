package generation

import (
	"math/rand"
)

// MathRandSource adapts *rand.Rand to RandomSource
type MathRandSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a seeded random source
func NewRandomSource(seed int64) *MathRandSource {
	return &MathRandSource{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [min, max)
func (s *MathRandSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}

// Uniform returns a uniform float in [min, max)
func (s *MathRandSource) Uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
