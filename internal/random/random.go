package random

import (
	"math/rand"
	"time"
)

// Field produces the quantized pseudo-random scalars used to seed and recycle scene
// entities. Every sample is an integer drawn uniformly from [0, n) and then shifted and
// scaled, so the value grid matches across init and recycle paths.
type Field struct {
	rng  *rand.Rand
	seed int64
}

// New returns a field seeded with seed. Seed 0 uses a time-based seed.
func New(seed int64) *Field {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Field{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the effective seed (never 0).
func (f *Field) Seed() int64 {
	return f.seed
}

// Intn returns a uniform integer in [0, n). n <= 0 returns 0.
func (f *Field) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return f.rng.Intn(n)
}

// Step returns (U{0..n-1} + offset) / div, e.g. Step(200, -100, 50) is in [-2, 2).
func (f *Field) Step(n, offset int, div float32) float32 {
	return float32(f.Intn(n)+offset) / div
}

// Span returns base + U{0..n-1} / div.
func (f *Field) Span(base float32, n int, div float32) float32 {
	return base + float32(f.Intn(n))/div
}
