// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNG wraps a seeded generator so every random decision in a run can be replayed.
type PRNG struct {
	rng *rand.Rand
}

// NewPRNG creates a generator with the given seed. A zero seed uses the current time.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a value in [0, n).
func (p *PRNG) Intn(n int) int {
	return p.rng.Intn(n)
}

// Float64 returns a value in [0.0, 1.0).
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// Range returns a value in [min, max).
func (p *PRNG) Range(min, max float64) float64 {
	return min + (max-min)*p.rng.Float64()
}
