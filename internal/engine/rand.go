package engine

import (
	"math/rand"
	"time"
)

// Rand is the random source behind every roll the engine makes: quality
// tiers, courtship outcomes, exam jitter, event selection. Injecting it
// keeps transitions deterministic under a seeded source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. Seed 0 means "use the clock".
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// rollRange draws uniformly from the inclusive range [min, max].
func rollRange(rng Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
