package core

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness consumed by seeding. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// draws one from the clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It panics if n <= 0.
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Range returns a random int in [lo, hi). ok is false when the range is empty.
func Range(src Source, lo, hi int) (v int, ok bool) {
	if hi <= lo {
		return 0, false
	}
	return lo + src.IntN(hi-lo), true
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
