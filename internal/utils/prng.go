// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// IntSource is the subset of randomness the weighted-choice helper needs.
// *PRNG satisfies it, and tests substitute deterministic sources.
type IntSource interface {
	Intn(n int) int
}

// PRNG is a wrapper around Go's standard random generator that allows
// predictable (seeded) randomness throughout maze generation.
type PRNG struct {
	rng *rand.Rand
}

// NewPRNG creates a new generator with the given seed.
// A seed of 0 uses the current time.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNG{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNG) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNG) Float64() float64 {
	return s.rng.Float64()
}

// Shuffle pseudo-randomizes the order of n elements via the swap function.
func (s *PRNG) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// WeightedCount is one outcome of a categorical distribution over small counts.
type WeightedCount struct {
	Count  int
	Weight int
}

// ChooseWeighted performs a weighted random choice over an outcome table.
// It sums all weights, draws a random number in that range, and finds the
// outcome the number falls into.
func ChooseWeighted(src IntSource, entries []WeightedCount) int {
	if len(entries) == 0 {
		return 0
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].Count
	}

	r := src.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Count
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].Count
}
