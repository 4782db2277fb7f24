package maze

import (
	"math/rand"
	"time"
)

// The source of randomness used during generation. Range must return a
// uniformly distributed integer in [min, max). Generation only terminates if
// every value in the range can actually come up.
type RandomSource interface {
	Range(min, max int) int
}

// Adapts a plain function to the RandomSource interface.
type RandomFunc func(min, max int) int

func (f RandomFunc) Range(min, max int) int {
	return f(min, max)
}

// A RandomSource backed by math/rand, remembering the seed it was created
// with so that a maze can be regenerated.
type SeededSource struct {
	seed int64
	rng  *rand.Rand
}

// Returns a new SeededSource. If the given seed is not positive, a new seed
// will be selected based on the current time in nanoseconds.
func NewSeededSource(seed int64) *SeededSource {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededSource{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Returns the seed the source was created with.
func (s *SeededSource) Seed() int64 {
	return s.seed
}

func (s *SeededSource) Range(min, max int) int {
	return min + s.rng.Intn(max-min)
}
