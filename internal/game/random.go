package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the random source threaded through weather, pest and tip draws.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns the deterministic generator used for a given seed.
func NewRand(seed int64) *rand.Rand {
	return seededRNG(seed)
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// dayRNG gives every tick its own stream so a day can be replayed from the
// snapshot alone.
func dayRNG(seed int64, day int) *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(
		seedWord(seed, fmt.Sprintf("day:%d:a", day)),
		seedWord(seed, fmt.Sprintf("day:%d:b", day)),
	))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}
