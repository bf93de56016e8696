package rng

import (
	"context"
	"hash/fnv"
	"math/rand"
)

// SeededAdapter implements ports.RNGPort with deterministic named streams.
// The stream name is folded into the seed so distinct operations sharing a
// base seed still draw from independent sequences.
type SeededAdapter struct{}

// NewSeededAdapter creates a new seeded RNG adapter
func NewSeededAdapter() *SeededAdapter {
	return &SeededAdapter{}
}

// SeededStream returns a rand.Rand whose sequence depends only on the
// stream name and seed.
func (a *SeededAdapter) SeededStream(_ context.Context, name string, seed int64) (*rand.Rand, error) {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64()))), nil
}
