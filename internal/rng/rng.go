// Package rng provides the seeded random source and in-place shuffling used
// by the partition builder and repartitioner.
//
// Reproducible shuffles are a user-facing feature: the same 32-bit seed must
// produce the same partition on every platform, today and after upgrades.
// The generator is therefore pinned to an exact bit-level algorithm rather
// than delegating to math/rand, whose stream is not stable across Go
// releases.
package rng

import "math/rand/v2"

// Source is a deterministic pseudo-random stream of floats in [0, 1).
//
// It is a mulberry32 generator: a single 32-bit word of state advanced by a
// fixed odd increment, with two multiply/xor/shift mixing rounds per draw.
// Given the same seed the stream is bit-for-bit reproducible. Seed state is
// restartable only by constructing a new Source.
//
// A Source is a single-owner mutable counter: it must be threaded through
// exactly one logical operation and never shared across concurrent
// operations, since every draw mutates the state and reordering draws breaks
// determinism.
type Source struct {
	state uint32
}

// New creates a Source seeded with the given 32-bit seed.
//
// Parameters:
//   - seed: Initial generator state
//
// Returns:
//   - *Source: Deterministic source producing the seed's fixed stream
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Float64 returns the next value of the stream, uniformly distributed in [0, 1).
//
// The uint32 arithmetic wraps exactly like the 32-bit integer multiply the
// reference mulberry32 uses, so streams match existing exported data
// produced with the same seeds.
func (s *Source) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14

	return float64(t) / (1 << 32)
}

// IntN returns a uniform value in [0, n) drawn from the stream.
//
// n must be positive. The floor-of-scaled-float construction is part of the
// reproducibility contract; do not replace it with rejection sampling.
func (s *Source) IntN(n int) int {
	return int(s.Float64() * float64(n))
}

// Shuffle permutes items in place using a reverse Fisher-Yates scan.
//
// With a non-nil src the permutation is a deterministic function of the seed
// and the input order. With a nil src the permutation is drawn from system
// randomness and is explicitly NOT reproducible. Empty and single-element
// slices are no-ops; Shuffle never fails.
//
// Parameters:
//   - items: Sequence to permute in place
//   - src: Deterministic source, or nil for system randomness
func Shuffle[T any](items []T, src *Source) {
	for i := len(items) - 1; i > 0; i-- {
		var j int
		if src != nil {
			j = src.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		items[i], items[j] = items[j], items[i]
	}
}
