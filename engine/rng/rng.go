// Package rng provides the deterministic random source used by scripts and
// fight AI. Every draw from the underlying source is counted so a snapshot
// can restore the exact sequence.
package rng

import "math/rand"

// countingSource counts raw draws from the wrapped source.
type countingSource struct {
	src rand.Source64
	n   int64
}

func (s *countingSource) Int63() int64 {
	s.n++
	return s.src.Int63()
}

func (s *countingSource) Uint64() uint64 {
	s.n++
	return s.src.Uint64()
}

func (s *countingSource) Seed(seed int64) {
	s.n = 0
	s.src.Seed(seed)
}

// RNG wraps math/rand.Rand with deterministic position tracking.
type RNG struct {
	seed int64
	cs   *countingSource
	src  *rand.Rand
}

// New creates a new deterministic RNG from a seed.
func New(seed int64) *RNG {
	cs := &countingSource{src: rand.NewSource(seed).(rand.Source64)}
	return &RNG{
		seed: seed,
		cs:   cs,
		src:  rand.New(cs),
	}
}

// Rnd returns a random integer in [0, n). n <= 0 returns 0.
func (r *RNG) Rnd(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n)
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	return r.Rnd(sides) + 1
}

// WeightedSelect returns an index chosen by weighted random selection.
// Zero and negative weights are never chosen. An all-zero table returns 0.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	roll := r.src.Intn(total)
	cumulative := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of raw draws made since creation.
func (r *RNG) Position() int64 {
	return r.cs.n
}

// MaxPosition bounds the positions Restore and Reset are asked to replay.
// A saved position past it is corrupt.
const MaxPosition = 1 << 24

// Restore creates an RNG and advances it to the given position.
// This reproduces the exact RNG state for save/load.
func Restore(seed int64, position int64) *RNG {
	r := New(seed)
	r.Reset(seed, position)
	return r
}

// Reset reseeds r in place and advances it to position. Holders of r see
// the restored sequence. Callers check position against MaxPosition.
func (r *RNG) Reset(seed int64, position int64) {
	r.seed = seed
	r.cs.Seed(seed)
	for i := int64(0); i < position; i++ {
		r.cs.Int63()
	}
}
