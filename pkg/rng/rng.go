package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
	"sort"
)

// RNG is the single deterministic randomness source for a ZORA run (or one
// internal sub-stage of it, such as a solver-retry attempt). It implements
// spec.md §4.1's contract: Next, Range, Shuffle, Choice, Sample.
//
// The underlying generator is xoshiro256** (Blackman & Vigna, 2018), a
// fully specified, portable algorithm: given the same 256-bit state, any
// conforming re-implementation in any language produces the identical
// output sequence. This is why ZORA uses it instead of math/rand's
// generator, whose algorithm is not part of the Go language spec and is
// free to change between toolchain versions — spec.md §4.1 requires a
// "named, portable pseudorandom generator whose state transition is fully
// specified," which only a from-scratch implementation of a published
// algorithm can guarantee.
//
// Sub-seed derivation follows the same SHA-256 scheme the teacher pipeline
// used for per-stage RNG isolation:
//
//	seed_stage = H(masterSeed, stageName, configHash)[:8]
//
// The derived seed expands into the 256-bit xoshiro state via SplitMix64,
// the seeding method recommended by the xoshiro authors.
type RNG struct {
	seed      uint64
	stageName string
	s0, s1, s2, s3 uint64
}

// New creates an RNG directly from a 64-bit seed, expanded via SplitMix64.
// Use this for the single top-level RNG owned by a generate() run.
func New(seed uint64) *RNG {
	r := &RNG{seed: seed}
	sm := seed
	r.s0 = splitmix64(&sm)
	r.s1 = splitmix64(&sm)
	r.s2 = splitmix64(&sm)
	r.s3 = splitmix64(&sm)
	return r
}

// NewSubRNG derives a stage-isolated RNG from a master seed, a stage name,
// and a configuration hash, exactly as the teacher pipeline's
// NewRNG(masterSeed, stageName, configHash) did. C6 and C7 use this to
// produce retry sub-seeds without ever reseeding the run's single top-level
// RNG (spec.md §3 "RNG is created once per run and never re-seeded
// mid-run" — the top-level RNG stays fixed; only derived, named sub-RNGs
// are created for retry attempts).
func NewSubRNG(masterSeed uint64, stageName string, configHash []byte) *RNG {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(stageName))
	h.Write(configHash)
	sum := h.Sum(nil)
	derived := binary.BigEndian.Uint64(sum[:8])
	r := New(derived)
	r.stageName = stageName
	return r
}

// splitmix64 advances *state and returns the next SplitMix64 output,
// used only to expand a 64-bit seed into xoshiro256**'s 256-bit state.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5F9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Seed returns the 64-bit seed this RNG was constructed or derived from.
func (r *RNG) Seed() uint64 { return r.seed }

// StageName returns the stage this RNG was derived for, or "" for a
// top-level RNG created via New.
func (r *RNG) StageName() string { return r.stageName }

func rotl(x uint64, k uint) uint64 {
	return bits.RotateLeft64(x, int(k))
}

// Next returns the next raw 64-bit output of the xoshiro256** generator.
// This is the sole source of entropy for every other method on RNG.
func (r *RNG) Next() uint64 {
	result := rotl(r.s1*5, 7) * 9

	t := r.s1 << 17

	r.s2 ^= r.s0
	r.s3 ^= r.s1
	r.s1 ^= r.s2
	r.s0 ^= r.s3
	r.s2 ^= t
	r.s3 = rotl(r.s3, 45)

	return result
}

// Range returns a pseudo-random integer in [lo, hiExclusive). Panics if
// hiExclusive <= lo. Uses Lemire's multiply-and-reject bounded generation
// over Next's 64-bit output, which rejects and redraws only the rare
// biased products, so the distribution is uniform without modulo bias.
func (r *RNG) Range(lo, hiExclusive int) int {
	if hiExclusive <= lo {
		panic("rng: Range requires hiExclusive > lo")
	}
	span := uint64(hiExclusive - lo)
	return lo + int(r.bounded(span))
}

// bounded returns a uniform value in [0, n) derived from Next, using
// Lemire's method to avoid modulo bias.
func (r *RNG) bounded(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	threshold := -n % n
	for {
		hi, lo := bits.Mul64(r.Next(), n)
		if lo >= threshold {
			return hi
		}
	}
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	// Use the top 53 bits for a uniformly distributed double, the
	// standard xoshiro-recommended extraction.
	return float64(r.Next()>>11) * (1.0 / (1 << 53))
}

// Shuffle performs an in-place Fisher-Yates shuffle of n elements using the
// supplied swap function, per spec.md §4.1 ("shuffle uses Fisher-Yates
// drawing from range").
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Range(0, i+1)
		swap(i, j)
	}
}

// Choice returns a uniformly random element of seq. Panics on an empty
// sequence. Callers must pass an already-sorted-by-stable-key sequence
// when the elements originated from a map or set (spec.md §4.1).
func Choice[T any](r *RNG, seq []T) T {
	if len(seq) == 0 {
		panic("rng: Choice on empty sequence")
	}
	return seq[r.Range(0, len(seq))]
}

// Sample draws k distinct elements from seq without replacement, preserving
// none of seq's original order (the result order is the draw order).
// Panics if k > len(seq).
func Sample[T any](r *RNG, seq []T, k int) []T {
	if k > len(seq) {
		panic("rng: Sample k exceeds sequence length")
	}
	pool := append([]T(nil), seq...)
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		j := r.Range(i, len(pool))
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// SortedKeys returns the keys of m sorted ascending, the mandated
// conversion point before any map is allowed to feed randomness
// (spec.md §4.1: "any iteration over a set or map that feeds randomness
// MUST first be converted to a sequence sorted by a stable key").
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
