// Package rng provides the single deterministic randomness source ZORA
// uses for every decision a run makes, per spec.md §4.1.
//
// # Overview
//
// A run owns exactly one top-level RNG, created once from the run's seed
// and never re-seeded. Components that need an isolated sub-sequence
// (solver-retry attempts in pkg/itemrand, the start-screen pick in
// pkg/zora) derive a named sub-RNG instead of touching the top-level
// one, using the same SHA-256 derivation the rest of this package's
// ancestry used for per-stage isolation:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// # Algorithm
//
// The generator is xoshiro256** (Blackman & Vigna, 2018): 256 bits of
// state, a documented next-state transition, seeded via SplitMix64. Unlike
// math/rand's algorithm, xoshiro256**'s bit-exact behavior is published and
// stable, which is what spec.md §8's determinism properties ("generate(seed,
// flags, base) == generate(seed, flags, base)") depend on across Go
// versions and, eventually, re-implementations in other languages.
//
// # Usage
//
//	master := rng.New(seed)
//	loc := rng.Choice(master, locations) // locations must be pre-sorted
//
//	retryRNG := rng.NewSubRNG(seed, "itemrand_retry_1", cfg.Hash())
//
// # Thread Safety
//
// RNG instances are NOT thread-safe and are never shared across
// goroutines; generate() is single-threaded cooperative per spec.md §5.
//
// # Iteration discipline
//
// No method on RNG accepts a map. Every caller must first convert a set or
// map to a slice sorted by a stable key (SortedKeys does this for
// map[string]V) before passing it to Shuffle, Choice, or Sample — this is
// what makes RNG output independent of Go's randomized map iteration order,
// per spec.md §4.1 and §9.
package rng
