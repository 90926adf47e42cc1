package solver

import (
	"time"

	"github.com/zora-rando/zora/pkg/rng"
)

// RejectionSamplingBackend is ZORA's default item-randomizer backend
// (spec.md §4.6): repeatedly draws a uniformly random permutation of each
// group's value multiset across its keys via rng.Shuffle, and accepts the
// first draw that satisfies every Forbid/Require/AtLeastOneOf constraint
// and isn't blacklisted. It gives up after RejectionSamplingCap attempts
// (spec.md §9's resolved Open Question), returning (nil, false) rather
// than looping indefinitely on a constraint set sparse solutions can't
// satisfy quickly.
type RejectionSamplingBackend[K comparable, V comparable] struct{}

func NewRejectionSamplingBackend[K comparable, V comparable]() *RejectionSamplingBackend[K, V] {
	return &RejectionSamplingBackend[K, V]{}
}

func (b *RejectionSamplingBackend[K, V]) Name() string { return NameRejectionSampling }

func (b *RejectionSamplingBackend[K, V]) Solve(p *Problem[K, V], seed uint64, timeLimit time.Duration) (map[K]V, bool) {
	deadline := time.Now().Add(timeLimit)
	master := rng.New(seed)

	for attempt := 0; attempt < RejectionSamplingCap; attempt++ {
		if time.Now().After(deadline) {
			return nil, false
		}
		drawSeed := master.Next()
		if assignment, ok := drawOnce(p, drawSeed); ok {
			return assignment, true
		}
	}
	return nil, false
}

// drawOnce produces one uniformly random full assignment (ignoring
// constraints other than the fixed multiset-per-group cardinality) and
// reports whether it happens to satisfy every declared constraint.
func drawOnce[K comparable, V comparable](p *Problem[K, V], seed uint64) (map[K]V, bool) {
	r := rng.New(seed)
	assignment := make(map[K]V)

	for _, g := range p.groups {
		keys := sortKeysByString(g.keys)
		values := append([]V(nil), g.values...)
		r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

		for i, key := range keys {
			assignment[key] = values[i]
		}
	}

	for key, value := range assignment {
		if !p.allows(key, value) {
			return nil, false
		}
	}
	if !p.satisfiesAtLeastOne(assignment) {
		return nil, false
	}
	if p.isBlacklisted(assignment) {
		return nil, false
	}
	return assignment, true
}
