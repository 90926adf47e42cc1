package solver

import (
	"time"

	"github.com/zora-rando/zora/pkg/rng"
)

// maxBacktrackDepth bounds how many single-key corrections
// RandomizedBacktrackingBackend will attempt within one restart before
// giving up on it and drawing a fresh seed, per spec.md §4.5's "bounded
// depth" requirement for Backend B.
const maxBacktrackDepth = 64

// maxRestarts bounds how many independent randomized attempts
// RandomizedBacktrackingBackend makes before reporting failure.
const maxRestarts = 200

// RandomizedBacktrackingBackend trades completeness for speed: each
// restart shuffles key and value order freshly from a sub-seed, greedily
// assigns keys in that order, and backtracks locally (undoing up to
// maxBacktrackDepth recent choices) when a key has no legal remaining
// value. A restart that exhausts its backtrack budget is abandoned and a
// new restart begins from a freshly derived sub-seed; no record of the
// abandoned partial assignment is kept, so a later restart may retread
// the same dead branch.
type RandomizedBacktrackingBackend[K comparable, V comparable] struct{}

func NewRandomizedBacktrackingBackend[K comparable, V comparable]() *RandomizedBacktrackingBackend[K, V] {
	return &RandomizedBacktrackingBackend[K, V]{}
}

func (b *RandomizedBacktrackingBackend[K, V]) Name() string { return NameRandomizedBacktracking }

func (b *RandomizedBacktrackingBackend[K, V]) Solve(p *Problem[K, V], seed uint64, timeLimit time.Duration) (map[K]V, bool) {
	deadline := time.Now().Add(timeLimit)
	master := rng.New(seed)

	for restart := 0; restart < maxRestarts; restart++ {
		if time.Now().After(deadline) {
			return nil, false
		}
		subSeed := master.Next()
		if assignment, ok := attemptRestart(p, subSeed, deadline); ok {
			return assignment, true
		}
	}
	return nil, false
}

// attemptRestart runs one randomized, locally-backtracking assignment
// pass over every permutation group in turn.
func attemptRestart[K comparable, V comparable](p *Problem[K, V], subSeed uint64, deadline time.Time) (map[K]V, bool) {
	r := rng.New(subSeed)
	assignment := make(map[K]V)

	for _, g := range p.groups {
		gs := newGroupState(g, r)
		// newGroupState already applies a seed-derived trial order; for
		// Backend B we also shuffle key order, unlike Backend A's
		// deterministic sorted-then-MRV-implicit order.
		r.Shuffle(len(gs.keys), func(i, j int) { gs.keys[i], gs.keys[j] = gs.keys[j], gs.keys[i] })

		if !backtrackGroupBounded(p, gs, assignment, deadline) {
			return nil, false
		}
	}

	if !p.satisfiesAtLeastOne(assignment) || p.isBlacklisted(assignment) {
		return nil, false
	}
	return assignment, true
}

// backtrackGroupBounded greedily assigns gs.keys in order, undoing at
// most maxBacktrackDepth prior choices in total when a key runs out of
// legal values. next[ki] is the trial-order index to resume searching
// from when control returns to position ki, either on first visit (0) or
// after a later key forced a backtrack into it (one past the index last
// chosen there).
func backtrackGroupBounded[K comparable, V comparable](p *Problem[K, V], gs *groupState[K, V], assignment map[K]V, deadline time.Time) bool {
	n := len(gs.keys)
	next := make([]int, n)
	chosenIdx := make([]int, n) // trial-order index chosen at each position, once placed

	backtracksUsed := 0
	ki := 0
	for ki < n {
		if time.Now().After(deadline) {
			return false
		}
		key := gs.keys[ki]
		placed := false
		for idx := next[ki]; idx < len(gs.trialOrder); idx++ {
			vi := gs.trialOrder[idx]
			if gs.remaining[vi] <= 0 {
				continue
			}
			value := gs.distinctVals[vi]
			if !p.allows(key, value) {
				continue
			}
			gs.remaining[vi]--
			assignment[key] = value
			chosenIdx[ki] = idx
			next[ki] = idx + 1 // if we ever backtrack back into ki, resume past this choice
			placed = true
			break
		}
		if placed {
			ki++
			continue
		}

		// No legal value remains for this key; back up one position.
		next[ki] = 0 // reset for the next time this position is revisited, if ever
		if ki == 0 || backtracksUsed >= maxBacktrackDepth {
			return false
		}
		ki--
		backtracksUsed++
		undoneVi := gs.trialOrder[chosenIdx[ki]]
		gs.remaining[undoneVi]++
		delete(assignment, gs.keys[ki])
	}
	return true
}
