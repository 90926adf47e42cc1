package solver

import (
	"fmt"
	"time"

	"github.com/zora-rando/zora/pkg/rng"
)

// AssignmentBackend is ZORA's deterministic CP-style solver (spec.md
// §4.5's "Backend A"): for each permutation group, it tracks which keys
// still need a value in a bitset, repeatedly picks the unassigned key
// with the smallest current domain (minimum-remaining-values heuristic,
// ties broken by a stable stringified key), and tries that key's domain
// values in a seed-derived order, backtracking on dead ends. It always
// explores the full search space given enough time, so it is the backend
// of record whenever completeness matters more than speed.
type AssignmentBackend[K comparable, V comparable] struct{}

// NewAssignmentBackend returns a ready-to-use AssignmentBackend.
func NewAssignmentBackend[K comparable, V comparable]() *AssignmentBackend[K, V] {
	return &AssignmentBackend[K, V]{}
}

func (b *AssignmentBackend[K, V]) Name() string { return NameAssignment }

func (b *AssignmentBackend[K, V]) Solve(p *Problem[K, V], seed uint64, timeLimit time.Duration) (map[K]V, bool) {
	deadline := time.Now().Add(timeLimit)
	r := rng.New(seed)

	groups := make([]*groupState[K, V], len(p.groups))
	for i, g := range p.groups {
		groups[i] = newGroupState(g, r)
	}

	assignment := make(map[K]V, len(p.allKeys()))
	ok := solveGroups(p, groups, 0, assignment, deadline)
	if !ok {
		return nil, false
	}
	return assignment, true
}

// groupState is one permutation group's mutable search state: its keys,
// the distinct values available in the group's multiset with remaining
// counts, and a seed-derived value-trial order per distinct value index.
type groupState[K comparable, V comparable] struct {
	keys         []K
	distinctVals []V
	remaining    []int // remaining[i] = how many of distinctVals[i] are left to place
	trialOrder   []int // permutation of distinctVals indices, seed-derived
}

func newGroupState[K comparable, V comparable](g permGroup[K, V], r *rng.RNG) *groupState[K, V] {
	counts := make(map[V]int)
	order := make([]V, 0)
	for _, v := range g.values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	remaining := make([]int, len(order))
	for i, v := range order {
		remaining[i] = counts[v]
	}
	trial := make([]int, len(order))
	for i := range trial {
		trial[i] = i
	}
	r.Shuffle(len(trial), func(i, j int) { trial[i], trial[j] = trial[j], trial[i] })

	return &groupState[K, V]{
		keys:         sortKeysByString(g.keys),
		distinctVals: order,
		remaining:    remaining,
		trialOrder:   trial,
	}
}

// domainSize returns how many distinct values key in g could still
// legally take, given g's remaining counts and p's Forbid/Require.
func domainSize[K comparable, V comparable](p *Problem[K, V], g *groupState[K, V], key K) int {
	n := 0
	for vi, v := range g.distinctVals {
		if g.remaining[vi] > 0 && p.allows(key, v) {
			n++
		}
	}
	return n
}

// solveGroups assigns group gi's keys (then recurses into gi+1, ...)
// consistently with p's constraints, backtracking on failure. Reaching
// the end of the last group triggers the whole-assignment checks
// (AtLeastOneOf, forbidden-solution blacklist); failing those also
// backtracks, since a complete-but-rejected assignment is indistinguishable
// from a dead end to this search.
func solveGroups[K comparable, V comparable](p *Problem[K, V], groups []*groupState[K, V], gi int, assignment map[K]V, deadline time.Time) bool {
	if time.Now().After(deadline) {
		return false
	}
	if gi >= len(groups) {
		if !p.satisfiesAtLeastOne(assignment) {
			return false
		}
		if p.isBlacklisted(assignment) {
			return false
		}
		return true
	}
	g := groups[gi]
	unassigned := newBitset(len(g.keys))
	for i := range g.keys {
		unassigned.set(i)
	}
	return solveKeys(p, groups, gi, unassigned, assignment, deadline)
}

// solveKeys assigns every still-unassigned key of group gi (tracked by
// the unassigned bitset over key positions), choosing at each step the
// key with the fewest remaining legal values (MRV), and trying that
// key's domain values in the group's seed-derived order.
func solveKeys[K comparable, V comparable](p *Problem[K, V], groups []*groupState[K, V], gi int, unassigned bitset, assignment map[K]V, deadline time.Time) bool {
	if time.Now().After(deadline) {
		return false
	}
	g := groups[gi]
	positions := unassigned.indices()
	if len(positions) == 0 {
		return solveGroups(p, groups, gi+1, assignment, deadline)
	}

	bestPos, bestSize, bestStr := -1, -1, ""
	for _, pos := range positions {
		key := g.keys[pos]
		size := domainSize(p, g, key)
		keyStr := fmt.Sprintf("%v", key)
		if bestPos == -1 || size < bestSize || (size == bestSize && keyStr < bestStr) {
			bestPos, bestSize, bestStr = pos, size, keyStr
		}
	}
	if bestSize == 0 {
		return false // domain wipeout: this branch cannot be completed
	}

	key := g.keys[bestPos]
	unassigned.clear(bestPos)
	for _, vi := range g.trialOrder {
		if g.remaining[vi] <= 0 {
			continue
		}
		value := g.distinctVals[vi]
		if !p.allows(key, value) {
			continue
		}
		g.remaining[vi]--
		assignment[key] = value

		if solveKeys(p, groups, gi, unassigned, assignment, deadline) {
			return true
		}

		g.remaining[vi]++
		delete(assignment, key)
	}
	unassigned.set(bestPos)
	return false
}
