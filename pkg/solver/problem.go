// Package solver implements ZORA's C5 constraint-solver contract
// (spec.md §4.5): a declarative Problem describing one or more
// permutation assignments plus forbid/require/at-least-one constraints,
// and three interchangeable Backend implementations that can all solve
// the same Problem.
//
// The registry shape (Register/Get/List, guarded by a mutex, panicking
// on duplicate registration) follows teacher's
// pkg/synthesis/synthesizer.go almost verbatim, generalized from a
// string-keyed GraphSynthesizer registry to a generic, string-keyed
// Backend[K,V] registry.
package solver

import (
	"fmt"
	"sort"
)

// Problem describes a constrained bijective assignment problem: one or
// more permutation groups (each a set of keys and a same-size multiset of
// values to distribute across them), plus forbid/require/at-least-one
// constraints that every Backend must honor.
//
// K is typically worldmap.Location and V is typically item.Kind, but the
// type is not tied to ZORA's domain — any comparable key/value pair works,
// the same way teacher's graph package is generic over room archetypes.
type Problem[K comparable, V comparable] struct {
	groups []permGroup[K, V]

	forbidden map[K]map[V]bool
	required  map[K]V
	atLeast   []atLeastOneConstraint[K, V]

	// forbiddenSolutions blacklists entire assignments, used by a caller
	// retrying after a prior solution was proven Unbeatable (spec.md §4.6
	// "retry with a derived sub-seed").
	forbiddenSolutions []map[K]V
}

type permGroup[K comparable, V comparable] struct {
	keys   []K
	values []V
}

type atLeastOneConstraint[K comparable, V comparable] struct {
	keys  []K
	value V
	count int
}

// NewProblem returns an empty Problem.
func NewProblem[K comparable, V comparable]() *Problem[K, V] {
	return &Problem[K, V]{
		forbidden: make(map[K]map[V]bool),
		required:  make(map[K]V),
	}
}

// AddPermutationProblem declares that values (a multiset, duplicates
// allowed) must be distributed bijectively across keys. len(keys) must
// equal len(values); callers are responsible for padding the weaker side
// with placeholder values/keys before calling, the same way spec.md §4.3
// treats "no item" as a first-class Kind rather than a special case.
func (p *Problem[K, V]) AddPermutationProblem(keys []K, values []V) {
	k := append([]K(nil), keys...)
	v := append([]V(nil), values...)
	p.groups = append(p.groups, permGroup[K, V]{keys: k, values: v})
}

// Forbid disallows placing value at key.
func (p *Problem[K, V]) Forbid(key K, value V) {
	if p.forbidden[key] == nil {
		p.forbidden[key] = make(map[V]bool)
	}
	p.forbidden[key][value] = true
}

// ForbidAll disallows placing any of values at key.
func (p *Problem[K, V]) ForbidAll(key K, values []V) {
	for _, v := range values {
		p.Forbid(key, v)
	}
}

// Require pins value at key; no other value may be assigned there.
func (p *Problem[K, V]) Require(key K, value V) {
	p.required[key] = value
}

// AtLeastOneOf requires that value be assigned to at least one key in
// keys; it is AtLeastCountOf with a count of 1.
func (p *Problem[K, V]) AtLeastOneOf(keys []K, value V) {
	p.AtLeastCountOf(keys, value, 1)
}

// AtLeastCountOf requires that value be assigned to at least count
// distinct keys in keys, generalizing AtLeastOneOf to spec.md §4.6's
// "two occurrences treated as distinct-by-index" rule
// (force_two_heart_containers_to_level_nine needs count == 2).
func (p *Problem[K, V]) AtLeastCountOf(keys []K, value V, count int) {
	p.atLeast = append(p.atLeast, atLeastOneConstraint[K, V]{keys: append([]K(nil), keys...), value: value, count: count})
}

// AddForbiddenSolutionMap excludes an entire prior assignment from the
// search space, used when retrying after that exact assignment was
// already proven unbeatable.
func (p *Problem[K, V]) AddForbiddenSolutionMap(m map[K]V) {
	cp := make(map[K]V, len(m))
	for k, v := range m {
		cp[k] = v
	}
	p.forbiddenSolutions = append(p.forbiddenSolutions, cp)
}

// allKeys returns every key across every permutation group, in
// declaration order, keys-within-a-group order preserved.
func (p *Problem[K, V]) allKeys() []K {
	var out []K
	for _, g := range p.groups {
		out = append(out, g.keys...)
	}
	return out
}

// allows reports whether assigning value to key is consistent with
// Forbid/Require, independent of any permutation-count bookkeeping.
func (p *Problem[K, V]) allows(key K, value V) bool {
	if req, ok := p.required[key]; ok {
		return req == value
	}
	if p.forbidden[key] != nil && p.forbidden[key][value] {
		return false
	}
	return true
}

// satisfiesAtLeastOne reports whether a complete assignment honors every
// AtLeastOneOf/AtLeastCountOf constraint: at least c.count of c.keys must
// be assigned c.value.
func (p *Problem[K, V]) satisfiesAtLeastOne(assignment map[K]V) bool {
	for _, c := range p.atLeast {
		matches := 0
		for _, k := range c.keys {
			if assignment[k] == c.value {
				matches++
			}
		}
		if matches < c.count {
			return false
		}
	}
	return true
}

// isBlacklisted reports whether assignment exactly matches a previously
// forbidden full solution.
func (p *Problem[K, V]) isBlacklisted(assignment map[K]V) bool {
	for _, fs := range p.forbiddenSolutions {
		if len(fs) != len(assignment) {
			continue
		}
		match := true
		for k, v := range fs {
			if assignment[k] != v {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// ConstraintEdge describes one Forbid relationship, for diagnostic
// export only (pkg/visualize's constraint-graph rendering).
type ConstraintEdge[K comparable, V comparable] struct {
	Key   K
	Value V
}

// Snapshot returns a plain-data view of p for diagnostic tooling: every
// key across every permutation group, every distinct value across every
// group's multiset, and every forbidden (key, value) pair. Order follows
// declaration order for keys/values and map iteration for forbidden
// pairs — callers that need a stable rendering order should sort the
// result themselves (pkg/visualize does, by stringified key/value).
func (p *Problem[K, V]) Snapshot() (keys []K, values []V, forbidden []ConstraintEdge[K, V]) {
	keys = p.allKeys()

	seen := make(map[V]bool)
	for _, g := range p.groups {
		for _, v := range g.values {
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
	}

	for k, vs := range p.forbidden {
		for v := range vs {
			forbidden = append(forbidden, ConstraintEdge[K, V]{Key: k, Value: v})
		}
	}
	return keys, values, forbidden
}

// sortKeysByString orders keys deterministically via fmt's default
// formatting (which uses a Stringer method when one is defined, as
// worldmap.Location and item.Item both are) — spec.md §4.1/§9 require
// every set/map iteration feeding randomness to sort by a stable key
// first.
func sortKeysByString[K comparable](keys []K) []K {
	out := append([]K(nil), keys...)
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprintf("%v", out[i]) < fmt.Sprintf("%v", out[j])
	})
	return out
}
