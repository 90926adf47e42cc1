package flags

import (
	"crypto/sha256"
	"fmt"
	"sort"

	"github.com/zora-rando/zora/pkg/item"
)

// Set is the full randomizer configuration: a boolean value for every
// declared flag, plus the two complex options spec.md §4.4 carries
// out-of-band from the flagstring (starting items and skip items, each a
// multiset of item.Kind).
type Set struct {
	bools map[string]bool

	// StartingItems lists item kinds the player begins with already
	// placed, bypassing the solver for those kinds.
	StartingItems []item.Kind

	// SkipItems lists item kinds the solver must not place anywhere
	// (spec.md §4.4's second complex flag).
	SkipItems []item.Kind
}

// NewSet returns a Set with every declared flag false and no complex
// options set.
func NewSet() *Set {
	s := &Set{bools: make(map[string]bool, len(table))}
	for _, m := range table {
		s.bools[m.key] = false
	}
	return s
}

// Get reports a flag's raw stored value, before the master-toggle rule is
// applied. Unknown keys return false.
func (s *Set) Get(key string) bool { return s.bools[key] }

// Set assigns a flag's value. Panics on an undeclared key — a typo in a
// flag key is a programming error, not recoverable input (flag keys never
// come from untrusted text; only flagstring bytes do, and those are
// decoded through DecodeFlagstring, not Set).
func (s *Set) Set(key string, value bool) {
	if _, ok := lookup(key); !ok {
		panic(fmt.Sprintf("flags: undeclared key %q", key))
	}
	s.bools[key] = value
}

// Effective reports a flag's value after the master-toggle rule: any flag
// with a dependsOn entry (spec.md §4.4's 13 major_item_shuffle dependents)
// reads as false whenever its dependency is false, regardless of its own
// stored bit.
func (s *Set) Effective(key string) bool {
	m, ok := lookup(key)
	if !ok {
		return false
	}
	if m.dependsOn != "" && !s.Effective(m.dependsOn) {
		return false
	}
	return s.bools[key]
}

// Validate checks the legacy-category rule: CategoryLegacy flags may only
// be set true when baseImageIsVanilla is true (spec.md §4.4).
func (s *Set) Validate(baseImageIsVanilla bool) error {
	if baseImageIsVanilla {
		return nil
	}
	for _, m := range table {
		if m.category == CategoryLegacy && s.bools[m.key] {
			return fmt.Errorf("flags: legacy flag %q requires a vanilla base image", m.key)
		}
	}
	return nil
}

// Hash returns a deterministic fingerprint of this Set, used the same way
// teacher's Config.Hash feeds pkg/rng's per-stage sub-seed derivation
// (SPEC_FULL.md "Supplemented features": Config.Hash()-derived
// sub-seeding for retries).
func (s *Set) Hash() []byte {
	h := sha256.New()
	for _, key := range Keys() {
		if s.bools[key] {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	for _, k := range sortedKinds(s.StartingItems) {
		fmt.Fprintf(h, "start:%d;", k)
	}
	for _, k := range sortedKinds(s.SkipItems) {
		fmt.Fprintf(h, "skip:%d;", k)
	}
	return h.Sum(nil)
}

func sortedKinds(ks []item.Kind) []item.Kind {
	out := append([]item.Kind(nil), ks...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
