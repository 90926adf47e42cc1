package item

import (
	"fmt"
	"sort"
	"strings"
)

// Inventory is an accumulating bag of acquired items with progressive-
// upgrade semantics (spec.md §4.3). It is monotone: Add never removes
// anything the bag already holds at or above the tier/count being added,
// and nothing is ever decremented.
//
// Per spec.md §9's design note, progressive items are modeled as
// map[class]tier (never overwriting a slot value on upgrade) and
// non-progressive items as a plain per-Kind multiset.
type Inventory struct {
	tiers  map[Class]int
	counts map[Kind]int
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		tiers:  make(map[Class]int),
		counts: make(map[Kind]int),
	}
}

// Add records acquisition of it. For a progressive item, this updates the
// class's tier only if it.Tier() exceeds the tier already held — all lower
// tiers are considered subsumed, not separately tracked, matching spec.md
// §4.3 ("acquiring a tier removes all lower tiers from the bag"). For a
// non-progressive item, this increments its count.
func (inv *Inventory) Add(it Item) {
	if it.IsProgressive() {
		class := it.Class()
		if it.Tier() > inv.tiers[class] {
			inv.tiers[class] = it.Tier()
		}
		return
	}
	inv.counts[it.Kind]++
}

// Has reports whether the inventory satisfies possession of it. For a
// progressive item this is "tier held >= it.Tier()"; for a non-progressive
// item this is plain membership (count > 0).
func (inv *Inventory) Has(it Item) bool {
	if it.IsProgressive() {
		return inv.tiers[it.Class()] >= it.Tier()
	}
	return inv.counts[it.Kind] > 0
}

// Tier returns the highest tier held in class, or 0 if none.
func (inv *Inventory) Tier(class Class) int {
	return inv.tiers[class]
}

// Count returns how many of Kind are held. For a progressive Kind this is
// 1 if the held tier is exactly that Kind's tier, else 0: a lower tier is
// no longer in the bag once a higher one is acquired, so after upgrading
// to Magical only the Magical sword counts (spec.md §8 scenario S5).
func (inv *Inventory) Count(k Kind) int {
	it := New(k)
	if it.IsProgressive() {
		if inv.tiers[it.Class()] == it.Tier() {
			return 1
		}
		return 0
	}
	return inv.counts[k]
}

// ToSortedDebugString renders the inventory deterministically: progressive
// classes first (sorted by class name), each showing its held tier's item
// name, then non-progressive kinds sorted by name with counts > 1 shown as
// "Name x N".
func (inv *Inventory) ToSortedDebugString() string {
	var parts []string

	classNames := make([]string, 0, len(inv.tiers))
	classByName := make(map[string]Class, len(inv.tiers))
	for class := range inv.tiers {
		name := class.String()
		classNames = append(classNames, name)
		classByName[name] = class
	}
	sort.Strings(classNames)
	for _, name := range classNames {
		class := classByName[name]
		tier := inv.tiers[class]
		parts = append(parts, tierItemName(class, tier))
	}

	kindNames := make([]string, 0, len(inv.counts))
	kindByName := make(map[string]Kind, len(inv.counts))
	for k, n := range inv.counts {
		if n == 0 {
			continue
		}
		name := New(k).String()
		kindNames = append(kindNames, name)
		kindByName[name] = k
	}
	sort.Strings(kindNames)
	for _, name := range kindNames {
		k := kindByName[name]
		n := inv.counts[k]
		if n > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", name, n))
		} else {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, ", ")
}

// tierItemName finds the catalogue Kind whose class and tier match,
// returning its display name.
func tierItemName(class Class, tier int) string {
	for k, m := range table {
		if m.class == class && m.tier == tier {
			return New(k).String()
		}
	}
	return fmt.Sprintf("%s(tier %d)", class, tier)
}
