package validate

import (
	"sort"

	"github.com/zora-rando/zora/pkg/item"
)

// Inventory is the fixed point's growing I set: every item.Kind collected
// so far, plus the per-dungeon-level small-key count spec.md §4.8's "keys
// are tracked per dungeon level" requires as a separate component (a Kind
// alone can't carry "which level" — two KindKey pickups in different
// levels are not interchangeable).
type Inventory struct {
	have map[item.Kind]bool
	keys map[uint8]int // level -> small keys collected so far
}

// NewInventory seeds an Inventory with the starting items a run begins
// with (spec.md §4.3's "Starting items").
func NewInventory(starting []item.Kind) *Inventory {
	inv := &Inventory{
		have: make(map[item.Kind]bool),
		keys: make(map[uint8]int),
	}
	for _, k := range starting {
		inv.have[k] = true
	}
	return inv
}

// Has reports whether k has been collected.
func (inv *Inventory) Has(k item.Kind) bool { return inv.have[k] }

// Add records k as collected. Monotone: never removes a Kind already
// present.
func (inv *Inventory) Add(k item.Kind) bool {
	if inv.have[k] {
		return false
	}
	inv.have[k] = true
	return true
}

// KeysCollected returns how many small keys have been collected in level.
func (inv *Inventory) KeysCollected(level uint8) int { return inv.keys[level] }

// AddKey records one more small key collected in level.
func (inv *Inventory) AddKey(level uint8) { inv.keys[level]++ }

// MissingRequired returns every Kind in item.RequiredKinds() not yet
// collected, sorted by Kind value for deterministic reporting.
func (inv *Inventory) MissingRequired() []item.Kind {
	var missing []item.Kind
	for _, k := range item.RequiredKinds() {
		if !inv.have[k] {
			missing = append(missing, k)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
