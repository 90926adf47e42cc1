// Package flags is ZORA's flagstring codec (spec.md §4.4, §6): a
// declarative table of boolean randomizer options, the two complex
// multiset options that travel alongside a flagstring rather than inside
// it, and the compact consonant-alphabet encoding players exchange as a
// short string.
//
// The table-driven metadata style (name, category, bit position, plus a
// Validate step) follows teacher's pkg/dungeon/config.go PacingCurve /
// ValidPacingCurves closed-enum pattern. The package has no config struct
// or loader of its own: flag state lives in Set, whose Hash method
// fingerprints it for sub-seed derivation.
package flags

import "fmt"

// Category classifies a flag for documentation and for the
// legacy-flags-only-on-vanilla-image rule (spec.md §4.4).
type Category int

const (
	CategoryItemPlacement Category = iota
	CategoryOverworld
	CategoryDungeon
	CategoryQoL
	CategoryLegacy
	CategoryHidden // excluded from flagstring encoding entirely
)

func (c Category) String() string {
	switch c {
	case CategoryItemPlacement:
		return "item_placement"
	case CategoryOverworld:
		return "overworld"
	case CategoryDungeon:
		return "dungeon"
	case CategoryQoL:
		return "quality_of_life"
	case CategoryLegacy:
		return "legacy"
	case CategoryHidden:
		return "hidden"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// ValidCategories lists every declared Category, mirroring teacher's
// ValidPacingCurves enumeration-for-validation pattern.
var ValidCategories = []Category{
	CategoryItemPlacement, CategoryOverworld, CategoryDungeon,
	CategoryQoL, CategoryLegacy, CategoryHidden,
}

// flagMeta is one declared boolean flag's table entry.
type flagMeta struct {
	key         string
	displayName string
	help        string
	category    Category
	bit         int // position within the encoded bitstring; -1 if CategoryHidden
	// dependsOn names the master flag this flag depends on; while that
	// master is off, this flag is treated as off regardless of its own bit
	// (spec.md §4.4's master-toggle rule, e.g. major_item_shuffle=false).
	dependsOn string
}

// table is the declarative flag catalogue. Bit positions are assigned in
// table order, skipping CategoryHidden entries, and must never be
// reassigned once shipped — flagstrings are a persistent wire format
// (spec.md §4.4).
var table = []flagMeta{
	{key: "major_item_shuffle", displayName: "Major Item Shuffle", category: CategoryItemPlacement},
	{key: "shuffle_sword", displayName: "Shuffle Sword", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_boomerang", displayName: "Shuffle Boomerang", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_candle", displayName: "Shuffle Candle", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_ring", displayName: "Shuffle Ring", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_arrow", displayName: "Shuffle Arrow", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_bow", displayName: "Shuffle Bow", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_raft", displayName: "Shuffle Raft", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_ladder", displayName: "Shuffle Ladder", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_recorder", displayName: "Shuffle Recorder", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_bait", displayName: "Shuffle Bait", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_bracelet", displayName: "Shuffle Power Bracelet", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_book", displayName: "Shuffle Magic Book", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_potion", displayName: "Shuffle Magic Potion", category: CategoryItemPlacement, dependsOn: "major_item_shuffle"},
	{key: "shuffle_shop_items", displayName: "Shuffle Shop Items", category: CategoryItemPlacement},
	{key: "force_sword_to_open_cave", displayName: "Force Sword To Open Cave", category: CategoryItemPlacement},
	{key: "force_arrow_to_level_nine", displayName: "Force Silver Arrow To Level 9", category: CategoryDungeon},
	{key: "force_two_heart_containers_to_level_nine", displayName: "Force Two Heart Containers To Level 9", category: CategoryDungeon},
	{key: "allow_important_items_in_level_nine", displayName: "Allow Important Items In Level 9", category: CategoryDungeon},
	{key: "shuffle_small_keys", displayName: "Shuffle Small Keys", category: CategoryDungeon},
	{key: "shuffle_heart_containers", displayName: "Shuffle Heart Containers", category: CategoryItemPlacement},
	{key: "shuffle_start_screen", displayName: "Shuffle Start Screen", category: CategoryOverworld},
	{key: "shuffle_enemy_groups", displayName: "Shuffle Enemy Groups", category: CategoryOverworld},
	{key: "fast_text", displayName: "Fast Text", category: CategoryQoL},
	{key: "free_second_quest_warp", displayName: "Free Second-Quest Warp", category: CategoryQoL},
	{key: "no_low_hp_beep", displayName: "No Low-HP Beep", category: CategoryQoL},
	{key: "quickswap_item_select", displayName: "Quickswap Item Select", category: CategoryQoL},
	{key: "vanilla_legacy_overlay", displayName: "Vanilla Legacy Overlay", category: CategoryLegacy},
	{key: "debug_visualize", displayName: "Write Debug Visualizations", category: CategoryHidden},
	{key: "debug_unsafe_writes", displayName: "Allow Unsafe Debug Writes", category: CategoryHidden},
}

func init() {
	bit := 0
	for i := range table {
		if table[i].category == CategoryHidden {
			table[i].bit = -1
			continue
		}
		table[i].bit = bit
		bit++
	}
}

// encodedBitCount is the number of bits the flagstring codec must encode,
// i.e. every non-hidden flag.
func encodedBitCount() int {
	n := 0
	for _, m := range table {
		if m.category != CategoryHidden {
			n++
		}
	}
	return n
}

func lookup(key string) (flagMeta, bool) {
	for _, m := range table {
		if m.key == key {
			return m, true
		}
	}
	return flagMeta{}, false
}

// Keys returns every declared flag key in table order, hidden flags
// included. Callers that need a stable iteration order for hashing or
// display use this rather than ranging a map.
func Keys() []string {
	out := make([]string, len(table))
	for i, m := range table {
		out[i] = m.key
	}
	return out
}

// CategoryOf returns the declared category for key, or false if key is
// not a declared flag.
func CategoryOf(key string) (Category, bool) {
	m, ok := lookup(key)
	if !ok {
		return 0, false
	}
	return m.category, true
}
