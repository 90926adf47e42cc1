// Package item defines ZORA's item catalogue: the ~30 tagged item kinds
// (spec.md §3 "Item"), their progressive-upgrade classes (§4.3), and the
// Inventory that accumulates them during validation.
//
// The catalogue is a closed, table-driven enum in the style teacher's
// pkg/graph.RoomArchetype and pkg/themes metadata tables use: a small int
// type, a String() method, and a lookup table of per-kind metadata (class,
// tier, category) instead of scattering that data across call sites.
package item

import "fmt"

// Kind is a stable identifier for one item variant. Values are never
// renumbered once assigned; the base-image memory map (pkg/worldmap)
// stores Kind as the on-disk byte value for an item slot, so Kind values
// are part of ZORA's wire format, not just an in-memory convenience.
type Kind int

const (
	KindNothing Kind = iota

	// Sword tiers (class Sword).
	KindSwordWood
	KindSwordWhite
	KindSwordMagical

	// Boomerang tiers (class Boomerang).
	KindBoomerangWood
	KindBoomerangMagical

	// Ring tiers (class Ring).
	KindRingBlue
	KindRingRed

	// Candle tiers (class Candle).
	KindCandleBlue
	KindCandleRed

	// Arrow tiers (class Arrow).
	KindArrowWood
	KindArrowSilver

	// Non-progressive major items.
	KindBow
	KindLadder
	KindRaft
	KindRecorder
	KindBait
	KindBracelet
	KindMagicBook
	KindMagicPotion

	// Triforce pieces — eight distinct kinds, each required (spec.md §3 Invariant 3).
	KindTriforce1
	KindTriforce2
	KindTriforce3
	KindTriforce4
	KindTriforce5
	KindTriforce6
	KindTriforce7
	KindTriforce8

	// Minor/consumable items.
	KindHeartContainer
	KindRupee1
	KindRupee5
	KindBombs
	KindKey

	// Shop-only items (category Shop; a subset of the above kinds may also
	// appear in a shop slot, but these three are shop-exclusive wares).
	KindBlueRing
	KindBlueCandle
	KindShopShield
)

// Class identifies a totally ordered progressive-upgrade family, per
// spec.md §4.3.
type Class int

const (
	ClassNone Class = iota
	ClassSword
	ClassBoomerang
	ClassRing
	ClassCandle
	ClassArrow
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "None"
	case ClassSword:
		return "Sword"
	case ClassBoomerang:
		return "Boomerang"
	case ClassRing:
		return "Ring"
	case ClassCandle:
		return "Candle"
	case ClassArrow:
		return "Arrow"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Category is the constraint-facing classification spec.md §3 names:
// major, minor, dungeon_heart, shop, nothing.
type Category int

const (
	CategoryNothing Category = iota
	CategoryMajor
	CategoryMinor
	CategoryDungeonHeart
	CategoryShop
)

func (c Category) String() string {
	switch c {
	case CategoryNothing:
		return "nothing"
	case CategoryMajor:
		return "major"
	case CategoryMinor:
		return "minor"
	case CategoryDungeonHeart:
		return "dungeon_heart"
	case CategoryShop:
		return "shop"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// meta holds the immutable metadata associated with a Kind: its
// progressive class (ClassNone for non-progressive items), its tier within
// that class (1-based; 0 for non-progressive), and its constraint
// category.
type meta struct {
	class    Class
	tier     int
	category Category
	name     string
}

var table = map[Kind]meta{
	KindNothing: {ClassNone, 0, CategoryNothing, "Nothing"},

	KindSwordWood:    {ClassSword, 1, CategoryMajor, "WoodSword"},
	KindSwordWhite:   {ClassSword, 2, CategoryMajor, "WhiteSword"},
	KindSwordMagical: {ClassSword, 3, CategoryMajor, "MagicalSword"},

	KindBoomerangWood:    {ClassBoomerang, 1, CategoryMajor, "WoodBoomerang"},
	KindBoomerangMagical: {ClassBoomerang, 2, CategoryMajor, "MagicalBoomerang"},

	KindRingBlue: {ClassRing, 1, CategoryMajor, "BlueRing"},
	KindRingRed:  {ClassRing, 2, CategoryMajor, "RedRing"},

	KindCandleBlue: {ClassCandle, 1, CategoryMajor, "BlueCandle"},
	KindCandleRed:  {ClassCandle, 2, CategoryMajor, "RedCandle"},

	KindArrowWood:   {ClassArrow, 1, CategoryMajor, "WoodArrow"},
	KindArrowSilver: {ClassArrow, 2, CategoryMajor, "SilverArrow"},

	KindBow:         {ClassNone, 0, CategoryMajor, "Bow"},
	KindLadder:      {ClassNone, 0, CategoryMajor, "Ladder"},
	KindRaft:        {ClassNone, 0, CategoryMajor, "Raft"},
	KindRecorder:    {ClassNone, 0, CategoryMajor, "Recorder"},
	KindBait:        {ClassNone, 0, CategoryMajor, "Bait"},
	KindBracelet:    {ClassNone, 0, CategoryMajor, "PowerBracelet"},
	KindMagicBook:   {ClassNone, 0, CategoryMajor, "MagicBook"},
	KindMagicPotion: {ClassNone, 0, CategoryMajor, "MagicPotion"},

	KindTriforce1: {ClassNone, 0, CategoryDungeonHeart, "Triforce1"},
	KindTriforce2: {ClassNone, 0, CategoryDungeonHeart, "Triforce2"},
	KindTriforce3: {ClassNone, 0, CategoryDungeonHeart, "Triforce3"},
	KindTriforce4: {ClassNone, 0, CategoryDungeonHeart, "Triforce4"},
	KindTriforce5: {ClassNone, 0, CategoryDungeonHeart, "Triforce5"},
	KindTriforce6: {ClassNone, 0, CategoryDungeonHeart, "Triforce6"},
	KindTriforce7: {ClassNone, 0, CategoryDungeonHeart, "Triforce7"},
	KindTriforce8: {ClassNone, 0, CategoryDungeonHeart, "Triforce8"},

	KindHeartContainer: {ClassNone, 0, CategoryMinor, "HeartContainer"},
	KindRupee1:         {ClassNone, 0, CategoryMinor, "Rupee"},
	KindRupee5:         {ClassNone, 0, CategoryMinor, "FiveRupees"},
	KindBombs:          {ClassNone, 0, CategoryMinor, "Bombs"},
	KindKey:            {ClassNone, 0, CategoryMinor, "Key"},

	KindBlueRing:   {ClassNone, 0, CategoryShop, "ShopBlueRing"},
	KindBlueCandle: {ClassNone, 0, CategoryShop, "ShopBlueCandle"},
	KindShopShield: {ClassNone, 0, CategoryShop, "ShopShield"},
}

// Item is a concrete, placeable instance of a Kind. Kind alone determines
// class/tier/category, so Item is a thin value wrapper used at call sites
// that want method access (Class, Tier, Category, String) without a map
// lookup at every use.
type Item struct {
	Kind Kind
}

// New wraps a Kind as an Item. Panics if Kind is not in the catalogue —
// an unregistered Kind is a programming error, not recoverable input.
func New(k Kind) Item {
	if _, ok := table[k]; !ok {
		panic(fmt.Sprintf("item: unregistered Kind %d", int(k)))
	}
	return Item{Kind: k}
}

// Class returns the progressive class this item belongs to, or ClassNone.
func (it Item) Class() Class { return table[it.Kind].class }

// Tier returns this item's tier within its class (1-based), or 0 if
// non-progressive.
func (it Item) Tier() int { return table[it.Kind].tier }

// Category returns the constraint-facing category (major/minor/
// dungeon_heart/shop/nothing).
func (it Item) Category() Category { return table[it.Kind].category }

// IsProgressive reports whether this item belongs to an ordered tier
// class.
func (it Item) IsProgressive() bool { return table[it.Kind].class != ClassNone }

// String returns the item's stable display name.
func (it Item) String() string {
	if m, ok := table[it.Kind]; ok {
		return m.name
	}
	return fmt.Sprintf("Kind(%d)", int(it.Kind))
}

// RequiredKinds lists every Kind spec.md §3 Invariant 3 requires to be
// reachable under starting inventory: triforce pieces 1..8, bow,
// silver-arrow, ladder, raft, recorder, and the best sword tier.
func RequiredKinds() []Kind {
	return []Kind{
		KindTriforce1, KindTriforce2, KindTriforce3, KindTriforce4,
		KindTriforce5, KindTriforce6, KindTriforce7, KindTriforce8,
		KindBow, KindArrowSilver, KindLadder, KindRaft, KindRecorder,
		KindSwordMagical,
	}
}

// AllKinds lists every declared Kind other than KindNothing, in the order
// declared above. Callers that need to scan the full catalogue (e.g.
// itemrand's rule-building, which must reason about "every non-sword
// item" regardless of category) use this rather than hand-maintaining a
// partial list.
func AllKinds() []Kind {
	return []Kind{
		KindSwordWood, KindSwordWhite, KindSwordMagical,
		KindBoomerangWood, KindBoomerangMagical,
		KindRingBlue, KindRingRed,
		KindCandleBlue, KindCandleRed,
		KindArrowWood, KindArrowSilver,
		KindBow, KindLadder, KindRaft, KindRecorder,
		KindBait, KindBracelet, KindMagicBook, KindMagicPotion,
		KindTriforce1, KindTriforce2, KindTriforce3, KindTriforce4,
		KindTriforce5, KindTriforce6, KindTriforce7, KindTriforce8,
		KindHeartContainer, KindRupee1, KindRupee5, KindBombs, KindKey,
		KindBlueRing, KindBlueCandle, KindShopShield,
	}
}
