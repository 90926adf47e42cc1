package zora

import (
	"github.com/zora-rando/zora/pkg/flags"
	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/worldmap"
)

// scanPlacedItems walks every item-bearing Location dt's MemoryMap knows
// about (overworld caves, dungeon rooms, the Armos/Coast slots, shops) in
// deterministic ascending order and returns the ones that currently hold a
// recognized, non-empty item, alongside the Kind each holds. A Location
// dt.GetItem rejects (unrecognized byte, out-of-region) or reports empty
// is left out of both slices.
func scanPlacedItems(dt *worldmap.DataTable) ([]worldmap.Location, []item.Kind) {
	var locs []worldmap.Location
	var kinds []item.Kind

	add := func(loc worldmap.Location) {
		if it, ok := dt.GetItem(loc); ok && it.Kind != item.KindNothing {
			locs = append(locs, loc)
			kinds = append(kinds, it.Kind)
		}
	}

	for screen := 0; screen < worldmap.NumScreens; screen++ {
		for slot := uint8(0); slot < 3; slot++ {
			add(worldmap.OverworldCave(uint8(screen), slot))
		}
	}
	for level := uint8(1); level <= worldmap.NumLevels; level++ {
		for room := uint8(0); room < worldmap.RoomsPerLevel; room++ {
			add(worldmap.DungeonRoom(level, room))
		}
	}
	add(worldmap.ArmosSlot())
	add(worldmap.CoastSlot())
	for shop := 0; shop < worldmap.NumShops; shop++ {
		for slot := uint8(0); slot < 3; slot++ {
			add(worldmap.ShopSlot(uint8(shop), slot))
		}
	}

	return locs, kinds
}

// classShuffleFlag maps each progressive item.Class to the shuffle_*
// flag that gates it — spec.md §4.6's "13 independent toggles" that
// major_item_shuffle masters.
var classShuffleFlag = map[item.Class]string{
	item.ClassSword:     "shuffle_sword",
	item.ClassBoomerang: "shuffle_boomerang",
	item.ClassRing:      "shuffle_ring",
	item.ClassCandle:    "shuffle_candle",
	item.ClassArrow:     "shuffle_arrow",
}

// kindShuffleFlag maps each non-progressive Kind to the flag that gates
// it: the remaining 8 of major_item_shuffle's 13 dependents, plus the
// two minor-item toggles that sit outside the major-item master switch.
var kindShuffleFlag = map[item.Kind]string{
	item.KindBow:         "shuffle_bow",
	item.KindRaft:        "shuffle_raft",
	item.KindLadder:      "shuffle_ladder",
	item.KindRecorder:    "shuffle_recorder",
	item.KindBait:        "shuffle_bait",
	item.KindBracelet:    "shuffle_bracelet",
	item.KindMagicBook:   "shuffle_book",
	item.KindMagicPotion: "shuffle_potion",

	item.KindKey:            "shuffle_small_keys",
	item.KindHeartContainer: "shuffle_heart_containers",
}

// shuffleEnabled reports whether loc currently holding k is eligible for
// C6's solver pool under flagSet. A shop slot is gated by
// shuffle_shop_items alone, regardless of which ware it holds. Every
// other location is gated by the shuffle_* flag declared for k's
// class (progressive items) or Kind (non-progressive majors/minors). A
// Kind with no declared flag at all — triforce pieces, rupees, bombs —
// is never eligible: spec.md §4.4 names exactly 13 major-item toggles
// plus shuffle_shop_items/shuffle_small_keys/shuffle_heart_containers,
// and nothing moves these kinds out of their vanilla slot.
func shuffleEnabled(flagSet *flags.Set, loc worldmap.Location, k item.Kind) bool {
	if loc.Kind == worldmap.LocationShopSlot {
		return flagSet.Effective("shuffle_shop_items")
	}
	if key, ok := kindShuffleFlag[k]; ok {
		return flagSet.Effective(key)
	}
	if key, ok := classShuffleFlag[item.New(k).Class()]; ok {
		return flagSet.Effective(key)
	}
	return false
}

// deriveProblemInputs builds the (locations, pool) pair itemrand.Randomize
// shuffles, applying flagSet's item-pool adjustments before the solver ever
// runs (itemrand's own doc contract assumes the caller has already done
// this):
//
//   - a location whose current item isn't enabled by any effective
//     shuffle_* flag is left out entirely: its vanilla content is never
//     touched and its kind never enters the pool (spec.md §4.6 "Keys =
//     all locations enabled by the active shuffle flags").
//   - a SkipItems kind is left untouched in place: both its location and
//     its pool entry are dropped together, so that slot keeps its vanilla
//     content and the kind is never redistributed elsewhere.
//   - a StartingItems kind is removed from circulation since the player
//     already holds it on file-create: its pool entry becomes
//     item.KindNothing (an empty slot) rather than being dropped, so every
//     remaining location still receives exactly one pool entry.
func deriveProblemInputs(dt *worldmap.DataTable, flagSet *flags.Set) ([]worldmap.Location, []item.Kind) {
	locs, kinds := scanPlacedItems(dt)

	skip := kindSet(flagSet.SkipItems)
	start := kindSet(flagSet.StartingItems)

	var outLocs []worldmap.Location
	var outKinds []item.Kind
	for i, loc := range locs {
		k := kinds[i]
		if !shuffleEnabled(flagSet, loc, k) {
			continue
		}
		if skip[k] {
			continue
		}
		if start[k] {
			k = item.KindNothing
		}
		outLocs = append(outLocs, loc)
		outKinds = append(outKinds, k)
	}
	return outLocs, outKinds
}

func kindSet(ks []item.Kind) map[item.Kind]bool {
	s := make(map[item.Kind]bool, len(ks))
	for _, k := range ks {
		s[k] = true
	}
	return s
}
