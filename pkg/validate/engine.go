package validate

import (
	"sort"

	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/worldmap"
)

// maxRounds bounds the fixed-point loop. spec.md §4.8 guarantees
// termination in at most |locations| rounds since the engine is monotone;
// this is a generous ceiling above any real base image's location count,
// kept as a backstop against a malformed World rather than the primary
// termination argument.
const maxRounds = 4096

// Validate runs the fixed-point reachability engine over w and dt,
// starting from startingItems, per spec.md §4.8: collect items from every
// reached destination, grow the inventory, recompute reachable
// destinations under the new inventory, and repeat until nothing changes.
func Validate(w *World, dt *worldmap.DataTable, startingItems []item.Kind) *Report {
	inv := NewInventory(startingItems)

	start := Dest{Kind: DestScreen, ScreenID: w.StartScreen}
	reached := map[string]Dest{start.String(): start}
	collected := map[string]bool{}

	for round := 0; round < maxRounds; round++ {
		changed := collectFromReached(w, dt, inv, reached, collected)
		if expandReachable(w, inv, reached) {
			changed = true
		}
		if !changed {
			break
		}
	}

	return buildReport(inv, w, reached)
}

// collectFromReached performs fixed-point steps 1-2: for every currently
// reached destination, pull its item slots (sorted(R) per spec.md §4.8's
// deterministic-iteration requirement) into the inventory if not already
// collected.
func collectFromReached(w *World, dt *worldmap.DataTable, inv *Inventory, reached map[string]Dest, collected map[string]bool) bool {
	changed := false
	for _, d := range sortedDests(reached) {
		for _, loc := range slotsFor(w, d) {
			lk := loc.String()
			if collected[lk] {
				continue
			}
			collected[lk] = true
			changed = true

			it, ok := dt.GetItem(loc)
			if !ok {
				continue
			}
			addItem(inv, loc, it.Kind)
		}
	}
	return changed
}

// expandReachable performs fixed-point step 3: recompute D from the
// current inventory, growing reached with every destination newly
// accessible. Destinations already in reached are re-visited too — their
// neighbor sets can grow once a gating item is collected — but reached
// itself only ever grows, so the loop terminates.
func expandReachable(w *World, inv *Inventory, reached map[string]Dest) bool {
	changed := false
	queue := sortedDests(reached)
	for i := 0; i < len(queue); i++ {
		for _, next := range neighbors(w, inv, queue[i]) {
			k := next.String()
			if _, ok := reached[k]; ok {
				continue
			}
			reached[k] = next
			queue = append(queue, next)
			changed = true
		}
	}
	return changed
}

// neighbors returns every destination directly accessible from d under
// inv's current contents.
func neighbors(w *World, inv *Inventory, d Dest) []Dest {
	if d.Kind == DestRoom {
		// Room-internal connectivity is resolved wholesale by
		// reachableRoomsInLevel whenever the level's entrance screen is
		// (re-)processed below, so individual rooms have no edges of
		// their own here.
		return nil
	}

	out := screenNeighbors(w, inv, d)

	level, ok := w.EntranceScreens[d.ScreenID]
	if !ok {
		return out
	}
	lv := w.Levels[level]
	if lv == nil {
		return out
	}
	for _, roomID := range sortedUint8Keys(reachableRoomsInLevel(lv, inv)) {
		out = append(out, Dest{Kind: DestRoom, Level: level, RoomID: roomID})
	}
	return out
}

// screenNeighbors returns the overworld screens directly reachable from
// d's screen: unconditionally-passable neighbors, bait-gated neighbors
// (only with item.KindBait in inv), and any other single-item-gated
// neighbors (raft/ladder-style water crossings) whose required Kind inv
// holds.
func screenNeighbors(w *World, inv *Inventory, d Dest) []Dest {
	s := w.Screens[d.ScreenID]
	if s == nil {
		return nil
	}

	ids := map[uint8]bool{}
	for n := range s.PassableNeighbor {
		ids[n] = true
	}
	if inv.Has(item.KindBait) {
		for n := range s.BaitBlockerAdj {
			ids[n] = true
		}
	}
	for n, need := range s.GatedNeighbor {
		if inv.Has(need) {
			ids[n] = true
		}
	}

	out := make([]Dest, 0, len(ids))
	for _, id := range sortedUint8Keys(ids) {
		out = append(out, Dest{Kind: DestScreen, ScreenID: id})
	}
	return out
}

// slotsFor lists the item.Location slots a destination carries. Armos,
// Coast, and shop slots aren't tied to a specific screen in World's model
// (they're bare overworld tiles / standalone interiors with no traversal
// gate of their own beyond ordinary movement), so they're attached to the
// start screen — reachable as soon as the engine begins, same as in a
// real playthrough where the overworld surface is open from the outset.
func slotsFor(w *World, d Dest) []worldmap.Location {
	var out []worldmap.Location
	switch d.Kind {
	case DestScreen:
		s := w.Screens[d.ScreenID]
		if s != nil && s.HasCave {
			for slot := uint8(0); slot < 3; slot++ {
				out = append(out, worldmap.OverworldCave(d.ScreenID, slot))
			}
		}
		if d.ScreenID == w.StartScreen {
			out = append(out, worldmap.ArmosSlot(), worldmap.CoastSlot())
			for shop := uint8(0); shop < worldmap.NumShops; shop++ {
				for slot := uint8(0); slot < 3; slot++ {
					out = append(out, worldmap.ShopSlot(shop, slot))
				}
			}
		}
	case DestRoom:
		lv := w.Levels[d.Level]
		if lv == nil {
			return nil
		}
		room := lv.Rooms[d.RoomID]
		if room != nil && room.HasItem {
			out = append(out, room.Location())
		}
	}
	return out
}

// addItem folds one collected item into inv. Small keys are tracked
// per-level rather than as a plain Kind, since two KindKey pickups in
// different dungeons are not interchangeable (spec.md §4.8).
func addItem(inv *Inventory, loc worldmap.Location, kind item.Kind) {
	if kind == item.KindNothing {
		return
	}
	if loc.Kind == worldmap.LocationDungeonRoom && kind == item.KindKey {
		inv.AddKey(loc.Level)
		return
	}
	inv.Add(kind)
}

func sortedDests(reached map[string]Dest) []Dest {
	out := make([]Dest, 0, len(reached))
	for _, d := range reached {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func sortedUint8Keys[V any](m map[uint8]V) []uint8 {
	out := make([]uint8, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func buildReport(inv *Inventory, w *World, reached map[string]Dest) *Report {
	return &Report{
		Passed:                len(inv.MissingRequired()) == 0,
		MissingItems:          inv.MissingRequired(),
		UnreachedDestinations: unreachedDestinations(w, reached),
	}
}

// unreachedDestinations lists every screen and dungeon room in w not
// present in reached, sorted for deterministic reporting.
func unreachedDestinations(w *World, reached map[string]Dest) []string {
	var out []string
	for _, id := range sortedUint8Keys(w.Screens) {
		d := Dest{Kind: DestScreen, ScreenID: id}
		if _, ok := reached[d.String()]; !ok {
			out = append(out, d.String())
		}
	}
	for _, levelNum := range sortedUint8Keys(w.Levels) {
		lv := w.Levels[levelNum]
		for _, roomID := range sortedUint8Keys(lv.Rooms) {
			d := Dest{Kind: DestRoom, Level: levelNum, RoomID: roomID}
			if _, ok := reached[d.String()]; !ok {
				out = append(out, d.String())
			}
		}
	}
	return out
}
