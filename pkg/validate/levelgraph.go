package validate

import (
	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/worldmap"
)

// roomState is one node of the per-level search: which room, and how many
// of the level's small keys have been spent reaching it along the current
// path. keysUsed is a per-path count, not global — two different paths
// through the same room may have opened different doors and so have spent
// a different number of keys, exactly as teacher's agent.go searchState
// copies its capabilities map on every branch instead of sharing one
// mutable set across the whole search.
type roomState struct {
	room     uint8
	keysUsed int
}

// reachableRoomsInLevel computes every room reachable within lv given the
// current inventory, honoring spec.md §4.8's "optimal key usage" rule: a
// locked door may be opened along a path iff that path has used fewer keys
// than the level's total keysAvailable so far. Bombable exits require
// item.KindBombs; all other exit classes are either always open
// (Passable, Door) or never (Walled).
func reachableRoomsInLevel(lv *worldmap.Level, inv *Inventory) map[uint8]bool {
	reachedRooms := map[uint8]bool{lv.EntranceRoom: true}
	if lv.Rooms[lv.EntranceRoom] == nil {
		return reachedRooms
	}

	keysAvailable := inv.KeysCollected(lv.Number)
	start := roomState{room: lv.EntranceRoom, keysUsed: 0}
	visited := map[roomState]bool{start: true}
	queue := []roomState{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		room := lv.Rooms[cur.room]
		if room == nil {
			continue
		}

		for dir := worldmap.ExitNorth; dir <= worldmap.ExitWest; dir++ {
			e := room.Exit(dir)
			next, ok := tryExit(e, cur, inv, keysAvailable)
			if !ok {
				continue
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			reachedRooms[next.room] = true
			queue = append(queue, next)
		}

		if room.HasStairs {
			next := roomState{room: room.StairsTo, keysUsed: cur.keysUsed}
			if !visited[next] {
				visited[next] = true
				reachedRooms[next.room] = true
				queue = append(queue, next)
			}
		}
	}
	return reachedRooms
}

// tryExit reports whether e may be traversed from cur given inv and the
// level's keysAvailable, and if so the resulting roomState (keysUsed
// incremented when e consumes a lock).
func tryExit(e worldmap.Exit, cur roomState, inv *Inventory, keysAvailable int) (roomState, bool) {
	switch e.Class {
	case worldmap.ExitWalled:
		return roomState{}, false
	case worldmap.ExitBombable:
		if !inv.Has(item.KindBombs) {
			return roomState{}, false
		}
		return roomState{room: e.ToRoomID, keysUsed: cur.keysUsed}, true
	case worldmap.ExitLocked:
		if cur.keysUsed >= keysAvailable {
			return roomState{}, false
		}
		return roomState{room: e.ToRoomID, keysUsed: cur.keysUsed + 1}, true
	default: // ExitPassable, ExitDoor
		return roomState{room: e.ToRoomID, keysUsed: cur.keysUsed}, true
	}
}
