// Package validate is ZORA's C8 "Validator" (spec.md §4.8): a symbolic
// fixed-point reachability engine over a randomized Data Table.
//
// The engine generalizes teacher's pkg/validation.Agent —
// SimulateExploration's BFS-with-capability-state-copy is itself a
// reachability fixed point over a single agent's capability set; here the
// same idea runs over the whole world at once (inventory I, reachable
// slots R, accessible destinations D) instead of one traversal, because
// spec.md §4.8 requires the engine to report every unreached destination
// and missing item on failure, not just whether one path exists.
package validate

import "github.com/zora-rando/zora/pkg/worldmap"

// DestKind tags which of the two destination shapes a Dest holds.
type DestKind int

const (
	DestScreen DestKind = iota
	DestRoom
)

// Dest is one accessible place in the world: an overworld screen or a
// dungeon room. It is the unit the fixed-point's D set grows over,
// distinct from worldmap.Location (an item slot) since a destination can
// be reachable and empty (e.g. the screen is accessible before the cave
// on it is checked for its item).
type Dest struct {
	Kind     DestKind
	ScreenID uint8 // DestScreen
	Level    uint8 // DestRoom
	RoomID   uint8 // DestRoom
}

func (d Dest) String() string {
	if d.Kind == DestScreen {
		return screenKey(d.ScreenID)
	}
	return roomKey(d.Level, d.RoomID)
}

func screenKey(id uint8) string { return "screen:" + itoa(id) }
func roomKey(level, room uint8) string { return "room:" + itoa(level) + ":" + itoa(room) }

func itoa(b uint8) string {
	if b == 0 {
		return "0"
	}
	digits := [3]byte{}
	n := 0
	for b > 0 {
		digits[n] = byte('0' + b%10)
		b /= 10
		n++
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = digits[n-1-i]
	}
	return string(out)
}

// World is the static (post-randomization) transition structure the
// fixed-point iterates over: overworld screen adjacency, which screens
// lead into which dungeon entrances, and each level's room graph. It is
// built once from a worldmap.MemoryMap-level description of the ROM's
// fixed geometry, independent of any particular seed's item placement.
type World struct {
	Screens         map[uint8]*worldmap.Screen
	Levels          map[uint8]*worldmap.Level
	EntranceScreens map[uint8]uint8 // screenID -> level number
	StartScreen     uint8
}

// NewWorld returns an empty World scaffold.
func NewWorld(startScreen uint8) *World {
	return &World{
		Screens:         make(map[uint8]*worldmap.Screen),
		Levels:          make(map[uint8]*worldmap.Level),
		EntranceScreens: make(map[uint8]uint8),
		StartScreen:     startScreen,
	}
}

// AddScreen registers an overworld screen.
func (w *World) AddScreen(s *worldmap.Screen) { w.Screens[s.ID] = s }

// AddLevel registers a dungeon level.
func (w *World) AddLevel(lv *worldmap.Level) { w.Levels[lv.Number] = lv }

// SetEntrance records that screenID's cave is the entrance to level.
func (w *World) SetEntrance(screenID, level uint8) { w.EntranceScreens[screenID] = level }
