package worldmap

import "fmt"

// Level is one of the nine numbered dungeons: an entrance room, its
// stairway rooms, an 8x8 room layout, and the set of rooms that carry an
// item (spec.md §3 "Level").
type Level struct {
	Number      uint8 // 1..9
	EntranceRoom uint8
	StairwayRooms []uint8
	// Layout is an 8x8 grid of room IDs; 0 means "no room at this cell."
	Layout   [8][8]uint8
	Rooms    map[uint8]*Room
	ItemRooms []uint8
	// SmallKeyCount is the fixed small-key count for this level from the
	// base image (spec.md §4.8: "Small-key count per dungeon is fixed by
	// the base image").
	SmallKeyCount int
}

// NewLevel returns an empty Level scaffold for the given dungeon number.
func NewLevel(number uint8) *Level {
	if number < 1 || number > 9 {
		panic(fmt.Sprintf("worldmap: level number must be 1..9, got %d", number))
	}
	return &Level{
		Number: number,
		Rooms:  make(map[uint8]*Room),
	}
}

// AddRoom registers a room within this level.
func (lv *Level) AddRoom(r *Room) {
	r.Level = lv.Number
	lv.Rooms[r.ID] = r
	if r.HasItem {
		lv.ItemRooms = append(lv.ItemRooms, r.ID)
	}
}
