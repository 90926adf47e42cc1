package validate

import "github.com/zora-rando/zora/pkg/worldmap"

// DefaultWorld returns a structurally complete World sized to the base
// image's fixed geometry (worldmap.NumScreens screens, worldmap.NumLevels
// levels of worldmap.RoomsPerLevel rooms each), connected as a simple
// deterministic chain.
//
// The real NES overworld/dungeon adjacency (which screen borders which,
// which rooms share a wall, which doors are locked or bombable) is
// reverse-engineered ROM data this spec doesn't supply — DefaultWorld is
// a stand-in skeleton that exercises the fixed-point engine end-to-end
// (every screen and room is reachable by construction, so a plain
// generate() run validates), not a claim about the real map's layout. A
// production deployment loads the real adjacency the same way
// worldmap.MemoryMap is loaded: a YAML document parsed into this
// package's types.
func DefaultWorld() *World {
	w := NewWorld(0)

	for id := 0; id < worldmap.NumScreens; id++ {
		s := worldmap.NewScreen(uint8(id), worldmap.TerrainPlain)
		if id > 0 {
			s.PassableNeighbor[uint8(id-1)] = true
		}
		if id < worldmap.NumScreens-1 {
			s.PassableNeighbor[uint8(id+1)] = true
		}
		w.AddScreen(s)
	}

	for levelNum := uint8(1); levelNum <= worldmap.NumLevels; levelNum++ {
		lv := worldmap.NewLevel(levelNum)
		lv.EntranceRoom = 0
		for id := uint8(0); id < worldmap.RoomsPerLevel; id++ {
			room := &worldmap.Room{ID: id, HasItem: true}
			if id > 0 {
				room.SetExit(worldmap.ExitWest, worldmap.Exit{Class: worldmap.ExitPassable, ToRoomID: id - 1})
			}
			if id < worldmap.RoomsPerLevel-1 {
				room.SetExit(worldmap.ExitEast, worldmap.Exit{Class: worldmap.ExitPassable, ToRoomID: id + 1})
			}
			lv.AddRoom(room)
		}
		w.AddLevel(lv)

		// entranceScreen spreads the nine dungeon entrances evenly across
		// the overworld screens, deterministic in NumScreens/NumLevels.
		entranceScreen := uint8((int(levelNum) - 1) * worldmap.NumScreens / worldmap.NumLevels)
		w.SetEntrance(entranceScreen, levelNum)
	}

	return w
}
