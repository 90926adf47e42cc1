package worldmap

import "github.com/zora-rando/zora/pkg/item"

// TerrainClass classifies what an overworld screen's tiles permit.
type TerrainClass int

const (
	TerrainPlain TerrainClass = iota
	TerrainForest
	TerrainWater
	TerrainLava
	TerrainImpassable
	TerrainGrave
	TerrainWarp
)

// Screen is one overworld cell: terrain class, an enemy-group pointer, an
// optional cave, whether Link can spawn here (start-flag), and the
// neighboring screens reachable from it, split into unconditional passage
// and passage gated behind holding a specific item (spec.md §3 "Screen";
// §4.8's "ladder/raft/bow/bait/recorder gating" generalizes the
// bait-blocker-only model C7 analyzes into any single-item requirement).
type Screen struct {
	ID               uint8
	Terrain          TerrainClass
	EnemyGroup       uint8 // pointer/index into the enemy-group table
	HasCave          bool
	CavePointer      uint8 // valid only if HasCave
	StartFlag        bool  // whether Link's spawn sprite is permitted here
	BaitBlockerAdj   map[uint8]bool // neighbor screen IDs gated behind Bait
	PassableNeighbor map[uint8]bool // neighbor screen IDs reachable by normal movement
	GatedNeighbor    map[uint8]item.Kind // neighbor screen IDs gated behind holding the given Kind (water crossings needing Raft/Ladder, etc.)
}

// NewScreen returns a Screen with its adjacency sets initialized.
func NewScreen(id uint8, terrain TerrainClass) *Screen {
	return &Screen{
		ID:               id,
		Terrain:          terrain,
		BaitBlockerAdj:   make(map[uint8]bool),
		PassableNeighbor: make(map[uint8]bool),
		GatedNeighbor:    make(map[uint8]item.Kind),
	}
}

// CanSpawn reports whether Link's spawn sprite may be placed on this
// screen: the terrain must permit it and no enemy group may already occupy
// it (spec.md §4.7's start-screen-shuffle target criteria).
func (s *Screen) CanSpawn() bool {
	if s.Terrain == TerrainImpassable || s.Terrain == TerrainWater || s.Terrain == TerrainLava {
		return false
	}
	return s.EnemyGroup == 0
}
