// Package worldmap is ZORA's Data Table (spec.md §4.2): a parsed,
// typed view of the base ROM image — screens, caves, levels, rooms, items,
// enemies — plus the offset-keyed pending-writes map that becomes a Patch.
//
// The package's shape follows teacher's pkg/graph (tagged node/edge types
// with a Validate() method each) and pkg/dungeon/config.go (YAML-declared
// configuration with per-field validation), generalized from an abstract
// room graph to the concrete, fixed geometry of a single documented ROM.
package worldmap

import "fmt"

// LocationKind tags which of the five disjoint location shapes a Location
// value holds, per spec.md §3.
type LocationKind int

const (
	LocationOverworldCave LocationKind = iota
	LocationDungeonRoom
	LocationArmosSlot
	LocationCoastSlot
	LocationShopSlot
)

func (k LocationKind) String() string {
	switch k {
	case LocationOverworldCave:
		return "OverworldCave"
	case LocationDungeonRoom:
		return "DungeonRoom"
	case LocationArmosSlot:
		return "ArmosSlot"
	case LocationCoastSlot:
		return "CoastSlot"
	case LocationShopSlot:
		return "ShopSlot"
	default:
		return fmt.Sprintf("LocationKind(%d)", int(k))
	}
}

// Location is every mutable item slot ZORA can place an item at. It is a
// plain comparable struct (not an interface) so Location values can be map
// keys directly, as C5's solver contract requires ("keys: Seq<K>").
//
// Only the fields relevant to Kind are meaningful; constructors below are
// the only supported way to build a Location so irrelevant fields are
// always zeroed, keeping equality well-defined.
type Location struct {
	Kind      LocationKind
	ScreenID  uint8 // OverworldCave
	Slot      uint8 // OverworldCave slot_index (0,1,2) or ShopSlot slot_index
	Level     uint8 // DungeonRoom level (1..9)
	RoomID    uint8 // DungeonRoom room_id
	ShopID    uint8 // ShopSlot shop_id
}

// OverworldCave constructs the Location for one of a screen's three cave
// item slots.
func OverworldCave(screenID, slotIndex uint8) Location {
	if slotIndex > 2 {
		panic(fmt.Sprintf("worldmap: OverworldCave slot_index must be 0..2, got %d", slotIndex))
	}
	return Location{Kind: LocationOverworldCave, ScreenID: screenID, Slot: slotIndex}
}

// DungeonRoom constructs the Location for an item-bearing dungeon room.
func DungeonRoom(level uint8, roomID uint8) Location {
	if level < 1 || level > 9 {
		panic(fmt.Sprintf("worldmap: DungeonRoom level must be 1..9, got %d", level))
	}
	return Location{Kind: LocationDungeonRoom, Level: level, RoomID: roomID}
}

// ArmosSlot constructs the singleton Armos outdoor item tile Location.
func ArmosSlot() Location { return Location{Kind: LocationArmosSlot} }

// CoastSlot constructs the singleton Coast outdoor item tile Location.
func CoastSlot() Location { return Location{Kind: LocationCoastSlot} }

// ShopSlot constructs the Location for one of a shop's three item slots.
func ShopSlot(shopID, slotIndex uint8) Location {
	if slotIndex > 2 {
		panic(fmt.Sprintf("worldmap: ShopSlot slot_index must be 0..2, got %d", slotIndex))
	}
	return Location{Kind: LocationShopSlot, ShopID: shopID, Slot: slotIndex}
}

// String renders a stable, human-readable identifier for debugging and
// for use as a sort key (spec.md §4.1/§4.8 require deterministic,
// sorted-by-stable-key iteration of location sets).
func (l Location) String() string {
	switch l.Kind {
	case LocationOverworldCave:
		return fmt.Sprintf("OverworldCave(screen=%d,slot=%d)", l.ScreenID, l.Slot)
	case LocationDungeonRoom:
		return fmt.Sprintf("DungeonRoom(level=%d,room=%d)", l.Level, l.RoomID)
	case LocationArmosSlot:
		return "ArmosSlot"
	case LocationCoastSlot:
		return "CoastSlot"
	case LocationShopSlot:
		return fmt.Sprintf("ShopSlot(shop=%d,slot=%d)", l.ShopID, l.Slot)
	default:
		return fmt.Sprintf("Location(invalid kind %d)", int(l.Kind))
	}
}
