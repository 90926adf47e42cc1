package worldmap

// Base-image contract constants, per spec.md §6: a 131,088-byte file whose
// first 16 bytes are a fixed header that must never be written.
const (
	BaseImageSize = 131088
	HeaderSize    = 16

	NumScreens = 128 // 16x8 overworld grid
	NumShops   = 8
	NumLevels  = 9
	RoomsPerLevel = 64 // 8x8 room layout per level, per spec.md §3 "Level"
)

// Declared region names. DataTable resolves every accessor through one of
// these — components never hardcode a raw file offset.
const (
	RegionOverworldCaveItems = "overworld_cave_items"
	RegionDungeonRoomItems   = "dungeon_room_items"
	RegionArmosItem          = "armos_item"
	RegionCoastItem          = "coast_item"
	RegionShopItems          = "shop_items"
	RegionEnemyGroups        = "enemy_groups"
	RegionCavePointers       = "cave_pointers"
	RegionCompassPointers    = "compass_pointers"
	RegionStartScreen        = "start_screen"
	RegionShopPrices         = "shop_prices"
	RegionHintText           = "hint_text"
	RegionTitleString        = "title_string"
	RegionCanonicalHash      = "canonical_hash"
)

// DefaultMemoryMap returns the declarative memory map for the single
// documented base image spec.md §6 names. It is the Go-literal equivalent
// of the YAML document LoadMemoryMap would parse — callers that ship a
// custom map load one via YAML instead; the default exists so tests and
// the CLI's zero-config path don't require an external file, the same way
// teacher's dungeon package ships DefaultConfig()-shaped helpers alongside
// LoadConfig.
func DefaultMemoryMap() *MemoryMap {
	mm := &MemoryMap{
		Regions: []Region{
			{Name: RegionOverworldCaveItems, Offset: 0x4010, Length: NumScreens * 3, Stride: 1, Count: NumScreens * 3, Kind: EntityItemSlot, Writable: true},
			{Name: RegionDungeonRoomItems, Offset: 0x4200, Length: NumLevels * RoomsPerLevel, Stride: 1, Count: NumLevels * RoomsPerLevel, Kind: EntityItemSlot, Writable: true},
			{Name: RegionArmosItem, Offset: 0x4450, Length: 1, Stride: 1, Count: 1, Kind: EntityItemSlot, Writable: true},
			{Name: RegionCoastItem, Offset: 0x4451, Length: 1, Stride: 1, Count: 1, Kind: EntityItemSlot, Writable: true},
			{Name: RegionShopItems, Offset: 0x4460, Length: NumShops * 3, Stride: 1, Count: NumShops * 3, Kind: EntityItemSlot, Writable: true},
			{Name: RegionEnemyGroups, Offset: 0x4500, Length: NumScreens, Stride: 1, Count: NumScreens, Kind: EntityEnemyGroup, Writable: true},
			{Name: RegionCavePointers, Offset: 0x4580, Length: NumScreens, Stride: 1, Count: NumScreens, Kind: EntityPointer, Writable: true},
			{Name: RegionCompassPointers, Offset: 0x4600, Length: NumLevels * RoomsPerLevel, Stride: 1, Count: NumLevels * RoomsPerLevel, Kind: EntityCompassPointer, Writable: true},
			{Name: RegionStartScreen, Offset: 0x4880, Length: 1, Stride: 1, Count: 1, Kind: EntityStartScreen, Writable: true},
			{Name: RegionShopPrices, Offset: 0x4890, Length: NumShops * 3, Stride: 1, Count: NumShops * 3, Kind: EntityShopPrice, Writable: true},
			{Name: RegionHintText, Offset: 0x4900, Length: 0x400, Kind: EntityHintText, Writable: true},
			{Name: RegionTitleString, Offset: 0x4D00, Length: 20, Kind: EntityTitleString, Writable: true},
			{Name: RegionCanonicalHash, Offset: 0x4D20, Length: 8, Kind: EntityCanonicalHash, Writable: true},
		},
	}
	mm.index()
	return mm
}
