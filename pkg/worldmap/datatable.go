package worldmap

import (
	"errors"
	"fmt"

	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/patch"
)

// Sentinel errors, per spec.md §7's error taxonomy.
var (
	// ErrInvalidBaseImage is returned when a candidate base image does not
	// match the expected length or header.
	ErrInvalidBaseImage = errors.New("worldmap: invalid base image")

	// ErrOutOfRegion is returned when a write targets an offset outside
	// every declared writable region.
	ErrOutOfRegion = errors.New("worldmap: write outside declared region")
)

// DataTable is ZORA's typed, mutable view of a base ROM image (spec.md
// §4.2 "C2 Data Table"): a read-only snapshot of the original bytes, a
// memory map describing which offsets mean what, and an offset-keyed set
// of pending writes that DrainWrites turns into a patch.Patch.
//
// The split between "base" (never mutated) and "pending" (write-only,
// overlay-style) mirrors teacher's pkg/dungeon generation pipeline, which
// never mutates its input Config and instead accumulates output into a
// fresh Dungeon value.
type DataTable struct {
	mm      *MemoryMap
	base    []byte
	pending *patch.Patch
}

// LoadBaseImage validates and wraps a candidate base ROM image. Per
// spec.md §6, the image must be exactly BaseImageSize bytes; the first
// HeaderSize bytes are treated as an opaque, unwritable header.
func LoadBaseImage(mm *MemoryMap, data []byte) (*DataTable, error) {
	if len(data) != BaseImageSize {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidBaseImage, len(data), BaseImageSize)
	}
	base := make([]byte, len(data))
	copy(base, data)
	return &DataTable{mm: mm, base: base, pending: patch.New()}, nil
}

// currentByte returns the effective byte at offset: the pending write if
// one exists, else the base image's original byte.
func (dt *DataTable) currentByte(offset uint32) byte {
	if b, ok := dt.pending.Get(offset); ok {
		return b
	}
	return dt.base[offset]
}

// writeByte records a single byte write, enforcing the declared-region
// boundary policy (spec.md §4.2).
func (dt *DataTable) writeByte(offset uint32, b byte) error {
	if !dt.mm.IsDeclaredWritable(offset) {
		return fmt.Errorf("%w: offset %d", ErrOutOfRegion, offset)
	}
	dt.pending.Set(offset, b)
	return nil
}

// GetItem returns the item occupying loc, and false if loc's region is not
// declared or the region has no entry for this kind of location. GetItem
// never panics on an unrecognized on-disk byte value: it returns
// (item.Item{}, false) rather than propagating item.New's panic, since the
// byte came from file data, not from a closed Go enum literal.
func (dt *DataTable) GetItem(loc Location) (item.Item, bool) {
	_, offset, ok := dt.itemRegionOffset(loc)
	if !ok {
		return item.Item{}, false
	}
	k := item.Kind(dt.currentByte(offset))
	if !isRegisteredKind(k) {
		return item.Item{}, false
	}
	return item.New(k), true
}

// SetItem records a write placing it at loc. Returns ErrOutOfRegion if
// loc's region is not declared writable for item slots.
func (dt *DataTable) SetItem(loc Location, it item.Item) error {
	_, offset, ok := dt.itemRegionOffset(loc)
	if !ok {
		return fmt.Errorf("%w: location %s", ErrOutOfRegion, loc)
	}
	return dt.writeByte(offset, byte(it.Kind))
}

// itemRegionOffset resolves a Location to its backing region and file
// offset, for the five item-bearing location kinds spec.md §3 defines.
func (dt *DataTable) itemRegionOffset(loc Location) (Region, uint32, bool) {
	switch loc.Kind {
	case LocationOverworldCave:
		r, ok := dt.mm.Region(RegionOverworldCaveItems)
		if !ok {
			return Region{}, 0, false
		}
		return r, r.EntryOffset(uint32(loc.ScreenID)*3 + uint32(loc.Slot)), true
	case LocationDungeonRoom:
		r, ok := dt.mm.Region(RegionDungeonRoomItems)
		if !ok {
			return Region{}, 0, false
		}
		return r, r.EntryOffset(uint32(loc.Level-1)*RoomsPerLevel + uint32(loc.RoomID)), true
	case LocationArmosSlot:
		r, ok := dt.mm.Region(RegionArmosItem)
		if !ok {
			return Region{}, 0, false
		}
		return r, r.EntryOffset(0), true
	case LocationCoastSlot:
		r, ok := dt.mm.Region(RegionCoastItem)
		if !ok {
			return Region{}, 0, false
		}
		return r, r.EntryOffset(0), true
	case LocationShopSlot:
		r, ok := dt.mm.Region(RegionShopItems)
		if !ok {
			return Region{}, 0, false
		}
		return r, r.EntryOffset(uint32(loc.ShopID)*3 + uint32(loc.Slot)), true
	default:
		return Region{}, 0, false
	}
}

// isRegisteredKind reports whether k is a Kind in item's catalogue,
// without relying on item.New's panic-on-unknown behavior.
func isRegisteredKind(k item.Kind) bool {
	if k < item.KindNothing || k > item.KindShopShield {
		return false
	}
	return true
}

// EnemyGroup returns the enemy-group pointer byte for the given overworld
// screen ID.
func (dt *DataTable) EnemyGroup(screenID uint8) (byte, bool) {
	r, ok := dt.mm.Region(RegionEnemyGroups)
	if !ok {
		return 0, false
	}
	return dt.currentByte(r.EntryOffset(uint32(screenID))), true
}

// SetEnemyGroup overwrites the enemy-group pointer for screenID, used by
// start-screen shuffle's pointer swap (spec.md §4.7).
func (dt *DataTable) SetEnemyGroup(screenID uint8, group byte) error {
	r, ok := dt.mm.Region(RegionEnemyGroups)
	if !ok {
		return fmt.Errorf("%w: enemy_groups region undeclared", ErrOutOfRegion)
	}
	return dt.writeByte(r.EntryOffset(uint32(screenID)), group)
}

// CavePointer returns the cave pointer byte for the given overworld screen.
func (dt *DataTable) CavePointer(screenID uint8) (byte, bool) {
	r, ok := dt.mm.Region(RegionCavePointers)
	if !ok {
		return 0, false
	}
	return dt.currentByte(r.EntryOffset(uint32(screenID))), true
}

// SetCavePointer overwrites the cave pointer for screenID.
func (dt *DataTable) SetCavePointer(screenID uint8, pointer byte) error {
	r, ok := dt.mm.Region(RegionCavePointers)
	if !ok {
		return fmt.Errorf("%w: cave_pointers region undeclared", ErrOutOfRegion)
	}
	return dt.writeByte(r.EntryOffset(uint32(screenID)), pointer)
}

// StartScreen returns the overworld screen ID Link spawns on.
func (dt *DataTable) StartScreen() (uint8, bool) {
	r, ok := dt.mm.Region(RegionStartScreen)
	if !ok {
		return 0, false
	}
	return dt.currentByte(r.Offset), true
}

// SetStartScreen overwrites Link's spawn screen, used by start-screen
// shuffle (spec.md §4.7).
func (dt *DataTable) SetStartScreen(screenID uint8) error {
	r, ok := dt.mm.Region(RegionStartScreen)
	if !ok {
		return fmt.Errorf("%w: start_screen region undeclared", ErrOutOfRegion)
	}
	return dt.writeByte(r.Offset, screenID)
}

// ShopPrice returns the rupee price for a shop item slot.
func (dt *DataTable) ShopPrice(shopID, slotIndex uint8) (byte, bool) {
	r, ok := dt.mm.Region(RegionShopPrices)
	if !ok {
		return 0, false
	}
	return dt.currentByte(r.EntryOffset(uint32(shopID)*3 + uint32(slotIndex))), true
}

// SetShopPrice overwrites the rupee price for a shop item slot.
func (dt *DataTable) SetShopPrice(shopID, slotIndex uint8, price byte) error {
	r, ok := dt.mm.Region(RegionShopPrices)
	if !ok {
		return fmt.Errorf("%w: shop_prices region undeclared", ErrOutOfRegion)
	}
	return dt.writeByte(r.EntryOffset(uint32(shopID)*3+uint32(slotIndex)), price)
}

// HintText returns the hint-text blob bytes, unmodified by pending writes
// unless a prior SetHintText call wrote into this region.
func (dt *DataTable) HintText() ([]byte, bool) {
	r, ok := dt.mm.Region(RegionHintText)
	if !ok {
		return nil, false
	}
	out := make([]byte, r.Length)
	for i := range out {
		out[i] = dt.currentByte(r.Offset + uint32(i))
	}
	return out, true
}

// SetHintText overwrites the hint-text blob. text longer than the declared
// region length is truncated; shorter text leaves trailing bytes
// untouched.
func (dt *DataTable) SetHintText(text []byte) error {
	r, ok := dt.mm.Region(RegionHintText)
	if !ok {
		return fmt.Errorf("%w: hint_text region undeclared", ErrOutOfRegion)
	}
	n := len(text)
	if uint32(n) > r.Length {
		n = int(r.Length)
	}
	for i := 0; i < n; i++ {
		if err := dt.writeByte(r.Offset+uint32(i), text[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetTitleString overwrites the canonical title-string metadata region
// written on every run, per SPEC_FULL.md's supplemented-features note:
// even an empty flag-set produces a deterministic title string and
// canonical hash.
func (dt *DataTable) SetTitleString(s []byte) error {
	r, ok := dt.mm.Region(RegionTitleString)
	if !ok {
		return fmt.Errorf("%w: title_string region undeclared", ErrOutOfRegion)
	}
	n := len(s)
	if uint32(n) > r.Length {
		n = int(r.Length)
	}
	for i := 0; i < n; i++ {
		if err := dt.writeByte(r.Offset+uint32(i), s[i]); err != nil {
			return err
		}
	}
	for i := n; uint32(i) < r.Length; i++ {
		if err := dt.writeByte(r.Offset+uint32(i), 0); err != nil {
			return err
		}
	}
	return nil
}

// SetCanonicalHash writes the 8-byte canonical patch hash into its
// dedicated metadata region, big-endian.
func (dt *DataTable) SetCanonicalHash(hash uint64) error {
	r, ok := dt.mm.Region(RegionCanonicalHash)
	if !ok {
		return fmt.Errorf("%w: canonical_hash region undeclared", ErrOutOfRegion)
	}
	for i := 0; i < 8 && uint32(i) < r.Length; i++ {
		shift := uint(56 - i*8)
		if err := dt.writeByte(r.Offset+uint32(i), byte(hash>>shift)); err != nil {
			return err
		}
	}
	return nil
}

// DrainWrites returns a patch.Patch containing every pending write
// recorded so far. The DataTable's pending set is left intact — callers
// generate the final Patch once, at the end of the pipeline, not per
// component.
func (dt *DataTable) DrainWrites() *patch.Patch {
	out := patch.New()
	out.Merge(dt.pending, nil)
	return out
}
