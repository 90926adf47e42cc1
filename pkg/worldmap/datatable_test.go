package worldmap_test

import (
	"testing"

	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/worldmap"
)

func newTestDataTable(t *testing.T) (*worldmap.DataTable, *worldmap.MemoryMap) {
	t.Helper()
	mm := worldmap.DefaultMemoryMap()
	dt, err := worldmap.LoadBaseImage(mm, make([]byte, worldmap.BaseImageSize))
	if err != nil {
		t.Fatalf("LoadBaseImage: %v", err)
	}
	return dt, mm
}

func TestLoadBaseImage_RejectsWrongLength(t *testing.T) {
	mm := worldmap.DefaultMemoryMap()
	if _, err := worldmap.LoadBaseImage(mm, make([]byte, 100)); err == nil {
		t.Fatal("expected ErrInvalidBaseImage for short image")
	}
}

func TestSetItem_GetItem_RoundTrip(t *testing.T) {
	dt, _ := newTestDataTable(t)
	loc := worldmap.OverworldCave(5, 1)
	it := item.New(item.KindBow)

	if err := dt.SetItem(loc, it); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	got, ok := dt.GetItem(loc)
	if !ok || got.Kind != item.KindBow {
		t.Fatalf("GetItem returned %v ok=%v, want KindBow", got, ok)
	}
}

func TestGetItem_UnrecognizedByteDoesNotPanic(t *testing.T) {
	mm := worldmap.DefaultMemoryMap()
	r, ok := mm.Region(worldmap.RegionDungeonRoomItems)
	if !ok {
		t.Fatal("dungeon_room_items region missing from default map")
	}
	base := make([]byte, worldmap.BaseImageSize)
	base[r.EntryOffset(3)] = 0xFF // level 1, room 3
	dt, err := worldmap.LoadBaseImage(mm, base)
	if err != nil {
		t.Fatalf("LoadBaseImage: %v", err)
	}
	loc := worldmap.DungeonRoom(1, 3)
	if _, ok := dt.GetItem(loc); ok {
		t.Fatal("expected false for a slot holding a byte that is no registered item kind")
	}
}

func TestSetItem_OutOfRegionIsRejected(t *testing.T) {
	mm := &worldmap.MemoryMap{}
	dt, err := worldmap.LoadBaseImage(mm, make([]byte, worldmap.BaseImageSize))
	if err != nil {
		t.Fatalf("LoadBaseImage: %v", err)
	}
	err = dt.SetItem(worldmap.OverworldCave(0, 0), item.New(item.KindBow))
	if err == nil {
		t.Fatal("expected ErrOutOfRegion when no regions are declared")
	}
}

func TestDrainWrites_ProducesPatchWithAllPendingBytes(t *testing.T) {
	dt, _ := newTestDataTable(t)
	if err := dt.SetItem(worldmap.ArmosSlot(), item.New(item.KindRupee5)); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	if err := dt.SetStartScreen(0x42); err != nil {
		t.Fatalf("SetStartScreen: %v", err)
	}

	p := dt.DrainWrites()
	if p.Len() != 2 {
		t.Fatalf("got %d pending writes, want 2", p.Len())
	}
}

func TestSetCanonicalHash_WritesBigEndian(t *testing.T) {
	dt, mm := newTestDataTable(t)
	if err := dt.SetCanonicalHash(0x0102030405060708); err != nil {
		t.Fatalf("SetCanonicalHash: %v", err)
	}
	r, ok := mm.Region(worldmap.RegionCanonicalHash)
	if !ok {
		t.Fatal("canonical_hash region missing from default map")
	}
	p := dt.DrainWrites()
	for i := 0; i < 8; i++ {
		b, ok := p.Get(r.Offset + uint32(i))
		if !ok {
			t.Fatalf("byte %d not written", i)
		}
		if b != byte(i+1) {
			t.Fatalf("byte %d = %x, want %x", i, b, i+1)
		}
	}
}
