package zora_test

import (
	"context"
	"testing"

	"github.com/zora-rando/zora/pkg/flags"
	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/validate"
	"github.com/zora-rando/zora/pkg/worldmap"
	"github.com/zora-rando/zora/pkg/zora"
)

// vanillaBaseImage returns a base image with every spec.md §3 Invariant 3
// required Kind already placed in a distinct dungeon room, so
// validate.DefaultWorld's reachability check passes without the item
// randomizer ever having moved anything — the same way a real vanilla ROM
// already has every required item placed somewhere.
func vanillaBaseImage(t *testing.T) []byte {
	t.Helper()
	mm := worldmap.DefaultMemoryMap()
	dt, err := worldmap.LoadBaseImage(mm, make([]byte, worldmap.BaseImageSize))
	if err != nil {
		t.Fatalf("LoadBaseImage: %v", err)
	}
	for i, k := range item.RequiredKinds() {
		loc := worldmap.DungeonRoom(uint8(i%worldmap.NumLevels)+1, uint8(i/worldmap.NumLevels))
		if err := dt.SetItem(loc, item.New(k)); err != nil {
			t.Fatalf("SetItem %v: %v", k, err)
		}
	}
	out, err := dt.DrainWrites().ApplyTo(make([]byte, worldmap.BaseImageSize))
	if err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	return out
}

// TestGenerate_NoFlagsProducesOnlyMandatoryMetadataWrites is Testable
// Scenario S1 (spec.md): with every flag off, a successful Generate must
// leave the base image untouched except for the mandatory title-string
// and canonical-hash metadata writes C9 makes on every run.
func TestGenerate_NoFlagsProducesOnlyMandatoryMetadataWrites(t *testing.T) {
	base := vanillaBaseImage(t)
	mm := worldmap.DefaultMemoryMap()

	result, err := zora.Generate(context.Background(), 12345, flags.NewSet(), base, validate.DefaultWorld())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	titleRegion, ok := mm.Region(worldmap.RegionTitleString)
	if !ok {
		t.Fatal("title_string region missing from default map")
	}
	hashRegion, ok := mm.Region(worldmap.RegionCanonicalHash)
	if !ok {
		t.Fatal("canonical_hash region missing from default map")
	}

	wantWrites := int(titleRegion.Length + hashRegion.Length)
	if result.Patch.Len() != wantWrites {
		t.Fatalf("got %d pending writes with no flags set, want exactly %d (title string + canonical hash only)", result.Patch.Len(), wantWrites)
	}

	for i := uint32(0); i < titleRegion.Length; i++ {
		if _, ok := result.Patch.Get(titleRegion.Offset + i); !ok {
			t.Fatalf("title_string byte %d not written", i)
		}
	}
	for i := uint32(0); i < hashRegion.Length; i++ {
		if _, ok := result.Patch.Get(hashRegion.Offset + i); !ok {
			t.Fatalf("canonical_hash byte %d not written", i)
		}
	}
}

// TestGenerate_ShuffleSwordOnlyMovesSwordTierLocations exercises the
// major_item_shuffle/shuffle_sword gating that
// deriveProblemInputs/shuffleEnabled implement: enabling only
// shuffle_sword must leave every non-sword required item exactly where
// vanillaBaseImage placed it.
func TestGenerate_ShuffleSwordOnlyMovesSwordTierLocations(t *testing.T) {
	base := vanillaBaseImage(t)

	flagSet := flags.NewSet()
	flagSet.Set("major_item_shuffle", true)
	flagSet.Set("shuffle_sword", true)

	result, err := zora.Generate(context.Background(), 777, flagSet, base, validate.DefaultWorld())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	mm := worldmap.DefaultMemoryMap()
	patched, err := result.Patch.ApplyTo(base)
	if err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	dt, err := worldmap.LoadBaseImage(mm, patched)
	if err != nil {
		t.Fatalf("LoadBaseImage: %v", err)
	}

	for i, k := range item.RequiredKinds() {
		if k == item.KindSwordMagical {
			continue
		}
		loc := worldmap.DungeonRoom(uint8(i%worldmap.NumLevels)+1, uint8(i/worldmap.NumLevels))
		got, ok := dt.GetItem(loc)
		if !ok || got.Kind != k {
			t.Fatalf("location %s: got %v (ok=%v), want untouched %v", loc, got.Kind, ok, k)
		}
	}
}
