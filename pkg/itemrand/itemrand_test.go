package itemrand_test

import (
	"testing"

	"github.com/zora-rando/zora/pkg/flags"
	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/itemrand"
	"github.com/zora-rando/zora/pkg/worldmap"
)

func newDataTable(t *testing.T) *worldmap.DataTable {
	t.Helper()
	mm := worldmap.DefaultMemoryMap()
	dt, err := worldmap.LoadBaseImage(mm, make([]byte, worldmap.BaseImageSize))
	if err != nil {
		t.Fatalf("LoadBaseImage: %v", err)
	}
	return dt
}

func smallLocationsAndPool() ([]worldmap.Location, []item.Kind) {
	locs := []worldmap.Location{
		worldmap.OverworldCave(0, 0),
		worldmap.OverworldCave(1, 0),
		worldmap.DungeonRoom(9, 1),
		worldmap.DungeonRoom(9, 2),
	}
	pool := []item.Kind{
		item.KindSwordWood,
		item.KindBow,
		item.KindArrowSilver,
		item.KindHeartContainer,
	}
	return locs, pool
}

func TestRandomize_ProducesCompleteBijectionAndWrites(t *testing.T) {
	dt := newDataTable(t)
	locs, pool := smallLocationsAndPool()

	result, err := itemrand.Randomize(42, flags.NewSet(), locs, pool, dt)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}
	if len(result.Assignment) != len(locs) {
		t.Fatalf("got %d assignments, want %d", len(result.Assignment), len(locs))
	}
	for _, loc := range locs {
		got, ok := dt.GetItem(loc)
		if !ok {
			t.Fatalf("location %s: no item written", loc)
		}
		if got.Kind != result.Assignment[loc] {
			t.Fatalf("location %s: DataTable has %v, solver returned %v", loc, got.Kind, result.Assignment[loc])
		}
	}
}

func TestRandomize_OpenCaveNeverGetsNonSwordMajorItem(t *testing.T) {
	dt := newDataTable(t)
	locs := []worldmap.Location{
		worldmap.OverworldCave(0, 0), // the documented open-cave location
		worldmap.OverworldCave(1, 0),
	}
	pool := []item.Kind{item.KindBow, item.KindSwordWood}

	flagSet := flags.NewSet()
	flagSet.Set("force_sword_to_open_cave", true)

	result, err := itemrand.Randomize(7, flagSet, locs, pool, dt)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}
	openCave := worldmap.OverworldCave(0, 0)
	got := result.Assignment[openCave]
	if got != item.KindSwordWood {
		t.Fatalf("open cave got %v, want a sword tier (only sword available here)", got)
	}
}

func TestRandomize_OpenCaveRuleIsGatedByItsFlag(t *testing.T) {
	dt := newDataTable(t)
	locs := []worldmap.Location{
		worldmap.OverworldCave(0, 0),
	}
	pool := []item.Kind{item.KindBow}

	// force_sword_to_open_cave is off and no sword is even in the pool;
	// the rule must not fire (no Forbid/Require), or this would be
	// infeasible.
	result, err := itemrand.Randomize(7, flags.NewSet(), locs, pool, dt)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}
	openCave := worldmap.OverworldCave(0, 0)
	if got := result.Assignment[openCave]; got != item.KindBow {
		t.Fatalf("open cave got %v, want %v since the rule is not effective", got, item.KindBow)
	}
}

func TestRandomize_ForceArrowToLevelNinePlacesSilverArrowThere(t *testing.T) {
	dt := newDataTable(t)
	locs := []worldmap.Location{
		worldmap.DungeonRoom(9, 1),
		worldmap.DungeonRoom(1, 1),
	}
	pool := []item.Kind{item.KindArrowSilver, item.KindBow}

	flagSet := flags.NewSet()
	flagSet.Set("force_arrow_to_level_nine", true)

	result, err := itemrand.Randomize(3, flagSet, locs, pool, dt)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}
	if got := result.Assignment[worldmap.DungeonRoom(9, 1)]; got != item.KindArrowSilver {
		t.Fatalf("level-9 room got %v, want the silver arrow forced in by elimination", got)
	}
}

func TestRandomize_TwoHeartContainersReachLevelNineWhenForced(t *testing.T) {
	dt := newDataTable(t)
	locs := []worldmap.Location{
		worldmap.DungeonRoom(9, 1),
		worldmap.DungeonRoom(9, 2),
		worldmap.DungeonRoom(9, 3),
		worldmap.DungeonRoom(1, 1),
	}
	pool := []item.Kind{
		item.KindHeartContainer, item.KindHeartContainer,
		item.KindBow, item.KindBait,
	}

	flagSet := flags.NewSet()
	flagSet.Set("force_two_heart_containers_to_level_nine", true)

	result, err := itemrand.Randomize(11, flagSet, locs, pool, dt)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}
	hearts := 0
	for _, loc := range []worldmap.Location{
		worldmap.DungeonRoom(9, 1), worldmap.DungeonRoom(9, 2), worldmap.DungeonRoom(9, 3),
	} {
		if result.Assignment[loc] == item.KindHeartContainer {
			hearts++
		}
	}
	if hearts != 2 {
		t.Fatalf("level 9 got %d heart containers, want exactly 2", hearts)
	}
}

func TestRandomize_Deterministic(t *testing.T) {
	locs, pool := smallLocationsAndPool()

	r1, err := itemrand.Randomize(99, flags.NewSet(), locs, pool, newDataTable(t))
	if err != nil {
		t.Fatalf("Randomize (1): %v", err)
	}
	r2, err := itemrand.Randomize(99, flags.NewSet(), locs, pool, newDataTable(t))
	if err != nil {
		t.Fatalf("Randomize (2): %v", err)
	}
	for loc, kind := range r1.Assignment {
		if r2.Assignment[loc] != kind {
			t.Fatalf("location %s: same seed produced different result: %v vs %v", loc, kind, r2.Assignment[loc])
		}
	}
}
