package overworld_test

import (
	"testing"

	"github.com/zora-rando/zora/pkg/overworld"
	"github.com/zora-rando/zora/pkg/rng"
	"github.com/zora-rando/zora/pkg/worldmap"
)

func TestChooseStartScreen_PicksFromSortedCandidates(t *testing.T) {
	var seenOrder []uint8
	pick := func(sorted []uint8) uint8 {
		seenOrder = sorted
		return sorted[0]
	}
	s := overworld.ChooseStartScreen(5, []uint8{9, 3, 7}, pick)
	if s.OriginalScreen != 5 || s.NewScreen != 3 {
		t.Fatalf("unexpected shuffle: %+v", s)
	}
	if seenOrder[0] != 3 || seenOrder[1] != 7 || seenOrder[2] != 9 {
		t.Fatalf("candidates not sorted before pick: %v", seenOrder)
	}
}

func TestPartitionAcrossBaitBlocker_SeparatesDisconnectedSides(t *testing.T) {
	g := overworld.NewAdjacencyGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3) // the only link between {1,2} and {3,4}
	g.AddEdge(3, 4)

	p := g.PartitionAcrossBaitBlocker(2, 3)
	if overworld.BaitGateConnects(p, 3) {
		t.Fatal("expected the bait gate to be load-bearing (sides disconnected after cut)")
	}
	if len(p.A) != 2 || len(p.B) != 2 {
		t.Fatalf("expected a 2/2 split, got A=%v B=%v", p.A, p.B)
	}
}

func TestPartitionAcrossBaitBlocker_RedundantGateStaysConnected(t *testing.T) {
	g := overworld.NewAdjacencyGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(1, 3) // redundant alternate path around the gate

	p := g.PartitionAcrossBaitBlocker(2, 3)
	if !overworld.BaitGateConnects(p, 3) {
		t.Fatal("expected sides to remain connected via the redundant edge")
	}
}

func TestApplyStartScreenShuffle_SwapsEnemyGroupsAndPointer(t *testing.T) {
	mm := worldmap.DefaultMemoryMap()
	dt, err := worldmap.LoadBaseImage(mm, make([]byte, worldmap.BaseImageSize))
	if err != nil {
		t.Fatalf("LoadBaseImage: %v", err)
	}
	if err := dt.SetEnemyGroup(10, 0xAA); err != nil {
		t.Fatalf("SetEnemyGroup: %v", err)
	}
	if err := dt.SetEnemyGroup(20, 0xBB); err != nil {
		t.Fatalf("SetEnemyGroup: %v", err)
	}

	s := overworld.Shuffle{OriginalScreen: 10, NewScreen: 20}
	if err := overworld.ApplyStartScreenShuffle(dt, s); err != nil {
		t.Fatalf("ApplyStartScreenShuffle: %v", err)
	}

	orig, _ := dt.EnemyGroup(10)
	newer, _ := dt.EnemyGroup(20)
	if orig != 0xBB || newer != 0xAA {
		t.Fatalf("enemy groups not swapped: screen10=%x screen20=%x", orig, newer)
	}
	start, ok := dt.StartScreen()
	if !ok || start != 20 {
		t.Fatalf("start screen not updated: %v ok=%v", start, ok)
	}
}

func TestRNG_ChoiceIntegratesWithSortedCandidates(t *testing.T) {
	r := rng.New(123)
	s := overworld.ChooseStartScreen(0, []uint8{5, 1, 3}, func(sorted []uint8) uint8 {
		boxed := make([]int, len(sorted))
		for i, v := range sorted {
			boxed[i] = int(v)
		}
		return uint8(rng.Choice(r, boxed))
	})
	if s.NewScreen != 1 && s.NewScreen != 3 && s.NewScreen != 5 {
		t.Fatalf("picked screen %d not among candidates", s.NewScreen)
	}
}
