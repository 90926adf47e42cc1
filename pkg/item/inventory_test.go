package item

import (
	"testing"

	"pgregory.net/rapid"
)

// TestInventory_S5_SwordProgression is spec.md §8 scenario S5 verbatim:
// add WoodSword, add MagicalSword, expect Has(WhiteSword)==true,
// Tier(Sword)==Magical tier, Count(Sword)==1.
func TestInventory_S5_SwordProgression(t *testing.T) {
	inv := NewInventory()
	inv.Add(New(KindSwordWood))
	inv.Add(New(KindSwordMagical))

	if !inv.Has(New(KindSwordWhite)) {
		t.Fatal("expected Has(WhiteSword) to be true after acquiring Magical (tier supersedes)")
	}
	if got := inv.Tier(ClassSword); got != table[KindSwordMagical].tier {
		t.Fatalf("Tier(Sword) = %d, want %d", got, table[KindSwordMagical].tier)
	}
	if got := inv.Count(KindSwordWood); got != 0 {
		t.Fatalf("Count(WoodSword) = %d, want 0 (subsumed by higher tier)", got)
	}
	if got := inv.Count(KindSwordMagical); got != 1 {
		t.Fatalf("Count(MagicalSword) = %d, want 1", got)
	}
}

func TestInventory_NonProgressiveMembership(t *testing.T) {
	inv := NewInventory()
	if inv.Has(New(KindBow)) {
		t.Fatal("fresh inventory should not have Bow")
	}
	inv.Add(New(KindBow))
	if !inv.Has(New(KindBow)) {
		t.Fatal("expected Has(Bow) after Add(Bow)")
	}
	inv.Add(New(KindRupee1))
	inv.Add(New(KindRupee1))
	if got := inv.Count(KindRupee1); got != 2 {
		t.Fatalf("Count(Rupee) = %d, want 2", got)
	}
}

func TestInventory_DowngradeIsNoop(t *testing.T) {
	inv := NewInventory()
	inv.Add(New(KindRingRed))
	inv.Add(New(KindRingBlue)) // lower tier, must not regress
	if got := inv.Tier(ClassRing); got != table[KindRingRed].tier {
		t.Fatalf("Tier(Ring) regressed to %d after adding a lower tier", got)
	}
}

// TestInventory_MonotoneProperty is a rapid property test: adding any
// sequence of items to an inventory never decreases any held tier or
// count, matching spec.md §4.3's "never decremented by validation."
func TestInventory_MonotoneProperty(t *testing.T) {
	allKinds := make([]Kind, 0, len(table))
	for k := range table {
		allKinds = append(allKinds, k)
	}

	rapid.Check(t, func(rt *rapid.T) {
		inv := NewInventory()
		n := rapid.IntRange(0, 40).Draw(rt, "n")
		prevTiers := map[Class]int{}
		for i := 0; i < n; i++ {
			idx := rapid.IntRange(0, len(allKinds)-1).Draw(rt, "idx")
			it := New(allKinds[idx])
			inv.Add(it)

			for class, prev := range prevTiers {
				if inv.Tier(class) < prev {
					rt.Fatalf("tier for %s regressed from %d to %d", class, prev, inv.Tier(class))
				}
			}
			if it.IsProgressive() {
				prevTiers[it.Class()] = inv.Tier(it.Class())
			}
		}
	})
}
