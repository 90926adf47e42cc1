// Package itemrand is ZORA's C6 "Item Randomizer" (spec.md §4.6): it
// translates an enabled flags.Set into a pkg/solver Problem over every
// enabled worldmap.Location, solves it, and writes the result into a
// worldmap.DataTable.
//
// The Randomize entry point's shape — read configuration and graph state,
// call into the provided RNG for every placement decision, return a typed
// result or error — follows teacher's pkg/content.ContentPass.Place,
// generalized from "populate a dungeon graph with enemies/loot/puzzles"
// to "populate a fixed ROM's item slots with a solved permutation."
package itemrand

import (
	"errors"
	"fmt"
	"time"

	"github.com/zora-rando/zora/pkg/flags"
	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/rng"
	"github.com/zora-rando/zora/pkg/solver"
	"github.com/zora-rando/zora/pkg/worldmap"
)

// solveTimeout bounds a single solver attempt. The rejection-sampling
// default backend is itself capped by solver.RejectionSamplingCap
// attempts, so this is a secondary safety net against runaway wall-clock
// time on pathological inputs, not the primary termination bound.
const solveTimeout = 30 * time.Second

// ErrNoFeasibleAssignment is returned when every retry attempt fails to
// produce a solver solution, per spec.md §7.
var ErrNoFeasibleAssignment = errors.New("itemrand: no feasible assignment found")

// MaxRetries bounds how many distinct solver attempts Randomize makes
// before giving up, each with an independently derived sub-seed (spec.md
// §4.6).
const MaxRetries = 3

func init() {
	solver.RegisterDefaults[worldmap.Location, item.Kind]()
}

// Result is the outcome of one successful randomization pass: the solved
// location → item-kind assignment, and the backend that produced it (for
// diagnostics/logging).
type Result struct {
	Assignment map[worldmap.Location]item.Kind
	Backend    string
}

// Randomize derives a solver.Problem from flagSet and locations, solves
// it with the documented default backend (Rejection Sampling), making up
// to MaxRetries attempts in total, each with its own derived sub-seed,
// while the backend reports failure, and writes the accepted assignment
// into dt.
//
// locations lists every Location eligible for shuffling under flagSet
// (callers derive this set from which shuffle_* flags are enabled,
// before calling Randomize); pool lists the multiset of item.Kind values
// to distribute across them, already including flagSet.StartingItems'
// exclusions and flagSet.SkipItems' removals.
func Randomize(masterSeed uint64, flagSet *flags.Set, locations []worldmap.Location, pool []item.Kind, dt *worldmap.DataTable) (*Result, error) {
	backendName := solver.NameRejectionSampling

	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		subSeed := rng.NewSubRNG(masterSeed, fmt.Sprintf("itemrand/attempt%d", attempt), flagSet.Hash()).Seed()

		problem := buildProblem(flagSet, locations, pool)
		backend, ok := solver.Get[worldmap.Location, item.Kind](backendName)
		if !ok {
			return nil, fmt.Errorf("itemrand: backend %q not registered", backendName)
		}

		assignment, ok := backend.Solve(problem, subSeed, solveTimeout)
		if !ok {
			lastErr = fmt.Errorf("attempt %d: solver reported no solution", attempt)
			continue
		}

		for loc, kind := range assignment {
			if err := dt.SetItem(loc, item.New(kind)); err != nil {
				return nil, fmt.Errorf("writing solved assignment: %w", err)
			}
		}
		return &Result{Assignment: assignment, Backend: backendName}, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrNoFeasibleAssignment, lastErr)
}

// buildProblem translates the documented forbid/require rules (spec.md
// §4.6) into a solver.Problem over locations and pool, each rule gated
// behind its own flag's Effective state.
func buildProblem(flagSet *flags.Set, locations []worldmap.Location, pool []item.Kind) *solver.Problem[worldmap.Location, item.Kind] {
	p := solver.NewProblem[worldmap.Location, item.Kind]()
	p.AddPermutationProblem(locations, pool)

	applyOpenCaveSwordRule(p, flagSet, locations, pool)
	applyLevel9Rules(p, flagSet, locations)

	return p
}

// applyOpenCaveSwordRule implements force_sword_to_open_cave: every
// non-sword Kind is forbidden at the documented open-cave location
// (screen 0x00, slot 0 — the first cave a vanilla-layout player visits),
// and the best sword tier present in pool is required there, per spec.md
// §4.6's literal "forbid every non-sword item; require the best sword
// present" text. A no-op if the flag isn't effective, the open-cave
// location isn't in locations, or pool holds no sword Kind at all (e.g.
// major_item_shuffle covers it but shuffle_sword doesn't).
func applyOpenCaveSwordRule(p *solver.Problem[worldmap.Location, item.Kind], flagSet *flags.Set, locations []worldmap.Location, pool []item.Kind) {
	if !flagSet.Effective("force_sword_to_open_cave") {
		return
	}
	openCave := worldmap.OverworldCave(0, 0)
	present := false
	for _, loc := range locations {
		if loc == openCave {
			present = true
			break
		}
	}
	if !present {
		return
	}

	best, ok := bestSwordInPool(pool)
	if !ok {
		return
	}
	p.ForbidAll(openCave, nonSwordKinds())
	p.Require(openCave, best)
}

// nonSwordKinds lists every declared Kind other than the three sword
// tiers, for the open-cave-sword rule's Forbid list — spec.md §4.6 says
// "every non-sword item", not just major-category items.
func nonSwordKinds() []item.Kind {
	var out []item.Kind
	for _, k := range item.AllKinds() {
		if item.New(k).Class() != item.ClassSword {
			out = append(out, k)
		}
	}
	return out
}

// bestSwordInPool returns the highest-tier sword Kind present in pool,
// or false if pool holds no sword Kind.
func bestSwordInPool(pool []item.Kind) (item.Kind, bool) {
	best := item.KindNothing
	bestTier := -1
	for _, k := range pool {
		it := item.New(k)
		if it.Class() != item.ClassSword {
			continue
		}
		if it.Tier() > bestTier {
			bestTier = it.Tier()
			best = k
		}
	}
	return best, bestTier >= 0
}

// applyLevel9Rules implements the three independently-toggled level-9
// rules spec.md §4.6 documents: force_arrow_to_level_nine forbids the
// silver arrow everywhere outside level 9 (under the permutation
// bijection this forces it into level 9 by elimination, rather than
// needing a separate positive constraint);
// force_two_heart_containers_to_level_nine requires two distinct level-9
// rooms receive a heart container; allow_important_items_in_level_nine,
// default false, forbids the remaining non-required-by-elimination
// progression items (bow, ladder, raft, recorder) from level 9's rooms
// so the final dungeon can't gate its own completion on an item placed
// inside itself.
func applyLevel9Rules(p *solver.Problem[worldmap.Location, item.Kind], flagSet *flags.Set, locations []worldmap.Location) {
	var level9Rooms []worldmap.Location
	level9 := make(map[worldmap.Location]bool)
	for _, loc := range locations {
		if loc.Kind == worldmap.LocationDungeonRoom && loc.Level == 9 {
			level9Rooms = append(level9Rooms, loc)
			level9[loc] = true
		}
	}

	if flagSet.Effective("force_arrow_to_level_nine") {
		for _, loc := range locations {
			if !level9[loc] {
				p.Forbid(loc, item.KindArrowSilver)
			}
		}
	}

	if len(level9Rooms) == 0 {
		return
	}

	if flagSet.Effective("force_two_heart_containers_to_level_nine") {
		p.AtLeastCountOf(level9Rooms, item.KindHeartContainer, 2)
	}

	if !flagSet.Effective("allow_important_items_in_level_nine") {
		for _, loc := range level9Rooms {
			p.ForbidAll(loc, importantExcludedFromLevel9())
		}
	}
}

// importantExcludedFromLevel9 lists the Kinds spec.md §4.6 documents as
// excluded from level 9 placement when allow_important_items_in_level_nine
// is false.
func importantExcludedFromLevel9() []item.Kind {
	return []item.Kind{item.KindBow, item.KindLadder, item.KindRaft, item.KindRecorder}
}
