package overworld

import (
	"fmt"

	"github.com/zora-rando/zora/pkg/worldmap"
)

// ApplyStartScreenShuffle writes s into dt: the new spawn screen's enemy
// group is swapped with the original spawn screen's (so a screen that
// used to be empty enough to host Link doesn't inherit an enemy group
// nobody placed there on purpose), and the start-screen pointer itself is
// updated, per spec.md §4.7. Compass pointer tables are not written.
func ApplyStartScreenShuffle(dt *worldmap.DataTable, s Shuffle) error {
	originalGroup, ok := dt.EnemyGroup(s.OriginalScreen)
	if !ok {
		return fmt.Errorf("overworld: enemy_groups region undeclared")
	}
	newGroup, ok := dt.EnemyGroup(s.NewScreen)
	if !ok {
		return fmt.Errorf("overworld: enemy_groups region undeclared")
	}

	if err := dt.SetEnemyGroup(s.OriginalScreen, newGroup); err != nil {
		return fmt.Errorf("swapping enemy group at original screen: %w", err)
	}
	if err := dt.SetEnemyGroup(s.NewScreen, originalGroup); err != nil {
		return fmt.Errorf("swapping enemy group at new screen: %w", err)
	}
	if err := dt.SetStartScreen(s.NewScreen); err != nil {
		return fmt.Errorf("updating start screen pointer: %w", err)
	}
	return nil
}
