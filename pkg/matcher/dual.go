package matcher

import (
	"github.com/nikogura/archetype-match/pkg/traits"
)

// DualDisplay renders the dual role as "primary × secondary".
func DualDisplay(primary, secondary string) (display string) {
	display = primary + " × " + secondary
	return display
}

// DualConsistencyBonus counts how many of the user's top three dimensions fall in the union
// of the two archetypes' core traits, scaled to 0, 33, 67 or 100. Display only; it never
// feeds ranking.
func DualConsistencyBonus(userTraits traits.Vector, primaryCore, secondaryCore []traits.Dimension) (bonus int) {
	union := make(map[traits.Dimension]bool, len(primaryCore)+len(secondaryCore))
	for _, d := range primaryCore {
		union[d] = true
	}
	for _, d := range secondaryCore {
		union[d] = true
	}

	top := userTraits.Top(3)
	covered := 0
	for _, d := range top {
		if union[d] {
			covered++
		}
	}

	bonus = traits.RoundHalfUp(float64(covered) / 3 * 100)
	return bonus
}
