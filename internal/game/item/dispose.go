package item

import "errors"

// Outcome describes what happened to a dropped item.
type Outcome string

const (
	// OutcomeEquipped means the drop replaced the equipped item in its slot.
	OutcomeEquipped Outcome = "equipped"
	// OutcomeSalvaged means the drop was auto-sold for its value.
	OutcomeSalvaged Outcome = "salvaged"
	// OutcomeStashed means the drop was placed in the inventory.
	OutcomeStashed Outcome = "stashed"
	// OutcomeDiscarded means the inventory was full and the drop was lost.
	OutcomeDiscarded Outcome = "discarded"
)

// Disposition is the result of routing one dropped item.
type Disposition struct {
	Outcome Outcome
	// Displaced is the previously equipped item returned to the economy on
	// OutcomeEquipped, nil otherwise.
	Displaced *Item
	// Credit is the currency to award (value of the displaced or salvaged
	// item).
	Credit int
}

// Dispose routes a freshly dropped item per the auto-loot policy.
//
// With autoEquip enabled the drop is compared by score against the equipped
// item in its slot (an empty slot scores -1): a strictly better drop is
// equipped and the displaced item's value credited; otherwise the drop itself
// is salvaged for its value. With autoEquip disabled the drop goes to the
// inventory, or is discarded with OutcomeDiscarded when the inventory is
// full.
//
// Precondition: it, eq, and inv must be non-nil.
// Postcondition: exactly one of equip/stash/salvage/discard occurred; on
// OutcomeDiscarded the inventory is unchanged.
func Dispose(it *Item, eq *Equipment, inv *Inventory, autoEquip bool, characterLevel int) Disposition {
	if !autoEquip {
		if err := inv.Add(it); err != nil {
			if errors.Is(err, ErrInventoryFull) {
				return Disposition{Outcome: OutcomeDiscarded}
			}
			return Disposition{Outcome: OutcomeDiscarded}
		}
		return Disposition{Outcome: OutcomeStashed}
	}

	currentScore := -1
	if current := eq.Get(it.Slot); current != nil {
		currentScore = current.Score
	}

	if it.Score > currentScore {
		displaced, err := eq.Equip(it, characterLevel)
		if err == nil {
			credit := 0
			if displaced != nil {
				credit = displaced.Value
			}
			return Disposition{Outcome: OutcomeEquipped, Displaced: displaced, Credit: credit}
		}
		// Level-gated: fall through to salvage.
	}
	return Disposition{Outcome: OutcomeSalvaged, Credit: it.Value}
}
