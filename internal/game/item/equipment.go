package item

import (
	"fmt"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
)

// Equipment holds the four equipment slots for a character. Each slot holds
// at most one item; a nil entry means the slot is empty.
type Equipment struct {
	Slots map[Slot]*Item `json:"slots"`
}

// NewEquipment returns an Equipment set with all slots empty.
func NewEquipment() *Equipment {
	return &Equipment{Slots: make(map[Slot]*Item)}
}

// Get returns the item in the given slot, or nil when empty.
func (e *Equipment) Get(slot Slot) *Item {
	return e.Slots[slot]
}

// Equip places it into its slot and returns the displaced item (nil if the
// slot was empty).
//
// Precondition: it must be non-nil with a valid slot.
// Postcondition: returns an error and leaves the set unchanged when
// characterLevel < it.ReqLevel.
func (e *Equipment) Equip(it *Item, characterLevel int) (*Item, error) {
	if !it.Slot.Valid() {
		return nil, fmt.Errorf("equipment: invalid slot %q", it.Slot)
	}
	if characterLevel < it.ReqLevel {
		return nil, fmt.Errorf("equipment: %s requires level %d", it.Name, it.ReqLevel)
	}
	displaced := e.Slots[it.Slot]
	e.Slots[it.Slot] = it
	return displaced, nil
}

// Unequip removes and returns the item in slot, or nil when empty.
func (e *Equipment) Unequip(slot Slot) *Item {
	it := e.Slots[slot]
	delete(e.Slots, slot)
	return it
}

// Bonus returns the summed bonus for attr across all equipped items. Items
// with no entry for attr contribute zero.
func (e *Equipment) Bonus(attr character.Attribute) int {
	total := 0
	for _, it := range e.Slots {
		if it != nil {
			total += it.Stats[attr]
		}
	}
	return total
}

// Items returns the equipped items in canonical slot order, skipping empty
// slots.
func (e *Equipment) Items() []*Item {
	var items []*Item
	for _, slot := range AllSlots {
		if it := e.Slots[slot]; it != nil {
			items = append(items, it)
		}
	}
	return items
}
