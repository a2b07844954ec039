package item

import (
	"errors"
	"fmt"
)

// DefaultInventoryCap is the default maximum number of items an Inventory
// holds.
const DefaultInventoryCap = 24

// ErrInventoryFull is returned when an insertion would exceed the capacity.
var ErrInventoryFull = errors.New("inventory full")

// Inventory is an ordered, bounded collection of items.
//
// Invariant: len(items) <= cap at all times; a failed Add leaves the
// inventory unchanged.
type Inventory struct {
	cap   int
	items []*Item
}

// NewInventory creates an empty Inventory with the given capacity.
//
// Precondition: capacity > 0.
func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultInventoryCap
	}
	return &Inventory{cap: capacity}
}

// Cap returns the maximum item count.
func (inv *Inventory) Cap() int {
	return inv.cap
}

// Len returns the current item count.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns the items in insertion order. The slice is shared; callers
// must not mutate it.
func (inv *Inventory) Items() []*Item {
	return inv.items
}

// Add appends it to the inventory.
//
// Postcondition: returns ErrInventoryFull and leaves the inventory unchanged
// when at capacity.
func (inv *Inventory) Add(it *Item) error {
	if len(inv.items) >= inv.cap {
		return ErrInventoryFull
	}
	inv.items = append(inv.items, it)
	return nil
}

// Remove deletes and returns the item with the given ID, preserving order of
// the rest.
//
// Postcondition: returns an error when no item with id exists.
func (inv *Inventory) Remove(id string) (*Item, error) {
	for i, it := range inv.items {
		if it.ID == id {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it, nil
		}
	}
	return nil, fmt.Errorf("inventory: no item %q", id)
}

// Get returns the item with the given ID, or nil when absent.
func (inv *Inventory) Get(id string) *Item {
	for _, it := range inv.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Restore replaces the inventory contents, truncating to capacity. Used by
// save loading.
//
// Postcondition: Len() <= Cap().
func (inv *Inventory) Restore(items []*Item) {
	if len(items) > inv.cap {
		items = items[:inv.cap]
	}
	inv.items = append([]*Item(nil), items...)
}
