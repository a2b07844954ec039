// Package item defines equippable items, the four-slot equipment set, the
// bounded inventory, and randomized loot generation.
package item

import (
	"fmt"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
)

// Quality is the ordered rarity classification of an item.
type Quality string

const (
	QualityPoor   Quality = "poor"
	QualityCommon Quality = "common"
	QualityRare   Quality = "rare"
	QualityEpic   Quality = "epic"
)

// AllQualities lists every quality in ascending order.
var AllQualities = []Quality{QualityPoor, QualityCommon, QualityRare, QualityEpic}

// Weight returns the score contribution weight for the quality: 0/1/2/5.
func (q Quality) Weight() int {
	switch q {
	case QualityCommon:
		return 1
	case QualityRare:
		return 2
	case QualityEpic:
		return 5
	}
	return 0
}

// BudgetMultiplier returns the stat budget multiplier for the quality.
// Poor and common share the base multiplier.
func (q Quality) BudgetMultiplier() int {
	switch q {
	case QualityRare:
		return 2
	case QualityEpic:
		return 3
	}
	return 1
}

// Rank returns the ordinal position of the quality, poor first.
func (q Quality) Rank() int {
	for i, candidate := range AllQualities {
		if q == candidate {
			return i
		}
	}
	return 0
}

// Valid reports whether q is a recognized quality identifier.
func (q Quality) Valid() bool {
	switch q {
	case QualityPoor, QualityCommon, QualityRare, QualityEpic:
		return true
	}
	return false
}

// Slot identifies an equipment slot.
type Slot string

const (
	SlotWeapon Slot = "weapon"
	SlotHead   Slot = "head"
	SlotChest  Slot = "chest"
	SlotLegs   Slot = "legs"
)

// AllSlots lists every equipment slot in canonical order.
var AllSlots = []Slot{SlotWeapon, SlotHead, SlotChest, SlotLegs}

// Valid reports whether s is a recognized slot identifier.
func (s Slot) Valid() bool {
	switch s {
	case SlotWeapon, SlotHead, SlotChest, SlotLegs:
		return true
	}
	return false
}

// Item is an equippable item. Immutable once generated, with one exception:
// a stat-redistribution transform may rewrite Stats, and MUST call Rescore
// afterwards.
type Item struct {
	ID       string                      `json:"id"`
	Name     string                      `json:"name"`
	Slot     Slot                        `json:"slot"`
	Quality  Quality                     `json:"quality"`
	Stats    map[character.Attribute]int `json:"stats"`
	Value    int                         `json:"value"`
	ReqLevel int                         `json:"req_level"`
	Score    int                         `json:"score"`
}

// StatTotal returns the sum of all attribute bonuses on the item.
//
// Postcondition: invariant under iteration order of Stats.
func (it *Item) StatTotal() int {
	total := 0
	for _, v := range it.Stats {
		total += v
	}
	return total
}

// Rescore recomputes Score from Stats and Quality:
// 10 * sum(bonuses) + 5 * quality weight.
//
// Postcondition: Score is a pure function of Stats and Quality; calling twice
// without mutation yields the same value.
func (it *Item) Rescore() {
	it.Score = 10*it.StatTotal() + 5*it.Quality.Weight()
}

// String returns a short display form, e.g. "Grim Helm of Embers (rare, 85)".
func (it *Item) String() string {
	return fmt.Sprintf("%s (%s, %d)", it.Name, it.Quality, it.Score)
}
