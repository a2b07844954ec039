package item

import (
	"math"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/dice"
)

// DropChance is the probability that a kill yields any item at all when no
// quality is forced.
const DropChance = 0.3

// fullTableChance is the probability that quality is drawn from the full
// table, which is the only path to an epic drop.
const fullTableChance = 0.1

// qualityWeights describes one weighted quality table.
type qualityWeight struct {
	quality Quality
	weight  int
}

// commonTable is the default common-biased quality table. Epic is absent.
var commonTable = []qualityWeight{
	{QualityPoor, 20},
	{QualityCommon, 65},
	{QualityRare, 15},
}

// fullTable includes every quality, epic included.
var fullTable = []qualityWeight{
	{QualityPoor, 10},
	{QualityCommon, 50},
	{QualityRare, 30},
	{QualityEpic, 10},
}

var namePrefixes = []string{
	"Savage", "Gleaming", "Ancient", "Grim", "Vicious",
	"Blessed", "Rusted", "Tempered", "Runed", "Forgotten",
}

var nameSuffixes = []string{
	"of the Bear", "of the Eagle", "of Embers", "of the Void",
	"of Haste", "of the Colossus", "of Whispers", "of the Deep",
}

var slotNouns = map[Slot][]string{
	SlotWeapon: {"Blade", "Axe", "Maul", "Dagger", "Claymore"},
	SlotHead:   {"Helm", "Hood", "Crown", "Visage"},
	SlotChest:  {"Breastplate", "Vest", "Hauberk", "Robe"},
	SlotLegs:   {"Greaves", "Leggings", "Kilt", "Striders"},
}

// RollOpts tunes a single loot roll.
type RollOpts struct {
	// Force skips the drop-chance gate and pins the quality.
	Force *Quality
	// Enhanced strips intellect from the rolled stats and redistributes it
	// across the other three attributes before scoring.
	Enhanced bool
}

// Generator produces randomly rolled items.
type Generator struct {
	src dice.Source
}

// NewGenerator creates a Generator drawing randomness from src.
//
// Precondition: src must be non-nil.
func NewGenerator(src dice.Source) *Generator {
	return &Generator{src: src}
}

// Roll generates an item for the target level, or nil when the drop-chance
// gate fails.
//
// Postcondition: when non-nil, the item has ReqLevel == targetLevel,
// Value == budget*10, and Score already computed. Under opts.Enhanced the
// item carries no intellect and the stripped points are fully redistributed.
func (g *Generator) Roll(targetLevel int, opts RollOpts) *Item {
	var quality Quality
	if opts.Force != nil {
		quality = *opts.Force
	} else {
		if !dice.Chance(g.src, DropChance) {
			return nil
		}
		quality = g.rollQuality()
	}

	slot := dice.Pick(g.src, AllSlots)
	budget := int(math.Ceil(float64(targetLevel) * 1.5 * float64(quality.BudgetMultiplier())))

	stats := make(map[character.Attribute]int)
	for i := 0; i < budget; i++ {
		stats[dice.Pick(g.src, character.AllAttributes)]++
	}

	it := &Item{
		ID:       dice.NewID(),
		Name:     g.composeName(slot),
		Slot:     slot,
		Quality:  quality,
		Stats:    stats,
		Value:    budget * 10,
		ReqLevel: targetLevel,
	}

	if opts.Enhanced {
		g.redistributeIntellect(it)
	}
	it.Rescore()
	return it
}

// rollQuality draws a quality from the common-biased table, or from the full
// epic-capable table on a fullTableChance roll.
func (g *Generator) rollQuality() Quality {
	table := commonTable
	if dice.Chance(g.src, fullTableChance) {
		table = fullTable
	}

	total := 0
	for _, qw := range table {
		total += qw.weight
	}
	roll := g.src.Intn(total)
	for _, qw := range table {
		roll -= qw.weight
		if roll < 0 {
			return qw.quality
		}
	}
	return table[len(table)-1].quality
}

// composeName builds a cosmetic flavor name from prefix + slot noun + suffix.
func (g *Generator) composeName(slot Slot) string {
	prefix := dice.Pick(g.src, namePrefixes)
	noun := dice.Pick(g.src, slotNouns[slot])
	suffix := dice.Pick(g.src, nameSuffixes)
	return prefix + " " + noun + " " + suffix
}

// redistributeIntellect zeroes the item's intellect bonus and re-spends it
// point by point on the other three attributes.
//
// Postcondition: stats[intellect] is absent and the total stat sum is
// unchanged.
func (g *Generator) redistributeIntellect(it *Item) {
	stripped := it.Stats[character.Intellect]
	if stripped == 0 {
		return
	}
	delete(it.Stats, character.Intellect)

	targets := []character.Attribute{character.Strength, character.Agility, character.Stamina}
	for i := 0; i < stripped; i++ {
		it.Stats[dice.Pick(g.src, targets)]++
	}
}
