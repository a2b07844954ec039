// Package stats computes combat-ready derived statistics from base
// attributes, equipped items, and passive bonuses.
//
// Derivation is pure and must be re-run after any attribute or equipment
// mutation; callers never cache a Derived value across a mutation.
package stats

import (
	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/item"
)

const (
	// CritPerAgility is the critical-hit chance granted per point of agility.
	CritPerAgility = 0.01
	// DodgePerAgility is the dodge chance granted per point of agility.
	DodgePerAgility = 0.002
	// BaseCritDamage is the critical damage multiplier before overflow.
	BaseCritDamage = 2.0
)

// Bonus is a flat, unconditional attribute bonus from a passive source.
type Bonus struct {
	Attribute character.Attribute
	Amount    int
}

// Derived holds the combat statistics computed from a character's current
// attributes and gear.
type Derived struct {
	// Effective attribute values after gear, passives, and fury.
	Strength  int
	Agility   int
	Intellect int
	Stamina   int

	MaxHP       int
	MaxMana     int
	AttackPower int
	// CritChance is clamped to [0, 1]; overflow beyond 1 moves into
	// CritDamage instead of being discarded.
	CritChance float64
	CritDamage float64
	// DodgeChance is the probability of avoiding a monster hit entirely.
	DodgeChance float64
	// DPS is a display and ranking heuristic, not used in resolution.
	DPS float64
}

// Derive computes the Derived statistics for c wearing eq, plus any passive
// bonuses. Pure; no inputs are mutated.
//
// Postcondition: CritChance is in [0, 1]; CritDamage == BaseCritDamage plus
// exactly the crit chance overflow; MaxHP == stamina*10; MaxMana ==
// intellect*10; AttackPower == strength*2.
func Derive(c *character.Character, eq *item.Equipment, passives ...Bonus) Derived {
	str := c.Attributes.Strength
	agi := c.Attributes.Agility
	intel := c.Attributes.Intellect
	sta := c.Attributes.Stamina

	if eq != nil {
		str += eq.Bonus(character.Strength)
		agi += eq.Bonus(character.Agility)
		intel += eq.Bonus(character.Intellect)
		sta += eq.Bonus(character.Stamina)
	}

	for _, b := range passives {
		switch b.Attribute {
		case character.Strength:
			str += b.Amount
		case character.Agility:
			agi += b.Amount
		case character.Intellect:
			intel += b.Amount
		case character.Stamina:
			sta += b.Amount
		}
	}

	if c.FuryActive() {
		str *= 2
		agi *= 2
		intel *= 2
		sta *= 2
	}

	attackPower := str * 2

	critChance := float64(agi) * CritPerAgility
	critDamage := BaseCritDamage
	if critChance > 1 {
		critDamage += critChance - 1
		critChance = 1
	}

	return Derived{
		Strength:    str,
		Agility:     agi,
		Intellect:   intel,
		Stamina:     sta,
		MaxHP:       sta * 10,
		MaxMana:     intel * 10,
		AttackPower: attackPower,
		CritChance:  critChance,
		CritDamage:  critDamage,
		DodgeChance: float64(agi) * DodgePerAgility,
		DPS:         5 + float64(attackPower)/14,
	}
}
