package combat

import (
	"fmt"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/dice"
	"github.com/cory-johannsen/idlerpg/internal/game/stats"
)

// Consumable prices and effects. The vendor stock is a closed set.
const (
	potionID    = "healing_potion"
	potionPrice = 25
	potionHeal  = 50
)

// EquipFromInventory moves the identified item from the inventory into its
// slot, returning the displaced item (if any) to the inventory.
//
// Postcondition: a level-gated or unknown item leaves all state unchanged and
// produces one narrative line; the swap never overflows the inventory because
// the equipped item vacates a slot first.
func (e *Engine) EquipFromInventory(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	it := e.inv.Get(id)
	if it == nil {
		e.addNarrative("That item is gone.")
		return
	}
	if e.char.Level < it.ReqLevel {
		e.addNarrative(fmt.Sprintf("You must reach level %d to equip %s.", it.ReqLevel, it.Name))
		return
	}

	if _, err := e.inv.Remove(id); err != nil {
		return
	}
	displaced, err := e.eq.Equip(it, e.char.Level)
	if err != nil {
		// Level gate already checked; restore on any other failure.
		_ = e.inv.Add(it)
		return
	}
	if displaced != nil {
		_ = e.inv.Add(displaced)
	}

	d := stats.Derive(e.char, e.eq)
	e.char.SetMaxPools(d.MaxHP, d.MaxMana)
	e.cues.Play(CueClick)
	e.addNarrative(fmt.Sprintf("You equip %s.", it))
}

// SellFromInventory sells the identified item for its currency value.
func (e *Engine) SellFromInventory(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	it, err := e.inv.Remove(id)
	if err != nil {
		e.addNarrative("That item is gone.")
		return
	}
	e.char.Currency += it.Value
	e.cues.Play(CueSell)
	e.addNarrative(fmt.Sprintf("Sold %s for %s.", it.Name, dice.FormatCoins(it.Value)))
}

// AllocateAttribute spends one banked attribute point on attr.
//
// Postcondition: without a banked point, no state mutates and one narrative
// line is produced.
func (e *Engine) AllocateAttribute(attr character.Attribute) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.char.AttributePoints <= 0 {
		e.addNarrative("No attribute points to spend.")
		return
	}
	e.char.AttributePoints--
	e.char.Attributes.Add(attr, 1)

	d := stats.Derive(e.char, e.eq)
	e.char.SetMaxPools(d.MaxHP, d.MaxMana)
	e.cues.Play(CueClick)
}

// SetPolicy selects the auto-allocation policy for future level-ups.
func (e *Engine) SetPolicy(policy character.AllocationPolicy) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !policy.Valid() {
		return
	}
	e.char.Policy = policy
}

// ClassChoiceLevel is the level at which a class may be chosen.
const ClassChoiceLevel = 5

// ChooseClass commits the character to a class. Only valid while still
// uninitiated and at or above the choice level.
func (e *Engine) ChooseClass(class character.Class) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.char.Class != character.ClassUninitiated {
		e.addNarrative("Your path is already chosen.")
		return
	}
	if e.char.Level < ClassChoiceLevel {
		e.addNarrative(fmt.Sprintf("Choosing a path requires level %d.", ClassChoiceLevel))
		return
	}
	if !class.Valid() || class == character.ClassUninitiated {
		return
	}
	e.char.Class = class
	e.cues.Play(CueGong)
	e.addNarrative(fmt.Sprintf("You walk the path of the %s.", class))
}

// LearnSkill spends one skill point to learn the identified skill or raise
// its rank by one.
//
// Postcondition: rejections (unknown skill, wrong class, level too low, no
// points) leave state unchanged and narrate.
func (e *Engine) LearnSkill(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	def := e.tables.SkillByID(id)
	if def == nil {
		return
	}
	if def.Class != string(e.char.Class) {
		e.addNarrative(fmt.Sprintf("%s is not yours to learn.", def.Name))
		return
	}
	if e.char.Level < def.MinLevel {
		e.addNarrative(fmt.Sprintf("%s requires level %d.", def.Name, def.MinLevel))
		return
	}
	if e.char.SkillPoints <= 0 {
		e.addNarrative("No skill points to spend.")
		return
	}

	e.char.SkillPoints--
	e.char.Skills[id]++
	e.cues.Play(CueClick)
	e.addNarrative(fmt.Sprintf("%s is now rank %d.", def.Name, e.char.Skills[id]))
}

// Respec refunds every learned skill rank as skill points and clears the
// skill book.
//
// Postcondition: sum of refunded ranks equals the increase in SkillPoints.
func (e *Engine) Respec() {
	e.mu.Lock()
	defer e.mu.Unlock()

	refunded := 0
	for id, rank := range e.char.Skills {
		refunded += rank
		delete(e.char.Skills, id)
	}
	if refunded == 0 {
		return
	}
	e.char.SkillPoints += refunded
	e.cooldowns = make(map[string]uint64)
	e.addNarrative(fmt.Sprintf("You forget everything. %d skill points refunded.", refunded))
}

// SetZone moves the character to the identified zone, discarding any
// in-flight encounter.
//
// Postcondition: a level-gated or unknown zone leaves the current zone and
// encounter unchanged.
func (e *Engine) SetZone(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone := e.tables.ZoneByID(id)
	if zone == nil {
		return
	}
	if e.char.Level < zone.MinLevel {
		e.addNarrative(fmt.Sprintf("%s requires level %d.", zone.Name, zone.MinLevel))
		return
	}
	e.zoneID = id
	e.enc = nil
	e.addNarrative(fmt.Sprintf("You travel to %s.", zone.Name))
}

// AbandonEncounter discards the in-flight encounter without resolution. Used
// when exiting to the slot-select screen.
func (e *Engine) AbandonEncounter() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enc = nil
}

// SetSpeed sets the game speed multiplier, clamped to [1, 10].
func (e *Engine) SetSpeed(speed int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.char.SetSpeed(speed)
}

// BuyConsumable purchases one healing potion if affordable.
//
// Postcondition: insufficient currency leaves state unchanged and narrates.
func (e *Engine) BuyConsumable() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.char.Currency < potionPrice {
		e.addNarrative(fmt.Sprintf("A healing potion costs %s.", dice.FormatCoins(potionPrice)))
		return
	}
	e.char.Currency -= potionPrice
	e.char.Consumables[potionID]++
	e.cues.Play(CueSell)
	e.addNarrative("You buy a healing potion.")
}

// UseConsumable drinks one healing potion if held.
func (e *Engine) UseConsumable() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.char.Consumables[potionID] <= 0 {
		e.addNarrative("You have no potions left.")
		return
	}
	e.char.Consumables[potionID]--
	if e.char.Consumables[potionID] == 0 {
		delete(e.char.Consumables, potionID)
	}
	e.char.Heal(potionHeal)
	e.cues.Play(CueClick)
	e.addNarrative("You drink a healing potion.")
}
