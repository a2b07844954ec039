package save

import (
	"encoding/json"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
)

// experiencedKills is the kill counter back-filled for legacy records above
// level 1, so an established character never re-enters tutorial gating.
const experiencedKills = 10

// Load parses raw save bytes into a Record.
//
// Postcondition: never panics; malformed, empty, or unnamed records return
// nil, signaling "no save".
func Load(raw []byte) *Record {
	if len(raw) == 0 {
		return nil
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil
	}
	if rec.Player.Username == "" {
		return nil
	}
	if rec.Player.Level < 1 {
		rec.Player.Level = 1
	}
	return &rec
}

// buildCharacter migrates the player record onto a freshly constructed
// default character: persisted fields overlay the defaults, then every field
// introduced after the original schema is back-filled deterministically.
func (r *Record) buildCharacter() *character.Character {
	p := r.Player

	// Start from creation defaults for the persisted name, then lift level.
	c := character.New(p.Username)
	c.Level = p.Level
	c.XPToNext = c.Level * 100

	if p.Strength != nil {
		c.Attributes.Strength = floor(*p.Strength)
	}
	if p.Agility != nil {
		c.Attributes.Agility = floor(*p.Agility)
	}
	if p.Intellect != nil {
		c.Attributes.Intellect = floor(*p.Intellect)
	}
	if p.Stamina != nil {
		c.Attributes.Stamina = floor(*p.Stamina)
	}

	// Class was added after the original schema.
	if p.Class != nil && character.Class(*p.Class).Valid() {
		c.Class = character.Class(*p.Class)
	}

	if p.AttributePoints != nil && *p.AttributePoints >= 0 {
		c.AttributePoints = *p.AttributePoints
	}
	if p.Policy != nil && character.AllocationPolicy(*p.Policy).Valid() {
		c.Policy = character.AllocationPolicy(*p.Policy)
	}

	if p.XP != nil && *p.XP >= 0 {
		c.XP = *p.XP
		if c.XP >= c.XPToNext {
			c.XP = c.XPToNext - 1
		}
	}

	// Skill points derive from level when the record predates skills.
	if p.SkillPoints != nil && *p.SkillPoints >= 0 {
		c.SkillPoints = *p.SkillPoints
	} else if c.Level >= 10 {
		c.SkillPoints = c.Level - 9
	}
	if len(p.Skills) > 0 {
		for id, rank := range p.Skills {
			if rank >= 1 {
				c.Skills[id] = rank
			}
		}
	}

	// The kill counter defaults to an "already experienced" value above
	// level 1 to avoid re-triggering tutorial gating.
	if p.Kills != nil && *p.Kills >= 0 {
		c.Kills = *p.Kills
	} else if c.Level > 1 {
		c.Kills = experiencedKills
	}

	if p.Currency != nil && *p.Currency >= 0 {
		c.Currency = *p.Currency
	}
	for id, n := range p.Consumables {
		if n > 0 {
			c.Consumables[id] = n
		}
	}
	if p.Speed != nil {
		c.SetSpeed(*p.Speed)
	}
	if p.Reincarnation != nil {
		rein := *p.Reincarnation
		c.Reincarnation = &rein
	}

	if p.Rage != nil && *p.Rage >= 0 {
		c.GainRage(*p.Rage)
	}

	// Current HP/mana overlay happens in Apply, once equipment bonuses are
	// known and the true maxima can be derived.
	return c
}

func floor(v int) int {
	if v < character.AttributeFloor {
		return character.AttributeFloor
	}
	return v
}
