// Package save defines the versioned save record, its migration rules, and
// the slot store contract.
package save

import (
	"time"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/item"
	"github.com/cory-johannsen/idlerpg/internal/game/stats"
)

// SchemaVersion is the current save record schema version.
const SchemaVersion = 3

// PlayerRecord is the persisted character state. Pointer fields distinguish
// "absent in an older record" from zero values during migration.
type PlayerRecord struct {
	Username string `json:"username"`
	Level    int    `json:"level"`

	Class           *string                     `json:"class,omitempty"`
	Strength        *int                        `json:"strength,omitempty"`
	Agility         *int                        `json:"agility,omitempty"`
	Intellect       *int                        `json:"intellect,omitempty"`
	Stamina         *int                        `json:"stamina,omitempty"`
	AttributePoints *int                        `json:"attribute_points,omitempty"`
	Policy          *string                     `json:"policy,omitempty"`
	HP              *float64                    `json:"hp,omitempty"`
	Mana            *float64                    `json:"mana,omitempty"`
	Rage            *float64                    `json:"rage,omitempty"`
	XP              *int                        `json:"xp,omitempty"`
	SkillPoints     *int                        `json:"skill_points,omitempty"`
	Skills          map[string]int              `json:"skills,omitempty"`
	Kills           *int                        `json:"kills,omitempty"`
	Currency        *int                        `json:"currency,omitempty"`
	Consumables     map[string]int              `json:"consumables,omitempty"`
	Speed           *int                        `json:"speed,omitempty"`
	Reincarnation   *character.Reincarnation    `json:"reincarnation,omitempty"`
}

// Record is the full save snapshot written to a slot.
type Record struct {
	Version   int                     `json:"version"`
	Player    PlayerRecord            `json:"player"`
	Equipment map[item.Slot]*item.Item `json:"equipment,omitempty"`
	Inventory []*item.Item            `json:"inventory,omitempty"`
	ZoneID    string                  `json:"zone_id,omitempty"`
	SavedAt   time.Time               `json:"saved_at"`
}

// FromState snapshots the live aggregate into a Record with a fresh
// timestamp.
//
// Precondition: c must be non-nil; eq and inv may be nil (stored empty).
func FromState(c *character.Character, eq *item.Equipment, inv *item.Inventory, zoneID string) *Record {
	rec := &Record{
		Version: SchemaVersion,
		Player: PlayerRecord{
			Username:        c.Name,
			Level:           c.Level,
			Class:           ptr(string(c.Class)),
			Strength:        ptr(c.Attributes.Strength),
			Agility:         ptr(c.Attributes.Agility),
			Intellect:       ptr(c.Attributes.Intellect),
			Stamina:         ptr(c.Attributes.Stamina),
			AttributePoints: ptr(c.AttributePoints),
			Policy:          ptr(string(c.Policy)),
			HP:              ptr(c.HP),
			Mana:            ptr(c.Mana),
			Rage:            ptr(c.Rage),
			XP:              ptr(c.XP),
			SkillPoints:     ptr(c.SkillPoints),
			Skills:          copyIntMap(c.Skills),
			Kills:           ptr(c.Kills),
			Currency:        ptr(c.Currency),
			Consumables:     copyIntMap(c.Consumables),
			Speed:           ptr(c.Speed),
		},
		ZoneID:  zoneID,
		SavedAt: time.Now().UTC(),
	}
	if c.Reincarnation != nil {
		r := *c.Reincarnation
		rec.Player.Reincarnation = &r
	}

	if eq != nil {
		rec.Equipment = make(map[item.Slot]*item.Item)
		for _, it := range eq.Items() {
			rec.Equipment[it.Slot] = it
		}
	}
	if inv != nil {
		rec.Inventory = append([]*item.Item(nil), inv.Items()...)
	}
	return rec
}

// Apply restores the record into a live aggregate: a migrated character plus
// equipment and inventory structures.
//
// Postcondition: the returned character has every field populated (migration
// defaults applied); equipment and inventory are empty when the record holds
// none.
func (r *Record) Apply(inventoryCap int) (*character.Character, *item.Equipment, *item.Inventory) {
	c := r.buildCharacter()

	eq := item.NewEquipment()
	for _, it := range r.Equipment {
		if it == nil {
			continue
		}
		it.Rescore()
		// Persisted gear predates the level check; equip unconditionally.
		eq.Slots[it.Slot] = it
	}

	inv := item.NewInventory(inventoryCap)
	for _, it := range r.Inventory {
		if it == nil {
			continue
		}
		it.Rescore()
		if err := inv.Add(it); err != nil {
			break
		}
	}

	// Derive the true pool maxima with gear bonuses, then overlay the
	// persisted current values under the clamp. Absent values (legacy
	// records) restore to full.
	d := stats.Derive(c, eq)
	c.SetMaxPools(d.MaxHP, d.MaxMana)
	c.HealFull()
	c.Mana = float64(c.MaxMana)
	if r.Player.HP != nil && *r.Player.HP >= 0 {
		c.HP = 0
		c.Heal(*r.Player.HP)
	}
	if r.Player.Mana != nil && *r.Player.Mana >= 0 {
		c.Mana = 0
		c.GainMana(*r.Player.Mana)
	}
	return c, eq, inv
}

func ptr[T any](v T) *T {
	return &v
}

func copyIntMap(m map[string]int) map[string]int {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
