package combat

import (
	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/content"
	"github.com/cory-johannsen/idlerpg/internal/game/item"
	"github.com/cory-johannsen/idlerpg/internal/game/stats"
)

// Snapshot is the per-tick view consumed by the render boundary.
type Snapshot struct {
	// Monster is the active monster template, nil while idle.
	Monster *content.MonsterTemplate
	// MonsterHPFraction is the encounter's remaining health in [0, 1].
	MonsterHPFraction float64
	Slowed            bool

	Class character.Class
	// ModelOverride is the cosmetic model replacing the class default, empty
	// when none applies.
	ModelOverride string
	ZoneID        string

	// PlayerAttacked and MonsterAttacked are one-shot flags: they report
	// whether an attack occurred since the previous Snapshot call and are
	// reset by reading.
	PlayerAttacked  bool
	MonsterAttacked bool

	Derived stats.Derived
	HP      float64
	Mana    float64
	Rage    float64
}

// Snapshot returns the current render view and resets the one-shot attack
// flags.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		Class:           e.char.Class,
		ZoneID:          e.zoneID,
		ModelOverride:   modelOverride(e.char),
		PlayerAttacked:  e.playerAttacked,
		MonsterAttacked: e.monsterAttacked,
		Derived:         stats.Derive(e.char, e.eq),
		HP:              e.char.HP,
		Mana:            e.char.Mana,
		Rage:            e.char.Rage,
	}
	if e.enc != nil {
		s.Monster = e.enc.Template
		s.MonsterHPFraction = e.enc.HPFraction()
		s.Slowed = e.enc.Slowed
	}

	e.playerAttacked = false
	e.monsterAttacked = false
	return s
}

func modelOverride(c *character.Character) string {
	if c.Reincarnation == nil {
		return ""
	}
	return c.Reincarnation.Model
}

// Export runs fn with the aggregate references while holding the engine
// mutex, giving save externalization a consistent view. fn must copy what it
// needs and must not call back into the Engine.
func (e *Engine) Export(fn func(c *character.Character, eq *item.Equipment, inv *item.Inventory, zoneID string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.char, e.eq, e.inv, e.zoneID)
}

// ZoneID returns the current zone identifier.
func (e *Engine) ZoneID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zoneID
}

// Speed returns the current simulation speed multiplier.
func (e *Engine) Speed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.char.Speed
}
