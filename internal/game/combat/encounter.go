// Package combat implements the per-tick combat state machine driving the
// idle simulation.
package combat

import "github.com/cory-johannsen/idlerpg/internal/game/content"

// bossHPMultiplier scales a boss template's health pool on spawn.
const bossHPMultiplier = 3

// Encounter is the transient pairing of the player against one live monster
// instance. Alive only between spawn and resolution.
type Encounter struct {
	Template *content.MonsterTemplate
	HP       int
	MaxHP    int
	// Slowed gives the monster a 50% chance to skip its action each tick.
	Slowed bool
}

// newEncounter spawns a live monster from tmpl, tripling the health pool for
// bosses.
func newEncounter(tmpl *content.MonsterTemplate) *Encounter {
	hp := tmpl.MaxHP
	if tmpl.Boss {
		hp *= bossHPMultiplier
	}
	return &Encounter{Template: tmpl, HP: hp, MaxHP: hp}
}

// HPFraction returns the monster's remaining health fraction in [0, 1].
func (e *Encounter) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	frac := float64(e.HP) / float64(e.MaxHP)
	if frac < 0 {
		return 0
	}
	return frac
}

// Dead reports whether the monster's HP has reached 0.
func (e *Encounter) Dead() bool {
	return e.HP <= 0
}
