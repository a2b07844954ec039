// Package progress mutates the character's experience, currency, and level
// state on combat outcomes.
package progress

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/content"
	"github.com/cory-johannsen/idlerpg/internal/game/dice"
	"github.com/cory-johannsen/idlerpg/internal/game/item"
	"github.com/cory-johannsen/idlerpg/internal/game/stats"
)

const (
	// SkillUnlockLevel is the level at which skill points begin accruing.
	SkillUnlockLevel = 10
	// TutorialKills is the kill count below which tutorial gating is active.
	TutorialKills = 3
)

// KillReward summarizes the mutations from one monster kill.
type KillReward struct {
	XP       int
	Currency int
	// Levels is the number of level-ups triggered by the kill.
	Levels int
}

// DefeatResult summarizes the punitive defeat mutations.
type DefeatResult struct {
	// ZoneID is the zone the character stands in after any regression.
	ZoneID string
	// LeveledDown is false only when the character was already level 1.
	LeveledDown bool
	// LostUnspent is true when the penalty consumed a banked attribute point.
	LostUnspent bool
	// LostAttribute names the attribute decremented when no banked point was
	// available; empty otherwise.
	LostAttribute character.Attribute
}

// Ledger applies progression rules to a single character aggregate. It is
// invoked only from the combat resolver, which serializes access.
type Ledger struct {
	char    *character.Character
	eq      *item.Equipment
	tables  *content.Tables
	src     dice.Source
	log     *zap.Logger
	narrate func(line string)
}

// NewLedger creates a Ledger over the given aggregate.
//
// Precondition: all arguments must be non-nil; narrate may be nil (no-op).
func NewLedger(c *character.Character, eq *item.Equipment, tables *content.Tables, src dice.Source, log *zap.Logger, narrate func(string)) *Ledger {
	if narrate == nil {
		narrate = func(string) {}
	}
	return &Ledger{char: c, eq: eq, tables: tables, src: src, log: log, narrate: narrate}
}

// TutorialActive reports whether spawned monsters are still forced to the
// tutorial template.
func (l *Ledger) TutorialActive() bool {
	return l.char.Kills < TutorialKills
}

// OnKill applies experience, currency, and level-up mutations for a killed
// monster. Level-up is atomic with the experience carry-over: partial updates
// are never visible.
//
// Postcondition: XP < XPToNext; XPToNext == Level*100; a level-up fully heals
// the character against the post-allocation maximum.
func (l *Ledger) OnKill(tmpl *content.MonsterTemplate) KillReward {
	xp := tmpl.XP
	currencyScale := 1
	if tmpl.Boss {
		xp *= 2
		currencyScale = 5
	}
	coins := dice.Between(l.src, 1, 5) * tmpl.Level * currencyScale

	c := l.char
	c.XP += xp
	c.Currency += coins
	c.Kills++

	l.narrate(fmt.Sprintf("%s dies. You gain %d experience and %s.", tmpl.Name, xp, dice.FormatCoins(coins)))

	reward := KillReward{XP: xp, Currency: coins}
	for c.XP >= c.XPToNext {
		c.XP -= c.XPToNext
		c.Level++
		c.XPToNext = c.Level * 100
		reward.Levels++

		l.allocateLevelPoint()
		if c.Level >= SkillUnlockLevel {
			c.SkillPoints++
		}

		d := stats.Derive(c, l.eq)
		c.SetMaxPools(d.MaxHP, d.MaxMana)
		c.HealFull()

		l.narrate(fmt.Sprintf("You reach level %d!", c.Level))
		l.log.Info("level up",
			zap.String("name", c.Name),
			zap.Int("level", c.Level),
			zap.Int("carryover_xp", c.XP),
		)
	}
	return reward
}

// allocateLevelPoint spends the level-up attribute point per the character's
// policy, or banks it under PolicyManual.
func (l *Ledger) allocateLevelPoint() {
	c := l.char
	target := c.Policy.Target(c.Level)
	if target == "" {
		c.AttributePoints++
		return
	}
	c.Attributes.Add(target, 1)
}

// OnDefeat applies the punitive defeat policy: drop one level (floor 1),
// recompute the threshold, revive to full, remove one banked attribute point
// or else one point from the highest attribute (floor 5 per attribute), and
// regress one zone when not already in the first.
//
// Precondition: zoneID must name a zone in the tables.
// Postcondition: HP == MaxHP; Level >= 1; XP < XPToNext.
func (l *Ledger) OnDefeat(zoneID string) DefeatResult {
	c := l.char
	result := DefeatResult{ZoneID: zoneID}

	if c.Level > 1 {
		c.Level--
		result.LeveledDown = true
	}
	c.XPToNext = c.Level * 100
	if c.XP >= c.XPToNext {
		c.XP = c.XPToNext - 1
	}

	if c.AttributePoints > 0 {
		c.AttributePoints--
		result.LostUnspent = true
	} else {
		highest := c.Attributes.Highest()
		if c.Attributes.Get(highest) > character.AttributeFloor {
			c.Attributes.Add(highest, -1)
			result.LostAttribute = highest
		}
	}

	if idx := l.tables.ZoneIndex(zoneID); idx > 0 {
		result.ZoneID = l.tables.Zones[idx-1].ID
	}

	d := stats.Derive(c, l.eq)
	c.SetMaxPools(d.MaxHP, d.MaxMana)
	c.HealFull()

	l.narrate("Darkness takes you. You awaken weakened, but alive.")
	l.log.Info("player defeated",
		zap.String("name", c.Name),
		zap.Int("level", c.Level),
		zap.String("zone", result.ZoneID),
	)
	return result
}
