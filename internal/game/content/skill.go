package content

import (
	"fmt"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
)

// CostType identifies the resource a skill spends.
type CostType string

const (
	// CostRage spends a flat amount of rage.
	CostRage CostType = "rage"
	// CostManaPercent spends a percentage of maximum mana.
	CostManaPercent CostType = "mana_percent"
)

// Effect identifies a skill's secondary behavior.
type Effect string

const (
	// EffectNone is a plain damage skill.
	EffectNone Effect = "none"
	// EffectSlow flips the encounter's slowed flag on use.
	EffectSlow Effect = "slow"
	// EffectExecute gates the skill to targets at or below 20% HP.
	EffectExecute Effect = "execute"
)

// SkillDef defines a learnable skill. Immutable after table construction.
type SkillDef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// Class is the owning class identifier.
	Class string `yaml:"class"`
	// Cost is a flat rage amount or a percentage of max mana per CostType.
	Cost     float64  `yaml:"cost"`
	CostType CostType `yaml:"cost_type"`
	// CooldownTicks is the number of ticks before the skill can proc again.
	CooldownTicks int `yaml:"cooldown_ticks"`
	MinLevel      int `yaml:"min_level"`
	// Multiplier is the base damage multiplier at rank 1.
	Multiplier float64 `yaml:"multiplier"`
	Effect     Effect  `yaml:"effect"`
}

// Validate checks the skill definition invariants.
//
// Postcondition: returns nil iff the class is playable, the cost type and
// effect are recognized, cost > 0, and multiplier >= 1.
func (s *SkillDef) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("skill: id must not be empty")
	}
	if s.Name == "" {
		return fmt.Errorf("skill %q: name must not be empty", s.ID)
	}
	if !character.Class(s.Class).Valid() || character.Class(s.Class) == character.ClassUninitiated {
		return fmt.Errorf("skill %q: class %q is not playable", s.ID, s.Class)
	}
	switch s.CostType {
	case CostRage, CostManaPercent:
	default:
		return fmt.Errorf("skill %q: cost_type %q is not recognized", s.ID, s.CostType)
	}
	switch s.Effect {
	case EffectNone, EffectSlow, EffectExecute:
	default:
		return fmt.Errorf("skill %q: effect %q is not recognized", s.ID, s.Effect)
	}
	if s.Cost <= 0 {
		return fmt.Errorf("skill %q: cost must be > 0, got %g", s.ID, s.Cost)
	}
	if s.CooldownTicks < 0 {
		return fmt.Errorf("skill %q: cooldown_ticks must be >= 0, got %d", s.ID, s.CooldownTicks)
	}
	if s.MinLevel < 1 {
		return fmt.Errorf("skill %q: min_level must be >= 1, got %d", s.ID, s.MinLevel)
	}
	if s.Multiplier < 1 {
		return fmt.Errorf("skill %q: multiplier must be >= 1, got %g", s.ID, s.Multiplier)
	}
	return nil
}

// RankMultiplier returns the damage multiplier at the given rank:
// base * (1 + (rank-1) * 0.1).
//
// Precondition: rank >= 1.
func (s *SkillDef) RankMultiplier(rank int) float64 {
	if rank < 1 {
		rank = 1
	}
	return s.Multiplier * (1 + float64(rank-1)*0.1)
}
