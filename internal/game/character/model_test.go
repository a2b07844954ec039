package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
)

// TestNew_StartingValues verifies creation defaults and invariants.
func TestNew_StartingValues(t *testing.T) {
	c := character.New("Aldric")

	assert.Equal(t, "Aldric", c.Name)
	assert.Equal(t, character.ClassUninitiated, c.Class)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 100, c.XPToNext)
	assert.Equal(t, 1, c.Speed)

	for _, attr := range character.AllAttributes {
		assert.Equal(t, character.AttributeFloor, c.Attributes.Get(attr))
	}
	assert.Equal(t, 50, c.MaxHP)
	assert.Equal(t, float64(50), c.HP)
	assert.Equal(t, 50, c.MaxMana)
	assert.Equal(t, float64(50), c.Mana)
	assert.Zero(t, c.Rage)
	require.NotNil(t, c.Skills)
	require.NotNil(t, c.Consumables)
	assert.Nil(t, c.Reincarnation, "prestige subsystem is absent by default")
}

// TestAttributes_AddFloor verifies the AttributeFloor clamp.
func TestAttributes_AddFloor(t *testing.T) {
	a := character.Attributes{Strength: 10, Agility: 5, Intellect: 5, Stamina: 5}
	a.Add(character.Strength, -20)
	assert.Equal(t, character.AttributeFloor, a.Strength, "attributes never fall below the floor")

	a.Add(character.Agility, 3)
	assert.Equal(t, 8, a.Agility)
}

// TestAttributes_Highest verifies tie-breaking in canonical order.
func TestAttributes_Highest(t *testing.T) {
	tests := []struct {
		name string
		a    character.Attributes
		want character.Attribute
	}{
		{"strength leads", character.Attributes{Strength: 9, Agility: 5, Intellect: 5, Stamina: 5}, character.Strength},
		{"stamina leads", character.Attributes{Strength: 5, Agility: 5, Intellect: 5, Stamina: 9}, character.Stamina},
		{"tie resolves to strength", character.Attributes{Strength: 7, Agility: 7, Intellect: 7, Stamina: 7}, character.Strength},
		{"agility over later tie", character.Attributes{Strength: 5, Agility: 8, Intellect: 8, Stamina: 8}, character.Agility},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Highest())
		})
	}
}

// TestPools_Clamping verifies the HP/mana/rage invariants under arbitrary
// mutation sequences.
func TestPools_Clamping(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := character.New("prop")
		c.SetMaxPools(rapid.IntRange(0, 500).Draw(rt, "maxHP"), rapid.IntRange(0, 500).Draw(rt, "maxMana"))

		ops := rapid.IntRange(1, 50).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 5).Draw(rt, "op") {
			case 0:
				c.TakeDamage(rapid.IntRange(0, 200).Draw(rt, "dmg"))
			case 1:
				c.Heal(float64(rapid.IntRange(0, 200).Draw(rt, "heal")))
			case 2:
				c.GainMana(float64(rapid.IntRange(0, 200).Draw(rt, "mana")))
			case 3:
				c.SpendMana(float64(rapid.IntRange(0, 200).Draw(rt, "spend")))
			case 4:
				c.GainRage(float64(rapid.IntRange(0, 200).Draw(rt, "rage")))
			case 5:
				c.DecayRage(float64(rapid.IntRange(0, 200).Draw(rt, "decay")))
			}

			assert.GreaterOrEqual(rt, c.HP, 0.0)
			assert.LessOrEqual(rt, c.HP, float64(c.MaxHP))
			assert.GreaterOrEqual(rt, c.Mana, 0.0)
			assert.LessOrEqual(rt, c.Mana, float64(c.MaxMana))
			assert.GreaterOrEqual(rt, c.Rage, 0.0)
			assert.LessOrEqual(rt, c.Rage, 100.0)
		}
	})
}

// TestSpendMana_Insufficient verifies spend failure leaves state unchanged.
func TestSpendMana_Insufficient(t *testing.T) {
	c := character.New("caster")
	c.Mana = 10

	ok := c.SpendMana(11)
	assert.False(t, ok)
	assert.Equal(t, float64(10), c.Mana, "failed spend must not mutate mana")

	ok = c.SpendMana(10)
	assert.True(t, ok)
	assert.Zero(t, c.Mana)
}

// TestSpendRage_Insufficient verifies spend failure leaves state unchanged.
func TestSpendRage_Insufficient(t *testing.T) {
	c := character.New("bruiser")
	c.GainRage(30)

	assert.False(t, c.SpendRage(31))
	assert.Equal(t, float64(30), c.Rage)
	assert.True(t, c.SpendRage(30))
	assert.Zero(t, c.Rage)
}

// TestSetMaxPools_Reclamps verifies shrinking the ceiling pulls pools down.
func TestSetMaxPools_Reclamps(t *testing.T) {
	c := character.New("shrink")
	c.SetMaxPools(100, 100)
	c.HealFull()
	c.GainMana(100)

	c.SetMaxPools(40, 30)
	assert.Equal(t, float64(40), c.HP)
	assert.Equal(t, float64(30), c.Mana)
}

// TestSetSpeed_Bounds verifies the [1, 10] clamp.
func TestSetSpeed_Bounds(t *testing.T) {
	c := character.New("speedy")
	c.SetSpeed(0)
	assert.Equal(t, 1, c.Speed)
	c.SetSpeed(7)
	assert.Equal(t, 7, c.Speed)
	c.SetSpeed(99)
	assert.Equal(t, 10, c.Speed)
}

// TestClassResourceModel verifies per-class resource flags and regen factors.
func TestClassResourceModel(t *testing.T) {
	assert.True(t, character.ClassWarrior.UsesRage())
	assert.False(t, character.ClassWarrior.UsesMana())
	assert.True(t, character.ClassSorcerer.UsesMana())
	assert.True(t, character.ClassShadowblade.UsesMana())
	assert.False(t, character.ClassUninitiated.UsesMana())

	assert.Equal(t, 0.1, character.ClassSorcerer.ManaRegenFactor())
	assert.Equal(t, 0.1, character.ClassShadowblade.ManaRegenFactor())
	assert.Zero(t, character.ClassWarrior.ManaRegenFactor())
}

// TestAllocationPolicy_Target verifies fixed and parity-keyed targeting.
func TestAllocationPolicy_Target(t *testing.T) {
	tests := []struct {
		policy character.AllocationPolicy
		level  int
		want   character.Attribute
	}{
		{character.PolicyManual, 4, ""},
		{character.PolicyStrength, 9, character.Strength},
		{character.PolicyIntellect, 2, character.Intellect},
		{character.PolicyStrStam, 4, character.Strength},
		{character.PolicyStrStam, 5, character.Stamina},
		{character.PolicyAgiStam, 6, character.Agility},
		{character.PolicyAgiStam, 7, character.Stamina},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.policy.Target(tt.level),
			"policy %s at level %d", tt.policy, tt.level)
	}
}

// TestFuryActive verifies the optional subsystem accessor.
func TestFuryActive(t *testing.T) {
	c := character.New("reborn")
	assert.False(t, c.FuryActive())

	c.Reincarnation = &character.Reincarnation{Count: 1, FuryActive: true}
	assert.True(t, c.FuryActive())

	c.Reincarnation.FuryActive = false
	assert.False(t, c.FuryActive())
}
