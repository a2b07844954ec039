package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/item"
)

func bagItem(t *testing.T, eng *Engine, it *item.Item) {
	t.Helper()
	it.Rescore()
	require.NoError(t, eng.inv.Add(it))
}

func TestEquipFromInventory_Swap(t *testing.T) {
	c := character.New("swapper")
	c.Level = 5
	eng, _ := newTestEngine(t, 43, c, Options{})

	old := &item.Item{ID: "w-old", Name: "Rusty Blade", Slot: item.SlotWeapon,
		Quality: item.QualityPoor, Stats: map[character.Attribute]int{character.Strength: 1}}
	old.Rescore()
	_, err := eng.eq.Equip(old, c.Level)
	require.NoError(t, err)

	next := &item.Item{ID: "w-new", Name: "Keen Blade", Slot: item.SlotWeapon,
		Quality: item.QualityRare, Stats: map[character.Attribute]int{character.Strength: 5},
		ReqLevel: 4}
	bagItem(t, eng, next)

	eng.EquipFromInventory("w-new")

	require.NotNil(t, eng.eq.Get(item.SlotWeapon))
	assert.Equal(t, "w-new", eng.eq.Get(item.SlotWeapon).ID)
	require.Equal(t, 1, eng.inv.Len(), "displaced item returns to the bag")
	assert.Equal(t, "w-old", eng.inv.Items()[0].ID)
}

func TestEquipFromInventory_LevelGate(t *testing.T) {
	c := character.New("lowbie")
	eng, _ := newTestEngine(t, 47, c, Options{})

	gated := &item.Item{ID: "g-1", Name: "Master Helm", Slot: item.SlotHead,
		Quality: item.QualityEpic, Stats: map[character.Attribute]int{character.Stamina: 9},
		ReqLevel: 30}
	bagItem(t, eng, gated)

	eng.EquipFromInventory("g-1")

	assert.Nil(t, eng.eq.Get(item.SlotHead))
	assert.Equal(t, 1, eng.inv.Len(), "a gated equip leaves the bag untouched")
}

func TestSellFromInventory(t *testing.T) {
	c := character.New("vendor")
	eng, cues := newTestEngine(t, 53, c, Options{})

	it := &item.Item{ID: "s-1", Name: "Cracked Legplates", Slot: item.SlotLegs,
		Quality: item.QualityCommon, Stats: map[character.Attribute]int{character.Stamina: 2},
		Value: 40}
	bagItem(t, eng, it)

	eng.SellFromInventory("s-1")

	assert.Equal(t, 40, c.Currency)
	assert.Zero(t, eng.inv.Len())
	assert.Equal(t, 1, cues.count(CueSell))

	eng.SellFromInventory("s-1")
	assert.Equal(t, 40, c.Currency, "selling a missing item is a narrated no-op")
}

func TestAllocateAttribute(t *testing.T) {
	c := character.New("planner")
	eng, _ := newTestEngine(t, 59, c, Options{})

	eng.AllocateAttribute(character.Stamina)
	assert.Equal(t, character.AttributeFloor, c.Attributes.Stamina,
		"no banked point, no change")

	c.AttributePoints = 2
	eng.AllocateAttribute(character.Stamina)
	assert.Equal(t, character.AttributeFloor+1, c.Attributes.Stamina)
	assert.Equal(t, 1, c.AttributePoints)
	assert.Equal(t, c.Attributes.Stamina*10, c.MaxHP, "pools re-derive after allocation")
}

func TestChooseClass_Once(t *testing.T) {
	c := character.New("initiate")
	c.Level = ClassChoiceLevel
	c.XPToNext = c.Level * 100
	eng, _ := newTestEngine(t, 61, c, Options{})

	eng.ChooseClass(character.ClassWarrior)
	assert.Equal(t, character.ClassWarrior, c.Class)

	eng.ChooseClass(character.ClassSorcerer)
	assert.Equal(t, character.ClassWarrior, c.Class, "class choice is permanent")
}

func TestChooseClass_LevelGate(t *testing.T) {
	c := character.New("eager")
	c.Level = ClassChoiceLevel - 1
	c.XPToNext = c.Level * 100
	eng, _ := newTestEngine(t, 63, c, Options{})

	eng.ChooseClass(character.ClassWarrior)
	assert.Equal(t, character.ClassUninitiated, c.Class)
}

func TestChooseClass_RejectsInvalid(t *testing.T) {
	c := character.New("careful")
	c.Level = ClassChoiceLevel
	c.XPToNext = c.Level * 100
	eng, _ := newTestEngine(t, 67, c, Options{})

	eng.ChooseClass(character.Class("druid"))
	assert.Equal(t, character.ClassUninitiated, c.Class)
	eng.ChooseClass(character.ClassUninitiated)
	assert.Equal(t, character.ClassUninitiated, c.Class)
}

func TestLearnSkill(t *testing.T) {
	c := character.New("student")
	c.Class = character.ClassWarrior
	c.Level = 10
	c.XPToNext = 1000
	c.SkillPoints = 3
	eng, _ := newTestEngine(t, 71, c, Options{})

	eng.LearnSkill("heroic_strike")
	assert.Equal(t, 1, c.Skills["heroic_strike"])
	eng.LearnSkill("heroic_strike")
	assert.Equal(t, 2, c.Skills["heroic_strike"])
	assert.Equal(t, 1, c.SkillPoints)

	eng.LearnSkill("fireball")
	assert.Zero(t, c.Skills["fireball"], "cross-class skills are rejected")
	assert.Equal(t, 1, c.SkillPoints)

	c.SkillPoints = 0
	eng.LearnSkill("heroic_strike")
	assert.Equal(t, 2, c.Skills["heroic_strike"], "no points, no rank")
}

func TestRespec(t *testing.T) {
	c := character.New("fickle")
	c.Class = character.ClassSorcerer
	c.Skills["fireball"] = 3
	c.Skills["frostbolt"] = 2
	eng, _ := newTestEngine(t, 73, c, Options{})
	eng.cooldowns["fireball"] = 99

	eng.Respec()

	assert.Empty(t, c.Skills)
	assert.Equal(t, 5, c.SkillPoints, "refund equals total spent ranks")
	assert.Empty(t, eng.cooldowns, "respec clears cooldowns")

	eng.Respec()
	assert.Equal(t, 5, c.SkillPoints, "respec with nothing learned is a no-op")
}

func TestSetZone(t *testing.T) {
	c := character.New("traveler")
	c.Level = 6
	c.Kills = 10
	eng, _ := newTestEngine(t, 79, c, Options{})
	eng.Tick() // spawn something

	eng.SetZone("gloomwood")
	assert.Equal(t, "gloomwood", eng.ZoneID())
	assert.Nil(t, eng.enc, "zone travel discards the encounter")

	eng.SetZone("shattered_spire")
	assert.Equal(t, "gloomwood", eng.ZoneID(), "level gate holds")

	eng.SetZone("nowhere")
	assert.Equal(t, "gloomwood", eng.ZoneID())
}

func TestSetSpeed_Clamped(t *testing.T) {
	c := character.New("hasty")
	eng, _ := newTestEngine(t, 83, c, Options{})

	eng.SetSpeed(4)
	assert.Equal(t, 4, eng.Speed())
	eng.SetSpeed(99)
	assert.Equal(t, 10, eng.Speed())
	eng.SetSpeed(0)
	assert.Equal(t, 1, eng.Speed())
}

func TestConsumables(t *testing.T) {
	c := character.New("drinker")
	eng, _ := newTestEngine(t, 89, c, Options{})

	eng.BuyConsumable()
	assert.Zero(t, c.Consumables[potionID], "broke characters buy nothing")

	c.Currency = 60
	eng.BuyConsumable()
	eng.BuyConsumable()
	assert.Equal(t, 2, c.Consumables[potionID])
	assert.Equal(t, 10, c.Currency)

	c.SetMaxPools(200, c.MaxMana)
	c.HP = 1
	eng.UseConsumable()
	assert.Equal(t, 1.0+potionHeal, c.HP)
	assert.Equal(t, 1, c.Consumables[potionID])

	eng.UseConsumable()
	assert.NotContains(t, c.Consumables, potionID, "the stack clears at zero")

	hp := c.HP
	eng.UseConsumable()
	assert.Equal(t, hp, c.HP, "drinking with an empty stack is a no-op")
}

func TestExport_ConsistentView(t *testing.T) {
	c := character.New("exporter")
	eng, _ := newTestEngine(t, 97, c, Options{})

	var gotName, gotZone string
	eng.Export(func(ch *character.Character, _ *item.Equipment, _ *item.Inventory, zoneID string) {
		gotName = ch.Name
		gotZone = zoneID
	})
	assert.Equal(t, "exporter", gotName)
	assert.Equal(t, "verdant_fields", gotZone)
}
