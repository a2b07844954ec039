package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/idlerpg/internal/game/item"
)

func scoredItem(id string, slot item.Slot, score, value int) *item.Item {
	return &item.Item{ID: id, Name: id, Slot: slot, Quality: item.QualityCommon, Score: score, Value: value}
}

// TestDispose_AutoEquipEmptySlot verifies an empty slot (score -1) always
// loses to a drop.
func TestDispose_AutoEquipEmptySlot(t *testing.T) {
	eq := item.NewEquipment()
	inv := item.NewInventory(5)
	drop := scoredItem("drop", item.SlotWeapon, 0, 30)

	d := item.Dispose(drop, eq, inv, true, 10)
	assert.Equal(t, item.OutcomeEquipped, d.Outcome)
	assert.Nil(t, d.Displaced)
	assert.Zero(t, d.Credit)
	assert.Same(t, drop, eq.Get(item.SlotWeapon))
}

// TestDispose_AutoEquipBetter verifies the displaced item's value is credited.
func TestDispose_AutoEquipBetter(t *testing.T) {
	eq := item.NewEquipment()
	inv := item.NewInventory(5)
	old := scoredItem("old", item.SlotHead, 40, 25)
	_, err := eq.Equip(old, 10)
	require.NoError(t, err)

	drop := scoredItem("new", item.SlotHead, 55, 60)
	d := item.Dispose(drop, eq, inv, true, 10)

	assert.Equal(t, item.OutcomeEquipped, d.Outcome)
	assert.Same(t, old, d.Displaced)
	assert.Equal(t, 25, d.Credit, "credit is the displaced item's value")
	assert.Same(t, drop, eq.Get(item.SlotHead))
}

// TestDispose_AutoSalvageWorse verifies a worse or equal drop is salvaged for
// its own value.
func TestDispose_AutoSalvageWorse(t *testing.T) {
	eq := item.NewEquipment()
	inv := item.NewInventory(5)
	old := scoredItem("old", item.SlotHead, 40, 25)
	_, err := eq.Equip(old, 10)
	require.NoError(t, err)

	for _, score := range []int{39, 40} {
		drop := scoredItem("drop", item.SlotHead, score, 70)
		d := item.Dispose(drop, eq, inv, true, 10)
		assert.Equal(t, item.OutcomeSalvaged, d.Outcome, "equal score must not swap")
		assert.Equal(t, 70, d.Credit)
		assert.Same(t, old, eq.Get(item.SlotHead))
	}
	assert.Zero(t, inv.Len(), "salvage never touches the inventory")
}

// TestDispose_ManualStash verifies the inventory path when auto-equip is off.
func TestDispose_ManualStash(t *testing.T) {
	eq := item.NewEquipment()
	inv := item.NewInventory(1)
	drop := scoredItem("drop", item.SlotLegs, 90, 40)

	d := item.Dispose(drop, eq, inv, false, 10)
	assert.Equal(t, item.OutcomeStashed, d.Outcome)
	assert.Zero(t, d.Credit)
	assert.Equal(t, 1, inv.Len())
	assert.Nil(t, eq.Get(item.SlotLegs), "manual mode never equips")
}

// TestDispose_BagFullDiscards verifies the full-inventory drop is lost, not
// queued, and the inventory is unchanged.
func TestDispose_BagFullDiscards(t *testing.T) {
	eq := item.NewEquipment()
	inv := item.NewInventory(1)
	require.NoError(t, inv.Add(scoredItem("held", item.SlotHead, 10, 5)))

	d := item.Dispose(scoredItem("lost", item.SlotHead, 99, 99), eq, inv, false, 10)
	assert.Equal(t, item.OutcomeDiscarded, d.Outcome)
	assert.Zero(t, d.Credit)
	assert.Equal(t, 1, inv.Len())
	assert.Nil(t, inv.Get("lost"))
}

// TestDispose_LevelGatedFallsBackToSalvage verifies a drop the character
// cannot wear yet is salvaged rather than equipped.
func TestDispose_LevelGatedFallsBackToSalvage(t *testing.T) {
	eq := item.NewEquipment()
	inv := item.NewInventory(5)
	drop := scoredItem("high", item.SlotWeapon, 500, 120)
	drop.ReqLevel = 30

	d := item.Dispose(drop, eq, inv, true, 10)
	assert.Equal(t, item.OutcomeSalvaged, d.Outcome)
	assert.Equal(t, 120, d.Credit)
	assert.Nil(t, eq.Get(item.SlotWeapon))
}
