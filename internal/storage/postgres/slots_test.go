package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/item"
	"github.com/cory-johannsen/idlerpg/internal/save"
	"github.com/cory-johannsen/idlerpg/internal/storage/postgres"
	"github.com/cory-johannsen/idlerpg/internal/testutil"
)

func TestSlotStore_SaveLoadDelete(t *testing.T) {
	store := postgres.NewSlotStore(testutil.NewPool(t))
	ctx := context.Background()

	_, err := store.Load(ctx, 0)
	require.ErrorIs(t, err, save.ErrSlotEmpty)

	c := character.New("Thorne")
	c.Class = character.ClassWarrior
	c.Level = 7
	c.XPToNext = 700
	c.Currency = 999
	rec := save.FromState(c, nil, nil, "gloomwood")

	require.NoError(t, store.Save(ctx, 0, rec))

	loaded, err := store.Load(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "gloomwood", loaded.ZoneID)
	assert.Equal(t, save.SchemaVersion, loaded.Version)

	got, _, _ := loaded.Apply(item.DefaultInventoryCap)
	assert.Equal(t, "Thorne", got.Name)
	assert.Equal(t, character.ClassWarrior, got.Class)
	assert.Equal(t, 7, got.Level)
	assert.Equal(t, 999, got.Currency)

	require.NoError(t, store.Delete(ctx, 0))
	_, err = store.Load(ctx, 0)
	require.ErrorIs(t, err, save.ErrSlotEmpty)

	require.NoError(t, store.Delete(ctx, 0), "deleting an empty slot is a no-op")
}

func TestSlotStore_Overwrite(t *testing.T) {
	store := postgres.NewSlotStore(testutil.NewPool(t))
	ctx := context.Background()

	first := save.FromState(character.New("First"), nil, nil, "verdant_fields")
	require.NoError(t, store.Save(ctx, 2, first))

	c := character.New("Second")
	c.Level = 3
	c.XPToNext = 300
	second := save.FromState(c, nil, nil, "verdant_fields")
	require.NoError(t, store.Save(ctx, 2, second))

	loaded, err := store.Load(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.Player.Username, "a save fully replaces the slot")
	assert.Equal(t, 3, loaded.Player.Level)
}

func TestSlotStore_SlotsAreIndependent(t *testing.T) {
	store := postgres.NewSlotStore(testutil.NewPool(t))
	ctx := context.Background()

	for slot := 0; slot < 3; slot++ {
		c := character.New("Hero")
		c.Level = slot + 1
		c.XPToNext = c.Level * 100
		require.NoError(t, store.Save(ctx, slot, save.FromState(c, nil, nil, "verdant_fields")))
	}

	require.NoError(t, store.Delete(ctx, 1))

	for _, slot := range []int{0, 2} {
		loaded, err := store.Load(ctx, slot)
		require.NoError(t, err)
		assert.Equal(t, slot+1, loaded.Player.Level)
	}
	_, err := store.Load(ctx, 1)
	assert.ErrorIs(t, err, save.ErrSlotEmpty)
}
