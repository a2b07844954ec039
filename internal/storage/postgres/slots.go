package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/idlerpg/internal/save"
)

// SlotStore persists save records in the save_slots table, one JSONB record
// per slot. It implements save.Store.
type SlotStore struct {
	db *pgxpool.Pool
}

var _ save.Store = (*SlotStore)(nil)

// NewSlotStore creates a SlotStore backed by the given pool.
//
// Precondition: db must be a valid, open connection pool with the save_slots
// migration applied.
func NewSlotStore(db *pgxpool.Pool) *SlotStore {
	return &SlotStore{db: db}
}

// Save upserts the full record into the slot, refreshing the timestamp.
//
// Postcondition: the slot holds exactly the passed record; partial writes are
// not possible.
func (s *SlotStore) Save(ctx context.Context, slot int, rec *save.Record) error {
	rec.SavedAt = time.Now().UTC()
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling save record: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO save_slots (slot, record, saved_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (slot) DO UPDATE
		 SET record = EXCLUDED.record, saved_at = EXCLUDED.saved_at`,
		slot, raw, rec.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting save slot %d: %w", slot, err)
	}
	return nil
}

// Load reads the slot and runs the record through the migration path.
//
// Postcondition: an absent or unreadable record returns save.ErrSlotEmpty,
// never a panic.
func (s *SlotStore) Load(ctx context.Context, slot int) (*save.Record, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT record FROM save_slots WHERE slot = $1`, slot,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, save.ErrSlotEmpty
		}
		return nil, fmt.Errorf("querying save slot %d: %w", slot, err)
	}

	rec := save.Load(raw)
	if rec == nil {
		return nil, save.ErrSlotEmpty
	}
	return rec, nil
}

// Delete empties the slot. Deleting an empty slot is a no-op.
func (s *SlotStore) Delete(ctx context.Context, slot int) error {
	if _, err := s.db.Exec(ctx,
		`DELETE FROM save_slots WHERE slot = $1`, slot,
	); err != nil {
		return fmt.Errorf("deleting save slot %d: %w", slot, err)
	}
	return nil
}
