package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrSlotEmpty is returned when loading a slot that holds no record.
var ErrSlotEmpty = errors.New("save slot empty")

// Store persists save records by slot index. Implementations are safe for
// concurrent use.
type Store interface {
	// Save overwrites the slot with the full record. Partial or delta writes
	// are not supported.
	Save(ctx context.Context, slot int, rec *Record) error
	// Load returns the record in the slot, or ErrSlotEmpty.
	Load(ctx context.Context, slot int) (*Record, error)
	// Delete empties the slot. Deleting an empty slot is a no-op.
	Delete(ctx context.Context, slot int) error
}

// MemoryStore is an in-process Store for tests and single-session play.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[int][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[int][]byte)}
}

// Save marshals rec and overwrites the slot, refreshing the timestamp.
//
// Postcondition: the stored record's SavedAt >= the passed record's SavedAt.
func (s *MemoryStore) Save(_ context.Context, slot int, rec *Record) error {
	rec.SavedAt = time.Now().UTC()
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling save record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = raw
	return nil
}

// Load parses the slot contents through the migration path.
//
// Postcondition: a missing or malformed slot returns ErrSlotEmpty, never a
// panic.
func (s *MemoryStore) Load(_ context.Context, slot int) (*Record, error) {
	s.mu.RLock()
	raw, ok := s.slots[slot]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSlotEmpty
	}

	rec := Load(raw)
	if rec == nil {
		return nil, ErrSlotEmpty
	}
	return rec, nil
}

// Delete empties the slot.
func (s *MemoryStore) Delete(_ context.Context, slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot)
	return nil
}
