package dice

import "github.com/google/uuid"

// NewID returns a fresh unique identifier for item instances and save records.
//
// Postcondition: Returns a non-empty UUIDv4 string.
func NewID() string {
	return uuid.NewString()
}
