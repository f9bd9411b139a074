package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a fresh random UUID string. Both stores use these as
// opaque, immutable identifiers for destinations and notes.
func GenerateID() string {
	return uuid.NewString()
}
