package utils

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a time-ordered UUIDv7 string, falling back to a random
// v4 UUID if the clock sequence cannot be read.
func GenerateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
