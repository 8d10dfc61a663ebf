package utils

import "github.com/google/uuid"

// NewOperationID returns a time-ordered UUIDv7 so journal ids sort by
// creation. A random v4 is used if v7 generation fails.
func NewOperationID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
