package model

import "github.com/google/uuid"

// newID creates a new UUID string.
func newID() string {
	return uuid.New().String()
}
