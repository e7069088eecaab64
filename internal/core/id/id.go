// Package id provides UUIDv7 identifiers for platform entities.
// Time-ordered UUIDs keep B-tree inserts local and make id order follow
// creation order, which the order store relies on for recency queries.
package id

import (
	"github.com/google/uuid"
)

// ID is the identifier type used by orders, users and audit entries.
// Outlets are the exception: they carry small stable integer ids because
// the outlet id is embedded in every order number.
type ID = uuid.UUID

// New generates a UUIDv7.
func New() ID {
	v7, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does; fall back to v4.
		return uuid.New()
	}
	return v7
}

// Parse converts a string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts a string to ID, panicking on error. Tests only.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// IsNil reports whether id is the zero UUID.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
