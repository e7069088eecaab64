package auth

import (
	"context"
)

// Repository defines the interface for user persistence.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *User) error

	// GetByEmail retrieves a user by email (case-insensitive).
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
