// Package auth provides authentication for the API surface.
package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sellpoint/internal/core/apperror"
	"sellpoint/internal/core/id"
)

// Roles known to the platform.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User is an API account.
type User struct {
	ID           id.ID     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// NewUser creates an active user without a password.
func NewUser(email, name, role string) *User {
	return &User{
		ID:        id.New(),
		Email:     strings.ToLower(email),
		Name:      name,
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// SetPassword hashes and stores the password.
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return apperror.NewValidation("password must be at least 8 characters").
			WithDetail("field", "password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Validate checks user invariants.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return apperror.NewValidation("valid email is required").
			WithDetail("field", "email")
	}
	if u.Role != RoleAdmin && u.Role != RoleCashier {
		return apperror.NewValidation("unknown role").
			WithDetail("field", "role").
			WithDetail("value", u.Role)
	}
	return nil
}
