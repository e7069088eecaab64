package auth

import (
	"context"
	"strings"

	"sellpoint/internal/core/apperror"
	"sellpoint/pkg/logger"
)

// Service provides login and account management.
type Service struct {
	repo Repository
	jwt  *JWTService
}

// NewService creates a new auth service.
func NewService(repo Repository, jwt *JWTService) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login verifies credentials and issues an access token.
// The same generic error is returned for unknown email and wrong password
// so callers cannot probe for registered accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, apperror.NewUnauthorized("account is disabled")
	}
	if !u.CheckPassword(password) {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, err := s.jwt.GenerateToken(u)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "user logged in", "user_id", u.ID, "role", u.Role)
	return &LoginResult{Token: token, User: u}, nil
}

// Register creates a new user with the given password.
func (s *Service) Register(ctx context.Context, email, name, role, password string) (*User, error) {
	u := NewUser(email, name, role)
	if err := u.Validate(ctx); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewDuplicate("user", "email", u.Email)
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
