package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellpoint/internal/core/apperror"
)

type fakeUserRepo struct {
	users map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", email)
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func newTestAuthService(t *testing.T) (*Service, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return NewService(repo, NewJWTService(DefaultJWTConfig("test-secret"))), repo
}

func registerUser(t *testing.T, svc *Service, email, password string) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), email, "Test User", RoleCashier, password)
	require.NoError(t, err)
	return u
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerUser(t, svc, "cashier@example.com", "password123")

	result, err := svc.Login(context.Background(), "cashier@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "cashier@example.com", result.User.Email)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerUser(t, svc, "cashier@example.com", "password123")

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "password123")
	_, errWrongPw := svc.Login(context.Background(), "cashier@example.com", "wrong-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)

	// Identical messages so callers cannot probe for registered accounts.
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, repo := newTestAuthService(t)
	u := registerUser(t, svc, "cashier@example.com", "password123")

	u.IsActive = false
	repo.users[u.Email] = u

	_, err := svc.Login(context.Background(), "cashier@example.com", "password123")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerUser(t, svc, "cashier@example.com", "password123")

	_, err := svc.Register(context.Background(), "cashier@example.com", "Another", RoleCashier, "password456")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}
