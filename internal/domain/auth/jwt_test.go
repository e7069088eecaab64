package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	u := NewUser("cashier@example.com", "Cashier", RoleCashier)
	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userCtx, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), userCtx.UserID)
	assert.Equal(t, "cashier@example.com", userCtx.Email)
	assert.Equal(t, RoleCashier, userCtx.Role)
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	token, err := issuer.GenerateToken(NewUser("a@example.com", "A", RoleAdmin))
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_GarbageRejected(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestUser_PasswordHashing(t *testing.T) {
	u := NewUser("user@example.com", "User", RoleCashier)

	require.NoError(t, u.SetPassword("correct-horse"))
	assert.NotEqual(t, "correct-horse", u.PasswordHash)

	assert.True(t, u.CheckPassword("correct-horse"))
	assert.False(t, u.CheckPassword("wrong-horse"))
}

func TestUser_PasswordTooShort(t *testing.T) {
	u := NewUser("user@example.com", "User", RoleCashier)
	assert.Error(t, u.SetPassword("short"))
}
