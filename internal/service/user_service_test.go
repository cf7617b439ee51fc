package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wirawat444/web-sc-linkhub/internal/service"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.accounts.Register(ctx, "Alice", "Alice@Example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email, "email is normalised to lower case")
	assert.Empty(t, user.PasswordHash, "projections never carry the hash")

	authed, err := env.accounts.Authenticate(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "a@example.com", "password123"},
		{"empty email", "Alice", "", "password123"},
		{"bad email", "Alice", "not-an-email", "password123"},
		{"short password", "Alice", "a@example.com", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.accounts.Register(ctx, tc.userName, tc.email, tc.password)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = env.accounts.Register(ctx, "Other Alice", "alice@example.com", "password456")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = env.accounts.Authenticate(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = env.accounts.Authenticate(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
