package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wirawat444/web-sc-linkhub/internal/auth"
	"github.com/Wirawat444/web-sc-linkhub/internal/service"
)

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user, identity := env.registerUser(t, "Alice", "alice@example.com")

	got, err := env.profiles.GetProfile(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.Username, "username starts unset")
	assert.Empty(t, got.PasswordHash)
}

func TestGetProfileUnknownIdentity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.profiles.GetProfile(context.Background(), auth.Identity{UserID: "ghost", Email: "ghost@example.com"})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, identity := env.registerUser(t, "Alice", "alice@example.com")

	updated, err := env.profiles.UpdateProfile(ctx, identity, "Alice B", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, "alice", updated.Username, "usernames are stored lower case")

	// updating again with the same username is not a conflict
	updated, err = env.profiles.UpdateProfile(ctx, identity, "Alice C", "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice C", updated.Name)
}

func TestUpdateProfileEmptyFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, identity := env.registerUser(t, "Alice", "alice@example.com")

	for _, tc := range []struct{ name, username string }{
		{"", "alice"},
		{"Alice", ""},
		{"   ", "alice"},
	} {
		_, err := env.profiles.UpdateProfile(ctx, identity, tc.name, tc.username)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	}

	// nothing was written
	profile, err := env.profiles.GetProfile(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	assert.Empty(t, profile.Username)
}

func TestUpdateProfileUsernameConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, alice := env.registerUser(t, "Alice", "alice@example.com")
	_, bob := env.registerUser(t, "Bob", "bob@example.com")

	_, err := env.profiles.UpdateProfile(ctx, alice, "Alice", "alice")
	require.NoError(t, err)

	_, err = env.profiles.UpdateProfile(ctx, bob, "Bob", "alice")
	assert.ErrorIs(t, err, service.ErrUsernameTaken)

	// alice keeps her username, bob still has none
	aliceProfile, err := env.profiles.GetProfile(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "alice", aliceProfile.Username)

	bobProfile, err := env.profiles.GetProfile(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobProfile.Username)
}

func TestPublicProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, alice := env.registerUser(t, "Alice", "alice@example.com")

	_, err := env.profiles.UpdateProfile(ctx, alice, "Alice", "alice")
	require.NoError(t, err)

	_, err = env.linkSvc.Create(ctx, alice, "Site", "https://a.example")
	require.NoError(t, err)

	profile, err := env.profiles.Public(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.User.Name)
	assert.Empty(t, profile.User.PasswordHash)
	require.Len(t, profile.Links, 1)
	assert.Equal(t, "Site", profile.Links[0].Title)
	assert.Equal(t, "https://a.example", profile.Links[0].URL)
}

func TestPublicProfileUnknownUsername(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.profiles.Public(context.Background(), "nobody")
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	_, err = env.profiles.Public(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
