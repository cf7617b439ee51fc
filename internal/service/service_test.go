package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Wirawat444/web-sc-linkhub/internal/auth"
	"github.com/Wirawat444/web-sc-linkhub/internal/domain"
	"github.com/Wirawat444/web-sc-linkhub/internal/repository"
	"github.com/Wirawat444/web-sc-linkhub/internal/repository/sqlite"
	"github.com/Wirawat444/web-sc-linkhub/internal/service"
)

type testEnv struct {
	users    repository.UserRepository
	links    repository.LinkRepository
	accounts service.UserService
	profiles service.ProfileService
	linkSvc  service.LinkService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "linkhub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := sqlite.NewUserRepository(db)
	links := sqlite.NewLinkRepository(db)
	require.NoError(t, users.Init(context.Background()))
	require.NoError(t, links.Init(context.Background()))

	return &testEnv{
		users:    users,
		links:    links,
		accounts: service.NewUserService(users),
		profiles: service.NewProfileService(users, links),
		linkSvc:  service.NewLinkService(users, links),
	}
}

// registerUser creates an account and returns its session identity.
func (e *testEnv) registerUser(t *testing.T, name, email string) (*domain.User, auth.Identity) {
	t.Helper()

	user, err := e.accounts.Register(context.Background(), name, email, "correct horse battery")
	require.NoError(t, err)
	return user, auth.Identity{UserID: user.ID, Email: user.Email}
}
