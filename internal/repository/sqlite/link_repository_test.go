package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wirawat444/web-sc-linkhub/internal/domain"
	"github.com/Wirawat444/web-sc-linkhub/internal/repository"
	"github.com/Wirawat444/web-sc-linkhub/internal/repository/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedUser(t *testing.T, users repository.UserRepository) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         "Alice",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestLinkRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := sqlite.NewUserRepository(db)
	links := sqlite.NewLinkRepository(db)
	require.NoError(t, users.Init(ctx))
	require.NoError(t, links.Init(ctx))

	owner := seedUser(t, users)

	link := &domain.Link{
		ID:     uuid.NewString(),
		UserID: owner.ID,
		Title:  "Site",
		URL:    "https://a.example",
	}
	require.NoError(t, links.Create(ctx, link))
	assert.False(t, link.CreatedAt.IsZero())

	got, err := links.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "Site", got.Title)
	assert.Equal(t, owner.ID, got.UserID)
}

func TestLinkRepositoryNextPosition(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := sqlite.NewUserRepository(db)
	links := sqlite.NewLinkRepository(db)
	require.NoError(t, users.Init(ctx))
	require.NoError(t, links.Init(ctx))

	owner := seedUser(t, users)

	next, err := links.NextPosition(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, next, "empty list starts at 0")

	for i := 0; i < 3; i++ {
		require.NoError(t, links.Create(ctx, &domain.Link{
			ID:       uuid.NewString(),
			UserID:   owner.ID,
			Title:    "L",
			URL:      "https://a.example",
			Position: i,
		}))
	}

	next, err = links.NextPosition(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	// positions are scoped per user
	other := seedUser(t, users)
	next, err = links.NextPosition(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestLinkRepositoryListOrdersByPosition(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := sqlite.NewUserRepository(db)
	links := sqlite.NewLinkRepository(db)
	require.NoError(t, users.Init(ctx))
	require.NoError(t, links.Init(ctx))

	owner := seedUser(t, users)

	// inserted out of order on purpose
	for _, pos := range []int{2, 0, 1} {
		require.NoError(t, links.Create(ctx, &domain.Link{
			ID:       uuid.NewString(),
			UserID:   owner.ID,
			Title:    "L",
			URL:      "https://a.example",
			Position: pos,
		}))
	}

	list, err := links.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, link := range list {
		assert.Equal(t, i, link.Position)
	}
}

func TestLinkRepositoryMissingRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	links := sqlite.NewLinkRepository(db)
	require.NoError(t, sqlite.NewUserRepository(db).Init(ctx))
	require.NoError(t, links.Init(ctx))

	_, err := links.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = links.Update(ctx, "missing", "T", "https://a.example")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, links.Delete(ctx, "missing"), repository.ErrNotFound)
}
