package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Wirawat444/web-sc-linkhub/internal/domain"
	"github.com/Wirawat444/web-sc-linkhub/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	username TEXT UNIQUE,
	image TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, name, email, username, image, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Name,
		user.Email,
		usernameValue(user.Username),
		user.Image,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE email = ?`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE username = ?`, username)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email, name, username string) (*domain.User, error) {
	_, err := r.db.ExecContext(ctx, `
UPDATE users SET name = ?, username = ?, updated_at = ?
WHERE email = ?`,
		name,
		usernameValue(username),
		time.Now().UTC(),
		email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update profile: %w", repository.ErrDuplicate)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return r.GetByEmail(ctx, email)
}

func (r *UserRepository) UpdateImage(ctx context.Context, id, image string) (*domain.User, error) {
	_, err := r.db.ExecContext(ctx, `
UPDATE users SET image = ?, updated_at = ?
WHERE id = ?`,
		image,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("update image: %w", err)
	}
	return r.GetByID(ctx, id)
}

const selectUser = `
SELECT id, name, email, COALESCE(username, ''), image, password_hash, created_at, updated_at
FROM users
`

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Username,
		&user.Image,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

// usernameValue maps the empty username to NULL so the UNIQUE index
// only applies once a username has been claimed.
func usernameValue(username string) any {
	if username == "" {
		return nil
	}
	return username
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
