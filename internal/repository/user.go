package repository

import (
	"context"
	"errors"

	"github.com/Wirawat444/web-sc-linkhub/internal/domain"
)

// ErrNotFound is returned by repositories when no row matches the lookup.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update would violate a
// uniqueness constraint (email or username).
var ErrDuplicate = errors.New("duplicate value")

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email, name, username string) (*domain.User, error)
	UpdateImage(ctx context.Context, id, image string) (*domain.User, error)
}
