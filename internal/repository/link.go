package repository

import (
	"context"

	"github.com/Wirawat444/web-sc-linkhub/internal/domain"
)

// LinkRepository exposes persistence operations for Link entities.
type LinkRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, link *domain.Link) error
	Get(ctx context.Context, id string) (*domain.Link, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Link, error)
	Update(ctx context.Context, id, title, url string) (*domain.Link, error)
	Delete(ctx context.Context, id string) error
	NextPosition(ctx context.Context, userID string) (int, error)
}
