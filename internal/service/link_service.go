package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/Wirawat444/web-sc-linkhub/internal/auth"
	"github.com/Wirawat444/web-sc-linkhub/internal/domain"
	"github.com/Wirawat444/web-sc-linkhub/internal/repository"
)

// LinkService manages a user's links. The owner is always resolved
// from the authenticated identity; mutations check ownership against
// the stored record before touching it.
type LinkService interface {
	List(ctx context.Context, identity auth.Identity) ([]domain.Link, error)
	Create(ctx context.Context, identity auth.Identity, title, rawURL string) (*domain.Link, error)
	Update(ctx context.Context, identity auth.Identity, linkID, title, rawURL string) (*domain.Link, error)
	Delete(ctx context.Context, identity auth.Identity, linkID string) error
}

type linkService struct {
	users repository.UserRepository
	links repository.LinkRepository
}

func NewLinkService(users repository.UserRepository, links repository.LinkRepository) LinkService {
	return &linkService{users: users, links: links}
}

func (s *linkService) List(ctx context.Context, identity auth.Identity) ([]domain.Link, error) {
	owner, err := s.resolveOwner(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.links.ListByUser(ctx, owner.ID)
}

func (s *linkService) Create(ctx context.Context, identity auth.Identity, title, rawURL string) (*domain.Link, error) {
	title, rawURL, err := validateLinkFields(title, rawURL)
	if err != nil {
		return nil, err
	}

	owner, err := s.resolveOwner(ctx, identity)
	if err != nil {
		return nil, err
	}

	position, err := s.links.NextPosition(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	link := &domain.Link{
		ID:       uuid.NewString(),
		UserID:   owner.ID,
		Title:    title,
		URL:      rawURL,
		Position: position,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *linkService) Update(ctx context.Context, identity auth.Identity, linkID, title, rawURL string) (*domain.Link, error) {
	title, rawURL, err := validateLinkFields(title, rawURL)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedLink(ctx, identity, linkID); err != nil {
		return nil, err
	}

	link, err := s.links.Update(ctx, linkID, title, rawURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return link, nil
}

func (s *linkService) Delete(ctx context.Context, identity auth.Identity, linkID string) error {
	if _, err := s.ownedLink(ctx, identity, linkID); err != nil {
		return err
	}

	if err := s.links.Delete(ctx, linkID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLinkNotFound
		}
		return err
	}
	return nil
}

func (s *linkService) resolveOwner(ctx context.Context, identity auth.Identity) (*domain.User, error) {
	owner, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return owner, nil
}

// ownedLink fetches the link and verifies it belongs to the identity's
// user. A missing link is ErrLinkNotFound; a foreign one is ErrNotOwner.
func (s *linkService) ownedLink(ctx context.Context, identity auth.Identity, linkID string) (*domain.Link, error) {
	if strings.TrimSpace(linkID) == "" {
		return nil, ErrLinkNotFound
	}

	link, err := s.links.Get(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, link.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	if owner.Email != identity.Email {
		return nil, ErrNotOwner
	}
	return link, nil
}

func validateLinkFields(title, rawURL string) (string, string, error) {
	title = strings.TrimSpace(title)
	rawURL = strings.TrimSpace(rawURL)

	if title == "" || rawURL == "" {
		return "", "", fmt.Errorf("%w: title and url are required", ErrInvalidInput)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", "", fmt.Errorf("%w: url must be absolute", ErrInvalidInput)
	}
	return title, rawURL, nil
}
