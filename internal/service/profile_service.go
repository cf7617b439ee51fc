package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Wirawat444/web-sc-linkhub/internal/auth"
	"github.com/Wirawat444/web-sc-linkhub/internal/domain"
	"github.com/Wirawat444/web-sc-linkhub/internal/repository"
)

// PublicProfile is the unauthenticated projection of a user page:
// profile fields plus the owner's links in display order.
type PublicProfile struct {
	User  *domain.User
	Links []domain.Link
}

// ProfileService reads and updates the authenticated user's profile
// and serves the public profile page lookup.
type ProfileService interface {
	GetProfile(ctx context.Context, identity auth.Identity) (*domain.User, error)
	UpdateProfile(ctx context.Context, identity auth.Identity, name, username string) (*domain.User, error)
	SetImage(ctx context.Context, identity auth.Identity, imageURL string) (*domain.User, error)
	Public(ctx context.Context, username string) (*PublicProfile, error)
}

type profileService struct {
	users repository.UserRepository
	links repository.LinkRepository
}

func NewProfileService(users repository.UserRepository, links repository.LinkRepository) ProfileService {
	return &profileService{users: users, links: links}
}

func (s *profileService) GetProfile(ctx context.Context, identity auth.Identity) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, identity auth.Identity, name, username string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	username = strings.ToLower(strings.TrimSpace(username))

	if name == "" || username == "" {
		return nil, fmt.Errorf("%w: name and username are required", ErrInvalidInput)
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.Email != identity.Email {
		return nil, ErrUsernameTaken
	}

	user, err := s.users.UpdateProfile(ctx, identity.Email, name, username)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *profileService) SetImage(ctx context.Context, identity auth.Identity, imageURL string) (*domain.User, error) {
	owner, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user, err := s.users.UpdateImage(ctx, owner.ID, imageURL)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *profileService) Public(ctx context.Context, username string) (*PublicProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, ErrUserNotFound
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	links, err := s.links.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &PublicProfile{User: sanitizeUser(user), Links: links}, nil
}
