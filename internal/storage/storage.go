package storage

import (
	"context"
	"io"
)

// UploadInput describes a single avatar object to store.
type UploadInput struct {
	Key         string
	ContentType string
	Body        io.Reader
}

// Service stores user avatar images in remote object storage and
// returns publicly reachable URLs for them.
type Service interface {
	UploadAvatar(ctx context.Context, in UploadInput) (string, error)
	Delete(ctx context.Context, key string) error
}
