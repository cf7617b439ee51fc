package auth

import (
	"errors"
	"net/http"
)

var (
	// ErrNoSession indicates the request carried no session token at all.
	ErrNoSession = errors.New("no session")
	// ErrInvalidToken indicates the token was present but failed validation.
	ErrInvalidToken = errors.New("invalid session token")
)

// Identity is the authenticated principal resolved for one request.
type Identity struct {
	UserID string
	Email  string
}

// Gate resolves the authenticated identity for an inbound request.
// Ownership decisions are always made against the resolved identity,
// never against identifiers supplied in the request body.
type Gate interface {
	Resolve(r *http.Request) (*Identity, error)
	Issue(identity Identity) (string, error)
}
