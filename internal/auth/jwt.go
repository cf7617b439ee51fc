package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie carrying the session token for the
// server-rendered pages; API clients send it as a bearer token instead.
const SessionCookie = "linkhub_session"

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTGate issues and resolves HS256 session tokens.
type JWTGate struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTGate(secret string, ttl time.Duration) *JWTGate {
	return &JWTGate{secret: []byte(secret), ttl: ttl}
}

func (g *JWTGate) Issue(identity Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Email: identity.Email,
	})

	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (g *JWTGate) Resolve(r *http.Request) (*Identity, error) {
	raw := tokenFromRequest(r)
	if raw == "" {
		return nil, ErrNoSession
	}

	parsed := &claims{}
	token, err := jwt.ParseWithClaims(raw, parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if parsed.Subject == "" || parsed.Email == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: parsed.Subject, Email: parsed.Email}, nil
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
