package domain

import "time"

// User represents a registered account with a public profile page.
// Username stays empty until the user claims one; once set it is
// unique across all users.
type User struct {
	ID           string
	Name         string
	Email        string
	Username     string
	Image        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
