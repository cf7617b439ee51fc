package domain

import "time"

// Link is a single outbound URL entry shown on its owner's profile,
// ordered ascending by Position.
type Link struct {
	ID        string
	UserID    string
	Title     string
	URL       string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
