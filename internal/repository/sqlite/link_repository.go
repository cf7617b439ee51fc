package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Wirawat444/web-sc-linkhub/internal/domain"
	"github.com/Wirawat444/web-sc-linkhub/internal/repository"
)

const createLinksTable = `
CREATE TABLE IF NOT EXISTS links (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	title TEXT NOT NULL,
	url TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_links_user_id ON links(user_id);
`

type LinkRepository struct {
	db *sql.DB
}

func NewLinkRepository(db *sql.DB) repository.LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createLinksTable); err != nil {
		return fmt.Errorf("create links table: %w", err)
	}
	return nil
}

func (r *LinkRepository) Create(ctx context.Context, link *domain.Link) error {
	now := time.Now().UTC()
	link.CreatedAt = now
	link.UpdatedAt = now

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO links (id, user_id, title, url, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		link.ID,
		link.UserID,
		link.Title,
		link.URL,
		link.Position,
		link.CreatedAt,
		link.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

func (r *LinkRepository) Get(ctx context.Context, id string) (*domain.Link, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, title, url, position, created_at, updated_at
FROM links
WHERE id = ?`, id)

	var link domain.Link
	if err := row.Scan(
		&link.ID,
		&link.UserID,
		&link.Title,
		&link.URL,
		&link.Position,
		&link.CreatedAt,
		&link.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan link: %w", err)
	}
	return &link, nil
}

func (r *LinkRepository) ListByUser(ctx context.Context, userID string) ([]domain.Link, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, title, url, position, created_at, updated_at
FROM links
WHERE user_id = ?
ORDER BY position ASC, created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var link domain.Link
		if err := rows.Scan(
			&link.ID,
			&link.UserID,
			&link.Title,
			&link.URL,
			&link.Position,
			&link.CreatedAt,
			&link.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

func (r *LinkRepository) Update(ctx context.Context, id, title, url string) (*domain.Link, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE links SET title = ?, url = ?, updated_at = ?
WHERE id = ?`,
		title,
		url,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("update link: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, repository.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *LinkRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM links WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// NextPosition returns the ordering key for a new link: one past the
// owner's current maximum, 0 when the list is empty.
func (r *LinkRepository) NextPosition(ctx context.Context, userID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT COALESCE(MAX(position) + 1, 0)
FROM links
WHERE user_id = ?`, userID)

	var next int
	if err := row.Scan(&next); err != nil {
		return 0, fmt.Errorf("next position: %w", err)
	}
	return next, nil
}
