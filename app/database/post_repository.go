package database

import (
	"database/sql"
	"fmt"
)

var _ PostRepository = (*PostRepo)(nil)

// PostRepo handles database operations for delivery records
type PostRepo struct {
	db *DB
}

func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// IsPosted reports whether an item with the given fingerprint has already
// been delivered.
func (r *PostRepo) IsPosted(fingerprint string) (bool, error) {
	var found string
	err := r.db.QueryRow(`
		SELECT fingerprint FROM posted_items WHERE fingerprint = ?
	`, fingerprint).Scan(&found)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check posted item: %w", err)
	}

	return true, nil
}

// MarkPosted records a delivery attempt for the fingerprint. Insert-if-absent:
// concurrent or repeated invocation is safe.
func (r *PostRepo) MarkPosted(fingerprint, title, url string) error {
	_, err := r.db.Exec(`
		INSERT OR IGNORE INTO posted_items (fingerprint, title, url)
		VALUES (?, ?, ?)
	`, fingerprint, title, url)

	if err != nil {
		return fmt.Errorf("failed to mark item posted: %w", err)
	}

	return nil
}

// GetPostCount returns the total number of delivery records
func (r *PostRepo) GetPostCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM posted_items").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get post count: %w", err)
	}
	return count, nil
}
