package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"pressekiosk/internal/domain"
)

type FeedStore struct {
	db *sqlx.DB
}

func NewFeedStore(db *sqlx.DB) *FeedStore {
	return &FeedStore{db: db}
}

// ListActiveBySource returns a source's active feeds ordered by ascending
// priority, so index 0 is the primary feed.
func (s *FeedStore) ListActiveBySource(ctx context.Context, mediaSourceID string) ([]domain.Feed, error) {
	query := `
		SELECT id, media_source_id, feed_url, category, is_active, priority,
		       created_at, updated_at
		FROM rss_feeds
		WHERE media_source_id = $1 AND is_active = true
		ORDER BY priority ASC`

	var feeds []domain.Feed
	err := s.db.SelectContext(ctx, &feeds, query, mediaSourceID)
	return feeds, err
}
