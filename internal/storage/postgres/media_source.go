package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"pressekiosk/internal/domain"
)

type MediaSourceStore struct {
	db *sqlx.DB
}

func NewMediaSourceStore(db *sqlx.DB) *MediaSourceStore {
	return &MediaSourceStore{db: db}
}

// ListActive returns all active media sources, ordered by name for a
// stable fetch order.
func (s *MediaSourceStore) ListActive(ctx context.Context) ([]domain.MediaSource, error) {
	query := `
		SELECT id, name, slug, type, website_url, logo_url, cover_image_url,
		       is_active, fetch_interval_minutes, last_fetched_at,
		       created_at, updated_at
		FROM media_sources
		WHERE is_active = true
		ORDER BY name`

	var sources []domain.MediaSource
	err := s.db.SelectContext(ctx, &sources, query)
	return sources, err
}

// StampLastFetched records when the source's feed was last fetched. The
// only mutation the ingestion pipeline makes to a media source.
func (s *MediaSourceStore) StampLastFetched(ctx context.Context, id string, fetchedAt time.Time) error {
	query := `
		UPDATE media_sources
		SET last_fetched_at = $2, updated_at = $2
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id, fetchedAt)
	return err
}
