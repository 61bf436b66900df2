package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pressekiosk/internal/domain"
)

type FetchLogStore struct {
	db *sqlx.DB
}

func NewFetchLogStore(db *sqlx.DB) *FetchLogStore {
	return &FetchLogStore{db: db}
}

// Append records one fetch attempt. The log is append-only; rows are
// never updated or deleted by the ingestion pipeline.
func (s *FetchLogStore) Append(ctx context.Context, log *domain.FetchLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO fetch_logs (
			id, media_source_id, rss_feed_id, status, items_fetched,
			error_message, fetch_duration_ms, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		log.ID,
		log.MediaSourceID,
		log.FeedID,
		log.Status,
		log.ItemsFetched,
		log.ErrorMessage,
		log.FetchDurationMS,
		log.CreatedAt,
	)
	return err
}

// ListRecent returns the newest fetch logs, optionally filtered by status.
func (s *FetchLogStore) ListRecent(ctx context.Context, limit int, status domain.FetchStatus) ([]domain.FetchLog, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, media_source_id, rss_feed_id, status, items_fetched,
		       error_message, fetch_duration_ms, created_at
		FROM fetch_logs`
	args := []interface{}{}

	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}

	query += " ORDER BY created_at DESC LIMIT " + strconv.Itoa(limit)

	var logs []domain.FetchLog
	err := s.db.SelectContext(ctx, &logs, query, args...)
	return logs, err
}
