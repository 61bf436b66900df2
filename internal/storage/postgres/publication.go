package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pressekiosk/internal/domain"
)

type PublicationStore struct {
	db *sqlx.DB
}

func NewPublicationStore(db *sqlx.DB) *PublicationStore {
	return &PublicationStore{db: db}
}

// GetBySourceAndDate returns the publication for (source, day), or nil
// when none exists yet.
func (s *PublicationStore) GetBySourceAndDate(ctx context.Context, mediaSourceID string, date time.Time) (*domain.Publication, error) {
	query := `
		SELECT id, media_source_id, title, publication_date, cover_image_url,
		       description, source_url, is_latest, created_at, updated_at
		FROM publications
		WHERE media_source_id = $1 AND publication_date = $2`

	var pub domain.Publication
	err := s.db.GetContext(ctx, &pub, query, mediaSourceID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pub, nil
}

// Insert creates a publication row. Participates in the transaction bound
// to the context, if any.
func (s *PublicationStore) Insert(ctx context.Context, pub *domain.Publication) error {
	if pub.ID == "" {
		pub.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	pub.CreatedAt = now
	pub.UpdatedAt = now

	query := `
		INSERT INTO publications (
			id, media_source_id, title, publication_date, cover_image_url,
			description, source_url, is_latest, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		pub.ID,
		pub.MediaSourceID,
		pub.Title,
		pub.PublicationDate,
		pub.CoverImageURL,
		pub.Description,
		pub.SourceURL,
		pub.IsLatest,
		pub.CreatedAt,
		pub.UpdatedAt,
	)
	return err
}

// DemoteOthers flips is_latest off for every other publication of the
// source, preserving the one-latest-per-source invariant. Runs in the
// same transaction as Insert when called through the TransactionManager.
func (s *PublicationStore) DemoteOthers(ctx context.Context, mediaSourceID, keepID string) error {
	query := `
		UPDATE publications
		SET is_latest = false
		WHERE media_source_id = $1 AND id <> $2 AND is_latest = true`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, mediaSourceID, keepID)
	return err
}

// UpdateCover refreshes an existing publication's cover image in place.
func (s *PublicationStore) UpdateCover(ctx context.Context, id string, coverImageURL *string) error {
	query := `
		UPDATE publications
		SET cover_image_url = $2, updated_at = $3
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id, coverImageURL, time.Now().UTC())
	return err
}
