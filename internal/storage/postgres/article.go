package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pressekiosk/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// InsertIgnoreDuplicate inserts an article, silently skipping guid
// conflicts. Returns true when a new row was actually stored.
func (s *ArticleStore) InsertIgnoreDuplicate(ctx context.Context, article *domain.Article) (bool, error) {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now

	query := `
		INSERT INTO articles (
			id, publication_id, media_source_id, rss_feed_id, title,
			description, content, author, published_at, article_url,
			image_url, category, guid, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (guid) DO NOTHING`

	res, err := s.db.ExecContext(ctx, query,
		article.ID,
		article.PublicationID,
		article.MediaSourceID,
		article.FeedID,
		article.Title,
		article.Description,
		article.Content,
		article.Author,
		article.PublishedAt,
		article.ArticleURL,
		article.ImageURL,
		article.Category,
		article.GUID,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// CountByPublication returns how many articles belong to a publication.
func (s *ArticleStore) CountByPublication(ctx context.Context, publicationID string) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM articles WHERE publication_id = $1",
		publicationID,
	)
	return count, err
}
