package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"pressekiosk/internal/domain"
	"pressekiosk/internal/normalize"
)

type MediaSourceStore interface {
	ListActive(ctx context.Context) ([]domain.MediaSource, error)
	StampLastFetched(ctx context.Context, id string, fetchedAt time.Time) error
}

type FeedStore interface {
	ListActiveBySource(ctx context.Context, mediaSourceID string) ([]domain.Feed, error)
}

type PublicationStore interface {
	GetBySourceAndDate(ctx context.Context, mediaSourceID string, date time.Time) (*domain.Publication, error)
	Insert(ctx context.Context, pub *domain.Publication) error
	DemoteOthers(ctx context.Context, mediaSourceID, keepID string) error
	UpdateCover(ctx context.Context, id string, coverImageURL *string) error
}

type ArticleStore interface {
	InsertIgnoreDuplicate(ctx context.Context, article *domain.Article) (bool, error)
}

type FetchLogStore interface {
	Append(ctx context.Context, log *domain.FetchLog) error
}

type FeedClient interface {
	Fetch(ctx context.Context, feedURL string) (*domain.ParsedFeed, error)
}

// CoverScraper is the optional site-specific cover collaborator, keyed by
// source slug. A miss is an error the resolver absorbs.
type CoverScraper interface {
	ScrapeCoverForSlug(ctx context.Context, slug string) (string, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher emits an event for each newly stored article. Optional; a nil
// publisher disables publishing.
type Publisher interface {
	Publish(ctx context.Context, article *domain.Article, category normalize.StandardCategory) error
	Close() error
}

// Resolver establishes the "today" publication for a source. ok=false
// means no publication could be established and the caller must abort
// storing articles for that cycle.
type Resolver interface {
	ResolveForToday(ctx context.Context, source domain.MediaSource, items []domain.FeedItem, primaryFeedURL string) (string, bool)
}
