package domain

import "time"

type MediaType string

const (
	MediaTypeNewspaper MediaType = "newspaper"
	MediaTypeMagazine  MediaType = "magazine"
)

type FetchStatus string

const (
	FetchStatusSuccess FetchStatus = "success"
	FetchStatusError   FetchStatus = "error"
	FetchStatusPartial FetchStatus = "partial"
)

// MediaSource is a media outlet owning one or more RSS feeds.
type MediaSource struct {
	ID                   string     `db:"id"`
	Name                 string     `db:"name"`
	Slug                 string     `db:"slug"`
	Type                 MediaType  `db:"type"`
	WebsiteURL           *string    `db:"website_url"`
	LogoURL              *string    `db:"logo_url"`
	CoverImageURL        *string    `db:"cover_image_url"`
	IsActive             bool       `db:"is_active"`
	FetchIntervalMinutes int        `db:"fetch_interval_minutes"`
	LastFetchedAt        *time.Time `db:"last_fetched_at"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

// Feed is one RSS/Atom endpoint belonging to a source. Lower priority is
// fetched first; only the priority-1 feed is fetched per cycle.
type Feed struct {
	ID            string    `db:"id"`
	MediaSourceID string    `db:"media_source_id"`
	FeedURL       string    `db:"feed_url"`
	Category      *string   `db:"category"`
	IsActive      bool      `db:"is_active"`
	Priority      int       `db:"priority"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Publication is the dated per-source grouping of articles, one per source
// per calendar day. Exactly one publication per source has IsLatest=true.
type Publication struct {
	ID              string    `db:"id"`
	MediaSourceID   string    `db:"media_source_id"`
	Title           string    `db:"title"`
	PublicationDate time.Time `db:"publication_date"`
	CoverImageURL   *string   `db:"cover_image_url"`
	Description     *string   `db:"description"`
	SourceURL       *string   `db:"source_url"`
	IsLatest        bool      `db:"is_latest"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// Article is one stored feed item. GUID is the deduplication key: at most
// one article per guid, enforced by upsert-with-ignore at the store level.
type Article struct {
	ID            string     `db:"id"`
	PublicationID *string    `db:"publication_id"`
	MediaSourceID string     `db:"media_source_id"`
	FeedID        *string    `db:"rss_feed_id"`
	Title         string     `db:"title"`
	Description   *string    `db:"description"`
	Content       *string    `db:"content"`
	Author        *string    `db:"author"`
	PublishedAt   *time.Time `db:"published_at"`
	ArticleURL    *string    `db:"article_url"`
	ImageURL      *string    `db:"image_url"`
	Category      *string    `db:"category"`
	GUID          string     `db:"guid"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// FetchLog is an append-only audit row, one per fetch attempt.
type FetchLog struct {
	ID              string      `db:"id"`
	MediaSourceID   string      `db:"media_source_id"`
	FeedID          *string     `db:"rss_feed_id"`
	Status          FetchStatus `db:"status"`
	ItemsFetched    int         `db:"items_fetched"`
	ErrorMessage    *string     `db:"error_message"`
	FetchDurationMS int64       `db:"fetch_duration_ms"`
	CreatedAt       time.Time   `db:"created_at"`
}

// FetchResult is the per-source outcome of one fetch cycle.
type FetchResult struct {
	Success       bool
	MediaSourceID string
	FeedID        string
	ItemsFetched  int
	Error         string
	Duration      time.Duration
}
