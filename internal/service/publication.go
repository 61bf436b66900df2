package service

import (
	"context"
	"fmt"
	"log/slog"

	"pressekiosk/internal/domain"
	"pressekiosk/internal/images"
	"pressekiosk/internal/normalize"
)

// PublicationResolver creates or updates the "today" publication per
// source and picks its cover image.
type PublicationResolver struct {
	feedClient   FeedClient
	scrapers     CoverScraper
	publications PublicationStore
	txManager    TransactionManager
	logger       *slog.Logger
}

func NewPublicationResolver(
	feedClient FeedClient,
	scrapers CoverScraper,
	publications PublicationStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *PublicationResolver {
	return &PublicationResolver{
		feedClient:   feedClient,
		scrapers:     scrapers,
		publications: publications,
		txManager:    txManager,
		logger:       logger.With("component", "publications"),
	}
}

// ResolveForToday upserts the publication for (source, today) and returns
// its id. Cover selection tries, stopping at first success: the feed's
// own declared image, the best image across the supplied items, the
// source's registered cover scraper, then the source's configured cover
// and logo. Persistence failures yield ok=false; callers must then skip
// storing articles for this cycle.
func (r *PublicationResolver) ResolveForToday(ctx context.Context, source domain.MediaSource, items []domain.FeedItem, primaryFeedURL string) (string, bool) {
	today := normalize.Today()
	cover := r.selectCover(ctx, source, items, primaryFeedURL)

	var coverURL *string
	if cover != "" {
		coverURL = &cover
	}

	existing, err := r.publications.GetBySourceAndDate(ctx, source.ID, today)
	if err != nil {
		r.logger.Error("lookup publication failed", "source", source.Slug, "error", err)
		return "", false
	}

	if existing != nil {
		if err := r.publications.UpdateCover(ctx, existing.ID, coverURL); err != nil {
			r.logger.Error("update publication failed", "source", source.Slug, "error", err)
			return "", false
		}
		return existing.ID, true
	}

	day := today.Format("2006-01-02")
	description := fmt.Sprintf("%s edition for %s", source.Name, day)
	pub := &domain.Publication{
		MediaSourceID:   source.ID,
		Title:           fmt.Sprintf("%s - %s", source.Name, day),
		PublicationDate: today,
		CoverImageURL:   coverURL,
		Description:     &description,
		SourceURL:       source.WebsiteURL,
		IsLatest:        true,
	}

	// Insert and demote run in one transaction so exactly one publication
	// per source carries is_latest=true at any point.
	err = r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := r.publications.Insert(txCtx, pub); err != nil {
			return fmt.Errorf("insert publication: %w", err)
		}
		if err := r.publications.DemoteOthers(txCtx, source.ID, pub.ID); err != nil {
			return fmt.Errorf("demote previous publications: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("create publication failed", "source", source.Slug, "error", err)
		return "", false
	}

	r.logger.Info("created publication", "source", source.Slug, "date", day)
	return pub.ID, true
}

func (r *PublicationResolver) selectCover(ctx context.Context, source domain.MediaSource, items []domain.FeedItem, primaryFeedURL string) string {
	if cover := r.coverFromFeedMetadata(ctx, primaryFeedURL); cover != "" {
		return cover
	}

	if cover, ok := images.SelectBestCover(images.ExtractAll(items)); ok {
		return cover
	}

	if r.scrapers != nil {
		cover, err := r.scrapers.ScrapeCoverForSlug(ctx, source.Slug)
		if err == nil && images.IsValidImageURL(cover) {
			return cover
		}
		if err != nil {
			r.logger.Debug("cover scraper miss", "source", source.Slug, "error", err)
		}
	}

	if source.CoverImageURL != nil && *source.CoverImageURL != "" {
		return *source.CoverImageURL
	}
	if source.LogoURL != nil && *source.LogoURL != "" {
		return *source.LogoURL
	}
	return ""
}

// coverFromFeedMetadata re-fetches the feed and checks its declared image
// and iTunes image. Best-effort: every failure is treated as "no cover".
func (r *PublicationResolver) coverFromFeedMetadata(ctx context.Context, feedURL string) string {
	if feedURL == "" {
		return ""
	}

	feed, err := r.feedClient.Fetch(ctx, feedURL)
	if err != nil {
		r.logger.Debug("no cover in feed metadata", "url", feedURL, "error", err)
		return ""
	}

	if images.IsValidImageURL(feed.ImageURL) {
		return feed.ImageURL
	}
	if images.IsValidImageURL(feed.ITunesImageURL) {
		return feed.ITunesImageURL
	}
	return ""
}
