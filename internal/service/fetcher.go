package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pressekiosk/internal/config"
	"pressekiosk/internal/domain"
	"pressekiosk/internal/images"
	"pressekiosk/internal/normalize"
)

// FetchService orchestrates one ingestion pass: for each active media
// source, fetch its primary feed, resolve today's publication, store the
// items as articles and record the attempt in the fetch log.
type FetchService struct {
	sources    MediaSourceStore
	feeds      FeedStore
	articles   ArticleStore
	fetchLogs  FetchLogStore
	feedClient FeedClient
	resolver   Resolver
	publisher  Publisher
	logger     *slog.Logger
	cfg        config.FetchConfig

	// one backoff unit is 1s in production; tests shrink it
	backoffUnit time.Duration
}

func NewFetchService(
	sources MediaSourceStore,
	feeds FeedStore,
	articles ArticleStore,
	fetchLogs FetchLogStore,
	feedClient FeedClient,
	resolver Resolver,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.FetchConfig,
) *FetchService {
	return &FetchService{
		sources:     sources,
		feeds:       feeds,
		articles:    articles,
		fetchLogs:   fetchLogs,
		feedClient:  feedClient,
		resolver:    resolver,
		publisher:   publisher,
		logger:      logger.With("component", "fetcher"),
		cfg:         cfg,
		backoffUnit: time.Second,
	}
}

// FetchAllSources runs one full cycle across all active sources, strictly
// sequentially. Per-source failures are contained in the result list; the
// only error returned is a failure to load the source list itself.
func (s *FetchService) FetchAllSources(ctx context.Context) ([]domain.FetchResult, error) {
	s.logger.Info("starting fetch cycle")

	sources, err := s.sources.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list media sources: %w", err)
	}
	if len(sources) == 0 {
		s.logger.Warn("no active media sources")
		return nil, nil
	}

	var results []domain.FetchResult
	for i, source := range sources {
		feeds, err := s.feeds.ListActiveBySource(ctx, source.ID)
		if err != nil || len(feeds) == 0 {
			s.logger.Warn("no active feed for source", "source", source.Slug, "error", err)
			continue
		}

		// Only the highest-priority feed is fetched per cycle.
		primary := feeds[0]
		results = append(results, s.fetchSource(ctx, source, primary))

		if i < len(sources)-1 {
			s.pause(ctx, s.cfg.SourceDelay)
		}
	}

	successes, items := summarize(results)
	s.logger.Info("fetch cycle complete",
		"successful", successes,
		"total", len(results),
		"items", items,
	)
	return results, nil
}

// fetchSource runs the full pipeline for one source and always leaves
// exactly one fetch log row behind, whatever the outcome.
func (s *FetchService) fetchSource(ctx context.Context, source domain.MediaSource, feed domain.Feed) domain.FetchResult {
	start := time.Now()
	s.logger.Info("fetching source", "source", source.Slug, "feed", feed.FeedURL)

	parsed, err := s.feedClient.Fetch(ctx, feed.FeedURL)
	if err != nil {
		return s.failure(ctx, source, feed, start, err)
	}

	if len(parsed.Items) == 0 {
		s.logger.Warn("feed returned no items", "source", source.Slug)
		duration := time.Since(start)
		s.logFetch(ctx, source.ID, feed.ID, domain.FetchStatusSuccess, 0, duration, "")
		return domain.FetchResult{
			Success:       true,
			MediaSourceID: source.ID,
			FeedID:        feed.ID,
			Duration:      duration,
		}
	}

	publicationID, ok := s.resolver.ResolveForToday(ctx, source, parsed.Items, feed.FeedURL)
	if !ok {
		return s.failure(ctx, source, feed, start, fmt.Errorf("resolve publication for today"))
	}

	stored := s.storeArticles(ctx, parsed.Items, source, feed, publicationID)

	if err := s.sources.StampLastFetched(ctx, source.ID, time.Now().UTC()); err != nil {
		s.logger.Warn("stamp last_fetched_at failed", "source", source.Slug, "error", err)
	}

	duration := time.Since(start)
	s.logFetch(ctx, source.ID, feed.ID, domain.FetchStatusSuccess, stored, duration, "")
	s.logger.Info("fetched source",
		"source", source.Slug,
		"stored", stored,
		"duration_ms", duration.Milliseconds(),
	)

	return domain.FetchResult{
		Success:       true,
		MediaSourceID: source.ID,
		FeedID:        feed.ID,
		ItemsFetched:  stored,
		Duration:      duration,
	}
}

// storeArticles maps and upserts each item, isolating per-item failures:
// one bad item never aborts the batch. Returns the count of newly stored
// articles; guid duplicates are skipped and not counted.
func (s *FetchService) storeArticles(ctx context.Context, items []domain.FeedItem, source domain.MediaSource, feed domain.Feed, publicationID string) int {
	stored := 0
	for _, item := range items {
		article := mapItem(item, source, feed, publicationID)

		isNew, err := s.articles.InsertIgnoreDuplicate(ctx, article)
		if err != nil {
			s.logger.Warn("store article failed", "guid", article.GUID, "error", err)
			continue
		}
		if !isNew {
			s.logger.Debug("duplicate article skipped", "guid", article.GUID)
			continue
		}
		stored++

		if s.publisher != nil {
			category := normalize.MapCategory(deref(article.Category), deref(feed.Category))
			if err := s.publisher.Publish(ctx, article, category); err != nil {
				s.logger.Warn("publish article event failed", "guid", article.GUID, "error", err)
			}
		}
	}
	return stored
}

// FetchWithRetry wraps a single source+feed fetch with exponential backoff
// (2s, 4s, 8s). Not used by the bulk pass; callers opting into higher
// reliability for one source use it directly.
func (s *FetchService) FetchWithRetry(ctx context.Context, source domain.MediaSource, feed domain.Feed, maxRetries int) domain.FetchResult {
	if maxRetries <= 0 {
		maxRetries = s.cfg.MaxRetries
	}

	var lastErr string
	for attempt := 1; attempt <= maxRetries; attempt++ {
		result := s.fetchSource(ctx, source, feed)
		if result.Success {
			return result
		}
		lastErr = result.Error

		if attempt < maxRetries {
			delay := time.Duration(1<<uint(attempt)) * s.backoffUnit
			s.logger.Info("retrying fetch",
				"source", source.Slug,
				"attempt", attempt,
				"max_retries", maxRetries,
				"delay", delay,
			)
			s.pause(ctx, delay)
		}
	}

	return domain.FetchResult{
		Success:       false,
		MediaSourceID: source.ID,
		FeedID:        feed.ID,
		Error:         fmt.Sprintf("failed after %d retries: %s", maxRetries, lastErr),
	}
}

func (s *FetchService) failure(ctx context.Context, source domain.MediaSource, feed domain.Feed, start time.Time, err error) domain.FetchResult {
	duration := time.Since(start)
	s.logger.Error("fetch source failed", "source", source.Slug, "error", err)
	s.logFetch(ctx, source.ID, feed.ID, domain.FetchStatusError, 0, duration, err.Error())
	return domain.FetchResult{
		Success:       false,
		MediaSourceID: source.ID,
		FeedID:        feed.ID,
		Error:         err.Error(),
		Duration:      duration,
	}
}

func (s *FetchService) logFetch(ctx context.Context, sourceID, feedID string, status domain.FetchStatus, items int, duration time.Duration, errMsg string) {
	log := &domain.FetchLog{
		MediaSourceID:   sourceID,
		FeedID:          &feedID,
		Status:          status,
		ItemsFetched:    items,
		FetchDurationMS: duration.Milliseconds(),
	}
	if errMsg != "" {
		log.ErrorMessage = &errMsg
	}
	if err := s.fetchLogs.Append(ctx, log); err != nil {
		s.logger.Error("record fetch log failed", "source", sourceID, "error", err)
	}
}

func (s *FetchService) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// mapItem converts one feed item into an article record. Category stays
// raw; mapping to the standard vocabulary happens at read/publish time.
func mapItem(item domain.FeedItem, source domain.MediaSource, feed domain.Feed, publicationID string) *domain.Article {
	article := &domain.Article{
		PublicationID: &publicationID,
		MediaSourceID: source.ID,
		FeedID:        &feed.ID,
		Title:         item.Title,
		GUID:          item.GUID,
	}
	if article.Title == "" {
		article.Title = "Untitled"
	}
	if article.GUID == "" {
		article.GUID = item.Link
	}

	if item.Description != "" {
		article.Description = strptr(item.Description)
	}
	if item.Content != "" {
		article.Content = strptr(item.Content)
	}
	if item.Author != "" {
		article.Author = strptr(item.Author)
	}
	if item.Link != "" {
		article.ArticleURL = strptr(item.Link)
	}
	if len(item.Categories) > 0 {
		article.Category = strptr(item.Categories[0])
	}

	if item.PublishedParsed != nil {
		article.PublishedAt = item.PublishedParsed
	} else {
		article.PublishedAt = normalize.ParseFeedDate(item.Published)
	}

	if info, ok := images.ExtractImage(item); ok && images.IsValidImageURL(info.URL) {
		article.ImageURL = strptr(info.URL)
	}

	return article
}

func summarize(results []domain.FetchResult) (successes, items int) {
	for _, r := range results {
		if r.Success {
			successes++
		}
		items += r.ItemsFetched
	}
	return successes, items
}

func strptr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
