// Package rss fetches and parses RSS/Atom feeds into domain types.
package rss

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"pressekiosk/internal/domain"
)

const (
	// Browser-like UA: several outlets answer 403 to generic Go clients.
	defaultUserAgent = "Mozilla/5.0 (compatible; Pressekiosk/1.0; +https://pressekiosk.example)"
	acceptHeader     = "application/rss+xml, application/xml, text/xml, */*"
	defaultTimeout   = 10 * time.Second
)

// FetchError reports a non-success HTTP response from a feed server.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: status code %d", e.URL, e.StatusCode)
}

// ParseError reports a feed body that could not be parsed as RSS/Atom.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Config holds feed client configuration.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// Client fetches one feed URL into a domain.ParsedFeed.
type Client struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	userAgent  string
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		parser:     gofeed.NewParser(),
		userAgent:  cfg.UserAgent,
		logger:     logger.With("component", "rss"),
	}
}

// Fetch performs an HTTP GET on the feed URL and parses the body. Returns
// a *FetchError on non-success status and a *ParseError on malformed XML.
func (c *Client) Fetch(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: feedURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	feed, err := c.parser.ParseString(string(body))
	if err != nil {
		return nil, &ParseError{URL: feedURL, Err: err}
	}

	parsed := c.convert(feed)
	c.logger.Debug("fetched feed", "url", feedURL, "items", len(parsed.Items))
	return parsed, nil
}

func (c *Client) convert(feed *gofeed.Feed) *domain.ParsedFeed {
	parsed := &domain.ParsedFeed{Title: feed.Title}

	if feed.Image != nil {
		parsed.ImageURL = feed.Image.URL
	}
	if feed.ITunesExt != nil {
		parsed.ITunesImageURL = feed.ITunesExt.Image
	}

	parsed.Items = make([]domain.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		parsed.Items = append(parsed.Items, convertItem(item))
	}
	return parsed
}

func convertItem(item *gofeed.Item) domain.FeedItem {
	out := domain.FeedItem{
		Title:           item.Title,
		Link:            item.Link,
		GUID:            item.GUID,
		Published:       item.Published,
		PublishedParsed: item.PublishedParsed,
		Content:         item.Content,
		Description:     item.Description,
		Categories:      item.Categories,
		MediaContents:   mediaAttachments(item, "content"),
		MediaThumbnails: mediaAttachments(item, "thumbnail"),
	}

	// dc:creator wins over the plain author element when both are present.
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		out.Author = item.DublinCoreExt.Creator[0]
	} else if item.Author != nil {
		out.Author = item.Author.Name
	}

	if len(item.Enclosures) > 0 {
		enc := item.Enclosures[0]
		out.Enclosure = &domain.Enclosure{
			URL:    enc.URL,
			Type:   enc.Type,
			Length: enc.Length,
		}
	}

	return out
}

func mediaAttachments(item *gofeed.Item, name string) []domain.MediaAttachment {
	exts, ok := item.Extensions["media"]
	if !ok {
		return nil
	}
	entries := exts[name]
	if len(entries) == 0 {
		return nil
	}

	attachments := make([]domain.MediaAttachment, 0, len(entries))
	for _, e := range entries {
		attachments = append(attachments, domain.MediaAttachment{
			URL:    e.Attrs["url"],
			Width:  e.Attrs["width"],
			Height: e.Attrs["height"],
		})
	}
	return attachments
}
