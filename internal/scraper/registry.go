// Package scraper locates daily front-page cover images on outlet
// websites. Every outlet lays out its "journal du jour" page differently,
// so each gets a dedicated scraper registered under the source slug.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ErrNoScraper is returned for slugs with no registered scraper.
var ErrNoScraper = errors.New("no scraper registered")

// Scraper fetches the current cover image URL for one outlet.
type Scraper interface {
	ScrapeCover(ctx context.Context) (string, error)
}

// Registry maps media-source slugs to their scrapers.
type Registry struct {
	scrapers map[string]Scraper
	logger   *slog.Logger
}

// NewRegistry builds a registry pre-populated with the built-in outlet
// scrapers. Additional scrapers can be added with Register.
func NewRegistry(logger *slog.Logger) *Registry {
	client := &http.Client{Timeout: 10 * time.Second}
	r := &Registry{
		scrapers: make(map[string]Scraper),
		logger:   logger.With("component", "scraper"),
	}
	r.Register("le-monde", &leMondeScraper{client: client})
	r.Register("le-figaro", &leFigaroScraper{client: client})
	r.Register("liberation", &liberationScraper{client: client})
	return r
}

// Register adds or replaces the scraper for a slug.
func (r *Registry) Register(slug string, s Scraper) {
	r.scrapers[slug] = s
}

// ScrapeCoverForSlug runs the scraper registered for the slug. Unknown
// slugs and scraper failures come back as errors the caller is expected
// to absorb; a cover miss is a normal outcome, never fatal.
func (r *Registry) ScrapeCoverForSlug(ctx context.Context, slug string) (string, error) {
	s, ok := r.scrapers[slug]
	if !ok {
		return "", fmt.Errorf("%w for %q", ErrNoScraper, slug)
	}

	coverURL, err := s.ScrapeCover(ctx)
	if err != nil {
		r.logger.Debug("cover scrape failed", "slug", slug, "error", err)
		return "", fmt.Errorf("scrape cover for %q: %w", slug, err)
	}
	if coverURL == "" {
		return "", fmt.Errorf("no cover found for %q", slug)
	}
	return coverURL, nil
}
