package scraper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
)

const scraperUserAgent = "Mozilla/5.0 (compatible; Pressekiosk/1.0; +https://pressekiosk.example)"

// fetchDocument GETs a page and parses it for selector queries.
func fetchDocument(ctx context.Context, client *http.Client, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", scraperUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// firstAttr returns the first non-empty src/data-src among the selectors.
// Lazy-loaded covers carry the real URL in data-src.
func firstAttr(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if src, ok := node.Attr("src"); ok && src != "" {
			return src
		}
		if src, ok := node.Attr("data-src"); ok && src != "" {
			return src
		}
	}
	return ""
}

type leMondeScraper struct {
	client *http.Client
}

func (s *leMondeScraper) ScrapeCover(ctx context.Context) (string, error) {
	doc, err := fetchDocument(ctx, s.client, "https://www.lemonde.fr/le-journal-du-jour/")
	if err != nil {
		return "", err
	}
	return firstAttr(doc, `img[alt*="Une"]`, ".journal__cover img"), nil
}

type leFigaroScraper struct {
	client *http.Client
}

func (s *leFigaroScraper) ScrapeCover(ctx context.Context) (string, error) {
	doc, err := fetchDocument(ctx, s.client, "https://www.lefigaro.fr/le-journal-du-jour")
	if err != nil {
		return "", err
	}
	return firstAttr(doc, ".journal-cover img", `[data-testid="cover-image"]`), nil
}

type liberationScraper struct {
	client *http.Client
}

func (s *liberationScraper) ScrapeCover(ctx context.Context) (string, error) {
	doc, err := fetchDocument(ctx, s.client, "https://www.liberation.fr/le-journal-du-jour")
	if err != nil {
		return "", err
	}
	return firstAttr(doc, ".journal-cover img", `img[alt*="Une"]`), nil
}
