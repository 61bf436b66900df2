// Package images selects representative images from feed items and picks
// publication cover candidates.
package images

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"pressekiosk/internal/domain"
)

// ImageInfo describes the image chosen for a feed item and where in the
// item it came from.
type ImageInfo struct {
	URL    string
	Width  int
	Height int
	Source string
}

const (
	SourceRichMedia = "rich-media"
	SourceThumbnail = "thumbnail"
	SourceEnclosure = "enclosure"
	SourceHTML      = "html"
)

var (
	imgTagRe  = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)
	dimHintRe = regexp.MustCompile(`\d{3,4}x\d{3,4}`)
)

// Cover-like keywords matched case-insensitively against candidate URLs.
// Mix of French and English since the ingested outlets are mostly French.
var coverKeywords = []string{
	"cover", "couverture", "une", "front", "magazine", "journal",
	"edition", "édition", "numero", "numéro", "issue", "page-1",
}

// ExtractImage returns at most one image for a feed item, trying in strict
// order: first rich-media attachment, first thumbnail attachment, an
// enclosure with an image MIME type, then the first <img> tag in the item
// HTML. Returns false when no source yields a usable URL.
func ExtractImage(item domain.FeedItem) (ImageInfo, bool) {
	if len(item.MediaContents) > 0 && item.MediaContents[0].URL != "" {
		m := item.MediaContents[0]
		return ImageInfo{
			URL:    m.URL,
			Width:  parseDimension(m.Width),
			Height: parseDimension(m.Height),
			Source: SourceRichMedia,
		}, true
	}

	if len(item.MediaThumbnails) > 0 && item.MediaThumbnails[0].URL != "" {
		m := item.MediaThumbnails[0]
		return ImageInfo{
			URL:    m.URL,
			Width:  parseDimension(m.Width),
			Height: parseDimension(m.Height),
			Source: SourceThumbnail,
		}, true
	}

	if item.Enclosure != nil && item.Enclosure.URL != "" &&
		strings.HasPrefix(item.Enclosure.Type, "image/") {
		return ImageInfo{URL: item.Enclosure.URL, Source: SourceEnclosure}, true
	}

	html := item.Content
	if html == "" {
		html = item.Description
	}
	if src, ok := extractFromHTML(html); ok {
		return ImageInfo{URL: src, Source: SourceHTML}, true
	}

	return ImageInfo{}, false
}

// extractFromHTML finds the first <img src> in an HTML fragment, rejecting
// URLs that look like tracking pixels. Best-effort heuristic.
func extractFromHTML(html string) (string, bool) {
	if html == "" {
		return "", false
	}
	m := imgTagRe.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	src := m[1]
	if strings.Contains(src, "1x1") || strings.Contains(src, "pixel") ||
		strings.Contains(src, "tracker") {
		return "", false
	}
	return src, true
}

// ExtractAll collects one validated image URL per item, in item order.
func ExtractAll(items []domain.FeedItem) []string {
	var urls []string
	for _, item := range items {
		if info, ok := ExtractImage(item); ok && IsValidImageURL(info.URL) {
			urls = append(urls, info.URL)
		}
	}
	return urls
}

// SelectBestCover picks the publication cover from candidate URLs: first a
// URL containing a cover-like keyword, then one with a size hint ("large",
// "big" or an NNNxNNN dimension pattern), then the first candidate. The
// ordering is deliberate: a content-based cover hint outranks recency.
func SelectBestCover(urls []string) (string, bool) {
	if len(urls) == 0 {
		return "", false
	}

	for _, u := range urls {
		if isLikelyCover(u) {
			return u, true
		}
	}

	for _, u := range urls {
		lower := strings.ToLower(u)
		if strings.Contains(lower, "large") || strings.Contains(lower, "big") ||
			dimHintRe.MatchString(lower) {
			return u, true
		}
	}

	return urls[0], true
}

func isLikelyCover(u string) bool {
	lower := strings.ToLower(u)
	for _, kw := range coverKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsValidImageURL accepts absolute http(s) URLs. No extension check: CDN
// image URLs often carry none.
func IsValidImageURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// parseDimension parses a width/height attribute, returning 0 on failure
// rather than failing the extraction.
func parseDimension(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
