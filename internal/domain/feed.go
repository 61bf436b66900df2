package domain

import "time"

// ParsedFeed is the normalized result of fetching one feed URL, decoupled
// from the underlying RSS/Atom parser.
type ParsedFeed struct {
	Title          string
	ImageURL       string
	ITunesImageURL string
	Items          []FeedItem
}

// MediaAttachment is a structured media:content or media:thumbnail entry.
// Width and Height carry the raw attribute values; consumers parse them.
type MediaAttachment struct {
	URL    string
	Width  string
	Height string
}

// Enclosure is a generic RSS enclosure.
type Enclosure struct {
	URL    string
	Type   string
	Length string
}

// FeedItem is one entry within a parsed feed, pre-mapping to an Article.
type FeedItem struct {
	Title           string
	Link            string
	GUID            string
	Published       string
	PublishedParsed *time.Time
	Author          string
	Content         string
	Description     string
	Categories      []string
	MediaContents   []MediaAttachment
	MediaThumbnails []MediaAttachment
	Enclosure       *Enclosure
}
