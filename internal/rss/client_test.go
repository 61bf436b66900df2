package rss

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
     xmlns:media="http://search.yahoo.com/mrss/"
     xmlns:dc="http://purl.org/dc/elements/1.1/"
     xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Le Quotidien</title>
    <link>https://lequotidien.example</link>
    <image>
      <url>https://lequotidien.example/une-du-jour.jpg</url>
      <title>Le Quotidien</title>
    </image>
    <itunes:image href="https://lequotidien.example/itunes.jpg"/>
    <item>
      <title>Budget vote expected this week</title>
      <link>https://lequotidien.example/politique/budget</link>
      <guid>lq-budget-2024</guid>
      <pubDate>Fri, 15 Mar 2024 08:30:00 +0100</pubDate>
      <dc:creator>A. Martin</dc:creator>
      <category>Politique</category>
      <description>The assembly votes on the budget.</description>
      <media:content url="https://cdn.lequotidien.example/budget_1200x800.jpg" width="1200" height="800"/>
      <media:thumbnail url="https://cdn.lequotidien.example/budget_thumb.jpg" width="300" height="200"/>
    </item>
    <item>
      <title>Podcast episode</title>
      <link>https://lequotidien.example/podcast/12</link>
      <enclosure url="https://cdn.lequotidien.example/ep12.mp3" length="123456" type="audio/mpeg"/>
    </item>
  </channel>
</rss>`

func newTestClient(timeout time.Duration) *Client {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(Config{Timeout: timeout}, logger)
}

func TestFetch_ParsesFeed(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	feed, err := newTestClient(0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, gotAccept, "application/rss+xml")

	assert.Equal(t, "Le Quotidien", feed.Title)
	assert.Equal(t, "https://lequotidien.example/une-du-jour.jpg", feed.ImageURL)
	assert.Equal(t, "https://lequotidien.example/itunes.jpg", feed.ITunesImageURL)
	require.Len(t, feed.Items, 2)

	first := feed.Items[0]
	assert.Equal(t, "Budget vote expected this week", first.Title)
	assert.Equal(t, "lq-budget-2024", first.GUID)
	assert.Equal(t, "A. Martin", first.Author)
	assert.Equal(t, []string{"Politique"}, first.Categories)
	require.NotNil(t, first.PublishedParsed)
	assert.Equal(t, 2024, first.PublishedParsed.Year())
	require.Len(t, first.MediaContents, 1)
	assert.Equal(t, "https://cdn.lequotidien.example/budget_1200x800.jpg", first.MediaContents[0].URL)
	assert.Equal(t, "1200", first.MediaContents[0].Width)
	require.Len(t, first.MediaThumbnails, 1)
	assert.Equal(t, "https://cdn.lequotidien.example/budget_thumb.jpg", first.MediaThumbnails[0].URL)

	second := feed.Items[1]
	require.NotNil(t, second.Enclosure)
	assert.Equal(t, "audio/mpeg", second.Enclosure.Type)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(0).Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
}

func TestFetch_MalformedXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not xml at all"))
	}))
	defer srv.Close()

	_, err := newTestClient(0).Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	_, err := newTestClient(50 * time.Millisecond).Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	// transport-level failure, not an HTTP status error
	var fetchErr *FetchError
	assert.False(t, errors.As(err, &fetchErr))
}
