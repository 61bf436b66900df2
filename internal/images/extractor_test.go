package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressekiosk/internal/domain"
)

func TestExtractImage_RichMediaWinsOverEverything(t *testing.T) {
	item := domain.FeedItem{
		MediaContents:   []domain.MediaAttachment{{URL: "https://cdn.example/rich.jpg", Width: "1200", Height: "800"}},
		MediaThumbnails: []domain.MediaAttachment{{URL: "https://cdn.example/thumb.jpg"}},
		Enclosure:       &domain.Enclosure{URL: "https://cdn.example/enc.jpg", Type: "image/jpeg"},
		Content:         `<p><img src="https://cdn.example/inline.jpg"></p>`,
	}

	info, ok := ExtractImage(item)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/rich.jpg", info.URL)
	assert.Equal(t, SourceRichMedia, info.Source)
	assert.Equal(t, 1200, info.Width)
	assert.Equal(t, 800, info.Height)
}

func TestExtractImage_BadDimensionsDoNotFailExtraction(t *testing.T) {
	item := domain.FeedItem{
		MediaContents: []domain.MediaAttachment{{URL: "https://cdn.example/rich.jpg", Width: "huge", Height: ""}},
	}

	info, ok := ExtractImage(item)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/rich.jpg", info.URL)
	assert.Zero(t, info.Width)
	assert.Zero(t, info.Height)
}

func TestExtractImage_ThumbnailWhenNoRichMedia(t *testing.T) {
	item := domain.FeedItem{
		MediaThumbnails: []domain.MediaAttachment{{URL: "https://cdn.example/thumb.jpg", Width: "300"}},
		Enclosure:       &domain.Enclosure{URL: "https://cdn.example/enc.jpg", Type: "image/jpeg"},
	}

	info, ok := ExtractImage(item)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/thumb.jpg", info.URL)
	assert.Equal(t, SourceThumbnail, info.Source)
	assert.Equal(t, 300, info.Width)
}

func TestExtractImage_EnclosureMustBeImage(t *testing.T) {
	audio := domain.FeedItem{
		Enclosure: &domain.Enclosure{URL: "https://cdn.example/podcast.mp3", Type: "audio/mpeg"},
	}
	_, ok := ExtractImage(audio)
	assert.False(t, ok)

	image := domain.FeedItem{
		Enclosure: &domain.Enclosure{URL: "https://cdn.example/photo.png", Type: "image/png"},
	}
	info, ok := ExtractImage(image)
	require.True(t, ok)
	assert.Equal(t, SourceEnclosure, info.Source)
}

func TestExtractImage_HTMLFallback(t *testing.T) {
	item := domain.FeedItem{
		Content: `<div>text <img class="hero" src="https://cdn.example/story.jpg" alt=""> more</div>`,
	}

	info, ok := ExtractImage(item)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/story.jpg", info.URL)
	assert.Equal(t, SourceHTML, info.Source)
}

func TestExtractImage_HTMLFromDescriptionWhenNoContent(t *testing.T) {
	item := domain.FeedItem{
		Description: `<img src='https://cdn.example/snippet.jpg'>`,
	}

	info, ok := ExtractImage(item)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/snippet.jpg", info.URL)
}

func TestExtractImage_RejectsTrackingPixels(t *testing.T) {
	for _, src := range []string{
		"https://metrics.example/1x1.gif",
		"https://metrics.example/pixel.gif",
		"https://metrics.example/tracker.png",
	} {
		item := domain.FeedItem{Content: `<img src="` + src + `">`}
		_, ok := ExtractImage(item)
		assert.False(t, ok, "expected %s to be rejected", src)
	}
}

func TestExtractImage_NothingUsable(t *testing.T) {
	item := domain.FeedItem{
		Title:     "no media here",
		Enclosure: &domain.Enclosure{URL: "https://cdn.example/file.pdf", Type: "application/pdf"},
		Content:   "<p>plain paragraph</p>",
	}

	_, ok := ExtractImage(item)
	assert.False(t, ok)
}

func TestSelectBestCover_CoverKeywordBeatsOrder(t *testing.T) {
	url, ok := SelectBestCover([]string{
		"https://x/a.jpg",
		"https://x/cover-front.jpg",
	})
	require.True(t, ok)
	assert.Equal(t, "https://x/cover-front.jpg", url)
}

func TestSelectBestCover_SizeHintWhenNoCoverKeyword(t *testing.T) {
	url, ok := SelectBestCover([]string{
		"https://x/small.jpg",
		"https://x/photo_1600x900.jpg",
	})
	require.True(t, ok)
	assert.Equal(t, "https://x/photo_1600x900.jpg", url)
}

func TestSelectBestCover_FrenchKeywords(t *testing.T) {
	url, ok := SelectBestCover([]string{
		"https://x/photo.jpg",
		"https://x/couverture-du-jour.jpg",
	})
	require.True(t, ok)
	assert.Equal(t, "https://x/couverture-du-jour.jpg", url)
}

func TestSelectBestCover_FallsBackToFirst(t *testing.T) {
	url, ok := SelectBestCover([]string{"https://x/one.jpg", "https://x/two.jpg"})
	require.True(t, ok)
	assert.Equal(t, "https://x/one.jpg", url)
}

func TestSelectBestCover_Empty(t *testing.T) {
	_, ok := SelectBestCover(nil)
	assert.False(t, ok)
}

func TestExtractAll_SkipsInvalidAndMissing(t *testing.T) {
	items := []domain.FeedItem{
		{MediaContents: []domain.MediaAttachment{{URL: "https://cdn.example/a.jpg"}}},
		{Title: "no image"},
		{MediaContents: []domain.MediaAttachment{{URL: "ftp://cdn.example/b.jpg"}}},
		{MediaContents: []domain.MediaAttachment{{URL: "https://cdn.example/c.jpg"}}},
	}

	assert.Equal(t, []string{"https://cdn.example/a.jpg", "https://cdn.example/c.jpg"}, ExtractAll(items))
}

func TestIsValidImageURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://cdn.example/photo", true},
		{"http://cdn.example/photo.jpg", true},
		{"ftp://cdn.example/photo.jpg", false},
		{"//cdn.example/photo.jpg", false},
		{"/relative/photo.jpg", false},
		{"", false},
		{"not a url at all ::", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidImageURL(tt.url), "url %q", tt.url)
	}
}
