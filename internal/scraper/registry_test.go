package scraper

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScraper struct {
	cover string
	err   error
}

func (f *fakeScraper) ScrapeCover(_ context.Context) (string, error) {
	return f.cover, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRegistry_UnknownSlug(t *testing.T) {
	r := NewRegistry(testLogger())

	_, err := r.ScrapeCoverForSlug(context.Background(), "no-such-outlet")

	assert.ErrorIs(t, err, ErrNoScraper)
}

func TestRegistry_BuiltinsRegistered(t *testing.T) {
	r := NewRegistry(testLogger())

	for _, slug := range []string{"le-monde", "le-figaro", "liberation"} {
		assert.Contains(t, r.scrapers, slug)
	}
}

func TestRegistry_DelegatesToRegisteredScraper(t *testing.T) {
	r := NewRegistry(testLogger())
	r.Register("mon-hebdo", &fakeScraper{cover: "https://monhebdo.example/une.jpg"})

	cover, err := r.ScrapeCoverForSlug(context.Background(), "mon-hebdo")

	require.NoError(t, err)
	assert.Equal(t, "https://monhebdo.example/une.jpg", cover)
}

func TestRegistry_ScraperErrorWrapped(t *testing.T) {
	r := NewRegistry(testLogger())
	r.Register("mon-hebdo", &fakeScraper{err: errors.New("status code 503")})

	_, err := r.ScrapeCoverForSlug(context.Background(), "mon-hebdo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mon-hebdo")
}

func TestRegistry_EmptyCoverIsError(t *testing.T) {
	r := NewRegistry(testLogger())
	r.Register("mon-hebdo", &fakeScraper{cover: ""})

	_, err := r.ScrapeCoverForSlug(context.Background(), "mon-hebdo")

	assert.Error(t, err)
}

func TestFetchDocument_AndFirstAttr(t *testing.T) {
	page := `<html><body>
		<section class="kiosk">
			<img class="une-couverture" alt="La une du jour" data-src="/covers/une-du-jour.jpg">
			<img class="pub" src="/ads/banner.gif">
		</section>
	</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Pressekiosk")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	doc, err := fetchDocument(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)

	// data-src wins when src is absent; unmatched selectors are skipped.
	assert.Equal(t, "/covers/une-du-jour.jpg", firstAttr(doc, ".journal__cover img", `img[alt*="une"]`, ".une-couverture"))
	assert.Equal(t, "/ads/banner.gif", firstAttr(doc, ".pub"))
	assert.Empty(t, firstAttr(doc, ".nothing-here"))
}

func TestFetchDocument_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := fetchDocument(context.Background(), srv.Client(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
