package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{
			name: "rfc1123z",
			raw:  "Mon, 02 Jan 2006 15:04:05 -0700",
			want: timePtr(time.Date(2006, 1, 2, 15, 4, 5, 0, time.FixedZone("", -7*3600))),
		},
		{
			name: "rfc3339",
			raw:  "2024-03-15T08:30:00Z",
			want: timePtr(time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)),
		},
		{
			name: "date only",
			raw:  "2024-03-15",
			want: timePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		},
		{name: "empty", raw: "", want: nil},
		{name: "garbage", raw: "tomorrow-ish", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFeedDate(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2024, 3, 16, 0, 0, 1, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 3, 15, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), DateOf(ts))
}

func TestMapCategory(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		feedCategory string
		want         StandardCategory
	}{
		{"feed category wins", "football", "politique", CategoryPolitics},
		{"raw fallback", "football", "", CategorySports},
		{"case insensitive", "TECH", "", CategoryTechnology},
		{"french accents", "économie", "", CategoryEconomy},
		{"already standard", "", "opinion", CategoryOpinion},
		{"front page", "à la une", "", CategoryMain},
		{"unknown defaults to main", "horoscope", "", CategoryMain},
		{"both empty", "", "", CategoryMain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCategory(tt.raw, tt.feedCategory))
		})
	}
}

func TestStandardCategoriesIncludesMainFirst(t *testing.T) {
	cats := StandardCategories()
	require.NotEmpty(t, cats)
	assert.Equal(t, CategoryMain, cats[0])
	assert.Len(t, cats, 9)
}

func timePtr(t time.Time) *time.Time { return &t }
