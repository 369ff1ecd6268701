package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/iotd/pkg/domain"
	"github.com/umputun/iotd/pkg/fetch"
)

func TestParser_Parse(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>NASA Image of the Day</title>
	<link>http://www.nasa.gov/</link>
	<description>The latest NASA "Image of the Day" image.</description>
	<item>
		<title>Moon Rise</title>
		<link>http://www.nasa.gov/image-feature/moon-rise</link>
		<description>The moon rises over the horizon.</description>
		<enclosure url="http://www.nasa.gov/sites/default/files/moon.jpg" length="1466218" type="image/jpeg" />
		<guid isPermaLink="false">http://www.nasa.gov/image-feature/moon-rise</guid>
		<pubDate>Tue, 03 Jan 2006 15:04:05 -0700</pubDate>
	</item>
	<item>
		<title>Earth Set</title>
		<link>http://www.nasa.gov/image-feature/earth-set</link>
		<enclosure url="https://www.nasa.gov/sites/default/files/earth.jpg" length="123" type="image/jpeg" />
		<guid>earth-set</guid>
		<pubDate>Wed, 04 Jan 2006 15:04:05 -0700</pubDate>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "NASA IOTD Wallpaper", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := NewParser(fetch.New(5*time.Second, "NASA IOTD Wallpaper"))
	feed, err := parser.Parse(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "NASA Image of the Day", feed.Title)
	require.Len(t, feed.Entries, 2)

	// document order is kept even though the second entry has a later date
	first := feed.Entries[0]
	assert.Equal(t, "Moon Rise", first.Title)
	assert.Equal(t, "http://www.nasa.gov/sites/default/files/moon.jpg", first.Enclosure)
	assert.Equal(t, "http://www.nasa.gov/image-feature/moon-rise", first.GUID)
	assert.False(t, first.Published.IsZero())

	second := feed.Entries[1]
	assert.Equal(t, "Earth Set", second.Title)
	assert.Equal(t, "https://www.nasa.gov/sites/default/files/earth.jpg", second.Enclosure)
	assert.True(t, second.Published.After(first.Published))
}

func TestParser_Parse_NoEnclosure(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Feed</title>
	<item>
		<title>No image here</title>
		<link>http://example.com/post</link>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rssContent))
	}))
	defer server.Close()

	feed, err := NewParser(fetch.New(0, "ua")).Parse(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, feed.Entries, 1)
	assert.Empty(t, feed.Entries[0].Enclosure)
}

func TestParser_Parse_EmptyChannel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>Empty</title></channel></rss>`))
	}))
	defer server.Close()

	feed, err := NewParser(fetch.New(0, "ua")).Parse(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Empty(t, feed.Entries)
	_, ok := feed.Current()
	assert.False(t, ok)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Run("HTTP error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewParser(fetch.New(0, "ua")).Parse(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code 500")
		assert.Equal(t, domain.ErrKindStatus, domain.KindOf(err))
	})

	t.Run("Invalid XML", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not xml"))
		}))
		defer server.Close()

		_, err := NewParser(fetch.New(0, "ua")).Parse(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
		assert.Equal(t, domain.ErrKindParse, domain.KindOf(err))
	})

	t.Run("Mismatched closing tag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<rss version="2.0"><channel><item><enclosure url="http://e.com/a.jpg"/></chan></rss>`))
		}))
		defer server.Close()

		feed, err := NewParser(fetch.New(0, "ua")).Parse(context.Background(), server.URL)
		require.Error(t, err)
		assert.Nil(t, feed)
		assert.Contains(t, err.Error(), "parse feed")
		assert.Equal(t, domain.ErrKindParse, domain.KindOf(err))
	})

	t.Run("Unclosed document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<rss version="2.0"><channel><item><title>cut`))
		}))
		defer server.Close()

		_, err := NewParser(fetch.New(0, "ua")).Parse(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, domain.ErrKindParse, domain.KindOf(err))
	})

	t.Run("Invalid URL", func(t *testing.T) {
		_, err := NewParser(fetch.New(0, "ua")).Parse(context.Background(), "not-a-url")
		require.Error(t, err)
	})
}
