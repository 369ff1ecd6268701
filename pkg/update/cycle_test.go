package update

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/iotd/pkg/domain"
	"github.com/umputun/iotd/pkg/update/mocks"
)

type cycleMocks struct {
	parser     *mocks.ParserMock
	downloader *mocks.DownloaderMock
	store      *mocks.StoreMock
	wallpaper  *mocks.WallpaperMock
}

// newTestCycle makes a cycle with mocks answering a successful run for the given feed
func newTestCycle(feed *domain.Feed) (*Cycle, *cycleMocks) {
	m := &cycleMocks{
		parser: &mocks.ParserMock{ParseFunc: func(ctx context.Context, url string) (*domain.Feed, error) {
			return feed, nil
		}},
		downloader: &mocks.DownloaderMock{DownloadFunc: func(ctx context.Context, url string) ([]byte, error) {
			return []byte("image"), nil
		}},
		store: &mocks.StoreMock{SaveFunc: func(data []byte) (string, error) {
			return "/tmp/nasa-iotd.jpg", nil
		}},
		wallpaper: &mocks.WallpaperMock{SetFunc: func(ctx context.Context, path string) error {
			return nil
		}},
	}
	c := NewCycle(Params{
		FeedURL:    "https://example.com/feed.rss",
		Parser:     m.parser,
		Downloader: m.downloader,
		Store:      m.store,
		Wallpaper:  m.wallpaper,
	})
	return c, m
}

func TestCycle_Run(t *testing.T) {
	feed := &domain.Feed{Entries: []domain.Entry{
		{Title: "newest", Enclosure: "http://example.com/first.jpg"},
		{Title: "older", Enclosure: "http://example.com/second.jpg"},
		{Title: "oldest", Enclosure: "http://example.com/third.jpg"},
	}}
	c, m := newTestCycle(feed)

	res, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/feed.rss", res.FeedURL)
	assert.Equal(t, "https://example.com/first.jpg", res.ImageURL)
	assert.Equal(t, "/tmp/nasa-iotd.jpg", res.Path)
	assert.Equal(t, 5, res.Size)
	require.NoError(t, res.WallpaperErr)

	require.Len(t, m.parser.ParseCalls(), 1)
	assert.Equal(t, "https://example.com/feed.rss", m.parser.ParseCalls()[0].URL)
	require.Len(t, m.downloader.DownloadCalls(), 1)
	assert.Equal(t, "https://example.com/first.jpg", m.downloader.DownloadCalls()[0].URL)
	require.Len(t, m.store.SaveCalls(), 1)
	assert.Equal(t, []byte("image"), m.store.SaveCalls()[0].Data)
	require.Len(t, m.wallpaper.SetCalls(), 1)
	assert.Equal(t, "/tmp/nasa-iotd.jpg", m.wallpaper.SetCalls()[0].Path)
}

func TestCycle_Run_NoEntries(t *testing.T) {
	c, m := newTestCycle(&domain.Feed{Title: "empty"})

	_, err := c.Run(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrNoItem)
	assert.Equal(t, domain.ErrKindAbsence, domain.KindOf(err))
	assert.Empty(t, m.downloader.DownloadCalls())
	assert.Empty(t, m.store.SaveCalls())
	assert.Empty(t, m.wallpaper.SetCalls())
}

func TestCycle_Run_BadEnclosure(t *testing.T) {
	for _, enclosure := range []string{"", "/relative.jpg", "http://[::1/img.jpg"} {
		c, m := newTestCycle(&domain.Feed{Entries: []domain.Entry{{Enclosure: enclosure}}})
		_, err := c.Run(context.Background())
		require.Error(t, err, "enclosure %q", enclosure)
		assert.Equal(t, domain.ErrKindParse, domain.KindOf(err))
		assert.Empty(t, m.downloader.DownloadCalls())
	}
}

func TestCycle_Run_StepFailures(t *testing.T) {
	feed := &domain.Feed{Entries: []domain.Entry{{Enclosure: "https://example.com/img.jpg"}}}

	t.Run("feed failure stops everything", func(t *testing.T) {
		c, m := newTestCycle(feed)
		m.parser.ParseFunc = func(ctx context.Context, url string) (*domain.Feed, error) {
			return nil, domain.NewCycleError(domain.ErrKindStatus, "fetch url", &domain.StatusError{URL: url, Code: 503})
		}
		_, err := c.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, domain.ErrKindStatus, domain.KindOf(err))
		assert.Empty(t, m.downloader.DownloadCalls())
	})

	t.Run("download failure skips write and wallpaper", func(t *testing.T) {
		c, m := newTestCycle(feed)
		m.downloader.DownloadFunc = func(ctx context.Context, url string) ([]byte, error) {
			return nil, domain.NewCycleError(domain.ErrKindStatus, "fetch url", &domain.StatusError{URL: url, Code: 404})
		}
		res, err := c.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, domain.ErrKindStatus, domain.KindOf(err))
		assert.Equal(t, "https://example.com/img.jpg", res.ImageURL)
		assert.Empty(t, m.store.SaveCalls())
		assert.Empty(t, m.wallpaper.SetCalls())
	})

	t.Run("write failure skips wallpaper", func(t *testing.T) {
		c, m := newTestCycle(feed)
		m.store.SaveFunc = func(data []byte) (string, error) {
			return "", domain.NewCycleError(domain.ErrKindIO, "open image file", errors.New("read-only file system"))
		}
		_, err := c.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, domain.ErrKindIO, domain.KindOf(err))
		assert.Empty(t, m.wallpaper.SetCalls())
	})

	t.Run("wallpaper failure is not a cycle failure", func(t *testing.T) {
		c, m := newTestCycle(feed)
		m.wallpaper.SetFunc = func(ctx context.Context, path string) error {
			return errors.New("no desktop session")
		}
		res, err := c.Run(context.Background())
		require.NoError(t, err)
		require.Error(t, res.WallpaperErr)
		assert.Equal(t, "no desktop session", res.WallpaperErr.Error())
		assert.Equal(t, "/tmp/nasa-iotd.jpg", res.Path)
		assert.Len(t, m.wallpaper.SetCalls(), 1)
	})
}
