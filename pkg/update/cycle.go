// Package update runs one update cycle: fetch the feed, pick the newest entry,
// download its image, store it and apply it as wallpaper.
package update

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/iotd/pkg/domain"
	"github.com/umputun/iotd/pkg/image"
)

//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/downloader.go -pkg mocks -skip-ensure -fmt goimports . Downloader
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/wallpaper.go -pkg mocks -skip-ensure -fmt goimports . Wallpaper

// Parser fetches and parses the feed
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.Feed, error)
}

// Downloader fetches raw image bytes
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Store persists the image and returns its path
type Store interface {
	Save(data []byte) (string, error)
}

// Wallpaper applies an image file as desktop background
type Wallpaper interface {
	Set(ctx context.Context, path string) error
}

// Params for NewCycle
type Params struct {
	FeedURL    string
	Parser     Parser
	Downloader Downloader
	Store      Store
	Wallpaper  Wallpaper
}

// Cycle is a single, stateless update attempt. Steps run strictly in order.
type Cycle struct {
	feedURL    string
	parser     Parser
	downloader Downloader
	store      Store
	wallpaper  Wallpaper
}

// NewCycle makes a Cycle from params
func NewCycle(p Params) *Cycle {
	return &Cycle{
		feedURL:    p.FeedURL,
		parser:     p.Parser,
		downloader: p.Downloader,
		store:      p.Store,
		wallpaper:  p.Wallpaper,
	}
}

// Run performs one update. Any failure before the wallpaper step aborts the cycle and is returned
// as a domain.CycleError. Wallpaper failure doesn't fail the cycle, it is logged and returned
// in Result.WallpaperErr.
func (c *Cycle) Run(ctx context.Context) (domain.Result, error) {
	res := domain.Result{FeedURL: c.feedURL}

	feed, err := c.parser.Parse(ctx, c.feedURL)
	if err != nil {
		return res, err
	}

	lgr.Printf("[INFO] getting latest image of the day")
	entry, ok := feed.Current()
	if !ok {
		return res, domain.NewCycleError(domain.ErrKindAbsence, "select entry", domain.ErrNoItem)
	}
	lgr.Printf("[DEBUG] current entry %q, published %v", entry.Title, entry.Published)

	imageURL, err := image.ResolveURL(entry.Enclosure)
	if err != nil {
		return res, err
	}
	res.ImageURL = imageURL

	data, err := c.downloader.Download(ctx, imageURL)
	if err != nil {
		return res, err
	}

	path, err := c.store.Save(data)
	if err != nil {
		return res, err
	}
	res.Path, res.Size = path, len(data)

	res.WallpaperErr = c.applyWallpaper(ctx, path)
	return res, nil
}

// applyWallpaper is best-effort, the error is logged and handed back to the caller only for reporting
func (c *Cycle) applyWallpaper(ctx context.Context, path string) error {
	lgr.Printf("[INFO] setting desktop wallpaper")
	err := c.wallpaper.Set(ctx, path)
	if err != nil {
		lgr.Printf("[WARN] failed to set wallpaper from %s: %v", path, err)
	}
	return err
}
