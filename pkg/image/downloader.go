package image

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/iotd/pkg/fetch"
)

// Downloader gets raw image bytes, content type is not inspected
type Downloader struct {
	client *fetch.Client
}

// NewDownloader makes a Downloader using the shared http client
func NewDownloader(client *fetch.Client) *Downloader {
	return &Downloader{client: client}
}

// Download reads the complete image body
func (d *Downloader) Download(ctx context.Context, imageURL string) ([]byte, error) {
	lgr.Printf("[INFO] downloading image: %s", imageURL)
	data, err := d.client.GetBytes(ctx, imageURL, fetch.KindImage)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	lgr.Printf("[DEBUG] downloaded %d bytes from %s", len(data), imageURL)
	return data, nil
}
