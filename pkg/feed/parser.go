package feed

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/iotd/pkg/domain"
	"github.com/umputun/iotd/pkg/fetch"
)

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client *fetch.Client
}

// NewParser creates a new feed parser using the shared http client
func NewParser(client *fetch.Client) *Parser {
	return &Parser{client: client}
}

// Parse fetches a feed from the given URL and converts it to domain.Feed.
// Entries keep the order of the feed document.
func (p *Parser) Parse(ctx context.Context, url string) (*domain.Feed, error) {
	lgr.Printf("[INFO] downloading feed: %s", url)
	body, err := p.client.Get(ctx, url, fetch.KindFeed)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, domain.NewCycleError(domain.ErrKindTransport, "read feed", err)
	}

	lgr.Printf("[INFO] parsing feed")
	if err = checkWellFormed(data); err != nil {
		return nil, domain.NewCycleError(domain.ErrKindParse, "parse feed", err)
	}
	feed, err := gofeed.NewParser().ParseString(string(data))
	if err != nil {
		return nil, domain.NewCycleError(domain.ErrKindParse, "parse feed", err)
	}

	result := &domain.Feed{
		Title:   feed.Title,
		Entries: make([]domain.Entry, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		entry := domain.Entry{
			GUID:  item.GUID,
			Title: item.Title,
			Link:  item.Link,
		}
		if len(item.Enclosures) > 0 && item.Enclosures[0] != nil {
			entry.Enclosure = item.Enclosures[0].URL
		}

		if item.PublishedParsed != nil {
			entry.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = *item.UpdatedParsed
		}

		result.Entries = append(result.Entries, entry)
	}

	lgr.Printf("[DEBUG] feed %q has %d entries", result.Title, len(result.Entries))
	return result, nil
}

// checkWellFormed walks the document with a strict xml decoder, gofeed itself tolerates mismatched tags
func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) { return input, nil }
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("malformed xml: %w", err)
		}
	}
}
