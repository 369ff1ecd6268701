package fetch

import "net/http"

// Kind of the requested resource, selects the Accept header
type Kind int

// enum of resource kinds
const (
	KindFeed Kind = iota
	KindImage
)

// addHeaders sets content negotiation headers for the resource kind
func addHeaders(req *http.Request, kind Kind) {
	switch kind {
	case KindFeed:
		req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	case KindImage:
		req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")
	}
	// upstream caches may serve yesterday's feed
	req.Header.Set("Cache-Control", "no-cache")
}
