// Package image resolves, downloads and stores the featured image.
package image

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/umputun/iotd/pkg/domain"
)

// ResolveURL parses an enclosure url and rewrites the http scheme to https.
// Any other scheme is kept as is. Empty, malformed or relative urls are parse errors.
func ResolveURL(enclosure string) (string, error) {
	if enclosure == "" {
		return "", domain.NewCycleError(domain.ErrKindParse, "resolve image url", errors.New("entry has no enclosure"))
	}

	u, err := url.Parse(enclosure)
	if err != nil {
		return "", domain.NewCycleError(domain.ErrKindParse, "resolve image url", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", domain.NewCycleError(domain.ErrKindParse, "resolve image url", fmt.Errorf("relative url %q", enclosure))
	}

	if u.Scheme == "http" {
		u.Scheme = "https"
	}
	return u.String(), nil
}
