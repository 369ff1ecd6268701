// Package fetch provides the http client shared by feed and image downloads.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/umputun/iotd/pkg/domain"
)

// Client makes GET requests identifying itself with a fixed user agent
type Client struct {
	client    *http.Client
	userAgent string
}

// New makes a Client. Zero timeout means no timeout at all, a hung request blocks the caller.
func New(timeout time.Duration, userAgent string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// NewWithHTTPClient makes a Client on top of the given http client
func NewWithHTTPClient(client *http.Client, userAgent string) *Client {
	return &Client{client: client, userAgent: userAgent}
}

// Get requests the url and returns the response body for a 2xx status.
// Caller must close the body. Errors are domain.CycleError of transport or status kind.
func (c *Client) Get(ctx context.Context, url string, kind Kind) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, domain.NewCycleError(domain.ErrKindParse, "create request", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	addHeaders(req, kind)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewCycleError(domain.ErrKindTransport, "fetch url", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, domain.NewCycleError(domain.ErrKindStatus, "fetch url", &domain.StatusError{URL: url, Code: resp.StatusCode})
	}

	return resp.Body, nil
}

// GetBytes requests the url and reads the whole response body
func (c *Client) GetBytes(ctx context.Context, url string, kind Kind) ([]byte, error) {
	body, err := c.Get(ctx, url, kind)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, domain.NewCycleError(domain.ErrKindTransport, "read body", fmt.Errorf("%s: %w", url, err))
	}
	return data, nil
}
