// Package transport provides the HTTP client used to download upstream
// feed documents.
package transport

import (
	"context"
	"io"
	"net/http"

	"github.com/Diavel78/product-trainer/pkg/constants"
	"github.com/Diavel78/product-trainer/pkg/errors"
)

// DefaultTimeout is the default per-request timeout for feed downloads.
var DefaultTimeout = constants.FeedFetchTimeout

// Client downloads feed documents over HTTP.
type Client struct {
	http *http.Client
}

// New creates a client with the default feed timeout.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: DefaultTimeout},
	}
}

// NewWithHTTPClient creates a client over a caller-supplied http.Client.
// Used by tests to point at an httptest server or stub transport.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		return New()
	}
	return &Client{http: httpClient}
}

// Get downloads the document at url and returns its full body. Any
// non-2xx status is an error; feed endpoints serve complete documents,
// so there is no partial-read handling.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapIO("request", url, err)
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapIO("fetch", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewFeedError("", url, "unexpected status "+resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", url, err)
	}
	return body, nil
}
