// Package fetch is the transport collaborator for the legacy game-server
// proxy. It retrieves raw response bodies and surfaces transport failures
// before any decoding happens; the decoders themselves never see an error.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/levelgate/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout            = 10 * time.Second
	levelsPath                = "/levels"
	hallOfFamePath            = "/halloffame"
	pageQueryParam            = "page"
	maxBodyBytes              = 4 << 20 // legacy payloads are small; 4 MiB is generous
	nanosecondsPerMillisecond = 1e6
)

// Client fetches raw payloads from the upstream proxy.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout bounds a single upstream request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a Client for the given upstream base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LevelPage retrieves the raw level-listing body for a page.
func (c *Client) LevelPage(ctx context.Context, page int) (string, error) {
	url := c.baseURL + levelsPath + "?" + pageQueryParam + "=" + strconv.Itoa(page)
	return c.get(ctx, url)
}

// HallOfFame retrieves the raw hall-of-fame body.
func (c *Client) HallOfFame(ctx context.Context) (string, error) {
	return c.get(ctx, c.baseURL+hallOfFamePath)
}

// get performs the request and returns the body as text. Non-2xx responses
// become ErrUpstreamStatus so callers fail before decoding.
func (c *Client) get(ctx context.Context, url string) (string, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordFetchError()
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordFetchError()
		return "", fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.RecordFetchError()
		return "", fmt.Errorf("read response body: %w", err)
	}

	metrics.RecordFetchDuration(float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond)
	return string(body), nil
}
