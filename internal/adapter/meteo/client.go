// Package meteo fetches raw station documents over HTTP and caches
// successful snapshots for a bounded time window.
package meteo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/agroclim/eto-service/internal/domain"
)

// userAgent mimics a desktop browser; the station pages are public but
// reject obvious bot agents.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client performs one blocking retrieval per call with a fixed timeout.
// Failures are never retried; the caller falls back to manual entry.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a station page fetcher with the given fixed timeout.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch retrieves the raw document at target. Any transport error, timeout
// or non-200 status is reported as a *domain.RetrievalError carrying the
// underlying cause.
func (c *Client) Fetch(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &domain.RetrievalError{Target: target, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.RetrievalError{Target: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.RetrievalError{Target: target, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.RetrievalError{Target: target, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug("station page fetched", "target", target, "bytes", len(body))
	return string(body), nil
}
