// internal/scraper/client.go
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client fetches pages with a fixed per-request deadline. There are no
// retries: a non-200 status or transport failure means the URL is dropped
// by the caller.
type Client struct {
	httpClient *http.Client
	userAgents []string
	current    int
	mu         sync.Mutex
}

// ClientConfig defines the fetcher settings.
type ClientConfig struct {
	Timeout    time.Duration
	UserAgents []string
}

// NewClient creates a page fetcher.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = []string{"qaharvest/1.0"}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgents: cfg.UserAgents,
	}
}

// FetchDocument retrieves a URL and parses the body into a queryable document.
func (c *Client) FetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.nextUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page unavailable: status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// nextUserAgent rotates through the configured user agents.
func (c *Client) nextUserAgent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ua := c.userAgents[c.current]
	c.current = (c.current + 1) % len(c.userAgents)
	return ua
}

// Close releases idle connections.
func (c *Client) Close() {
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
