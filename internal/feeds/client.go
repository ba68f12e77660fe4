package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultNewsURL  = "https://newsapi.org/v2/top-headlines"
	defaultArxivURL = "http://export.arxiv.org/api/query"
)

// defaultRSSFeeds maps news categories to public fallback feeds. Unknown
// categories use the general feed.
func defaultRSSFeeds() map[string]string {
	return map[string]string{
		"technology": "https://feeds.feedburner.com/oreilly/radar",
		"science":    "https://rss.cnn.com/rss/edition.rss",
		"general":    "https://feeds.bbci.co.uk/news/rss.xml",
	}
}

// Client fetches articles and papers. The URL fields default to the
// public services and exist so tests can point at local servers.
type Client struct {
	HTTP     *http.Client
	NewsKey  string
	NewsURL  string
	ArxivURL string
	RSSFeeds map[string]string
}

// NewClient returns a Client with the given NewsAPI key (empty disables
// NewsAPI and goes straight to RSS) and a per-request timeout.
func NewClient(newsKey string, timeout time.Duration) *Client {
	return &Client{
		HTTP:     &http.Client{Timeout: timeout},
		NewsKey:  newsKey,
		NewsURL:  defaultNewsURL,
		ArxivURL: defaultArxivURL,
		RSSFeeds: defaultRSSFeeds(),
	}
}

// get issues a GET and returns the body for 2xx responses. The error
// carries the status but not the URL, which may hold credentials.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
