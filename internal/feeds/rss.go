package feeds

import (
	"context"
	"encoding/xml"
	"fmt"
)

type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
}

// newsRSS fetches the fallback feed for category, general when the
// category has no feed of its own.
func (c *Client) newsRSS(ctx context.Context, category string, limit int) ([]Article, error) {
	feedURL, ok := c.RSSFeeds[category]
	if !ok {
		feedURL = c.RSSFeeds["general"]
	}
	body, err := c.get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("rss %s: %w", category, err)
	}
	var doc rssDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("rss %s: decode feed: %w", category, err)
	}
	items := doc.Channel.Items
	if len(items) > limit {
		items = items[:limit]
	}
	articles := make([]Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Description,
			URL:         item.Link,
			PublishedAt: item.PubDate,
			Source:      "RSS Feed",
		})
	}
	return articles, nil
}
