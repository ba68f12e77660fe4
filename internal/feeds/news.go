package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

type newsAPIResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// LatestNews returns up to limit articles for category. NewsAPI serves
// when a key is configured; on any NewsAPI failure, or without a key, the
// category's RSS feed serves instead. The error reports only a total
// failure of both paths; an empty result with nil error means the sources
// answered but had nothing.
func (c *Client) LatestNews(ctx context.Context, category string, limit int) ([]Article, error) {
	if limit < 0 {
		limit = 0
	}
	if c.NewsKey != "" {
		articles, err := c.newsAPI(ctx, category, limit)
		if err == nil {
			return articles, nil
		}
	}
	return c.newsRSS(ctx, category, limit)
}

func (c *Client) newsAPI(ctx context.Context, category string, limit int) ([]Article, error) {
	q := url.Values{
		"apiKey":   {c.NewsKey},
		"category": {category},
		"pageSize": {strconv.Itoa(limit)},
		"country":  {"us"},
	}
	body, err := c.get(ctx, c.NewsURL+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("newsapi: %w", err)
	}
	var parsed newsAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("newsapi: decode response: %w", err)
	}
	articles := make([]Article, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		content := a.Content
		if content == "" {
			content = a.Description
		}
		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}
		articles = append(articles, Article{
			Title:       a.Title,
			Description: a.Description,
			Content:     content,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      source,
		})
	}
	return articles, nil
}
