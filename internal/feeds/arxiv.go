package feeds

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
	Authors   []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Links []struct {
		Href string `xml:"href,attr"`
		Rel  string `xml:"rel,attr"`
	} `xml:"link"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// Papers searches arXiv across all fields for query and returns up to
// maxResults entries, newest submissions first.
func (c *Client) Papers(ctx context.Context, query string, maxResults int) ([]Paper, error) {
	if maxResults < 0 {
		maxResults = 0
	}
	q := url.Values{
		"search_query": {"all:" + query},
		"start":        {"0"},
		"max_results":  {strconv.Itoa(maxResults)},
		"sortBy":       {"submittedDate"},
		"sortOrder":    {"descending"},
	}
	body, err := c.get(ctx, c.ArxivURL+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("arxiv: %w", err)
	}
	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("arxiv: decode feed: %w", err)
	}
	papers := make([]Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		paper := Paper{
			ID:        entry.ID[strings.LastIndex(entry.ID, "/")+1:],
			Title:     strings.TrimSpace(entry.Title),
			Abstract:  strings.TrimSpace(htmlTagRe.ReplaceAllString(entry.Summary, "")),
			Published: entry.Published,
			URL:       entry.ID,
		}
		if len(entry.Links) > 0 {
			paper.URL = entry.Links[0].Href
		}
		for _, link := range entry.Links {
			if link.Rel == "alternate" {
				paper.URL = link.Href
				break
			}
		}
		for _, a := range entry.Authors {
			paper.Authors = append(paper.Authors, a.Name)
		}
		for _, cat := range entry.Categories {
			paper.Categories = append(paper.Categories, cat.Term)
		}
		papers = append(papers, paper)
	}
	return papers, nil
}
