// Package feeds fetches quiz source material from external services:
// news articles from NewsAPI with public RSS feeds as fallback, and
// research paper abstracts from the arXiv Atom API.
package feeds

// Article is one news item, normalized across NewsAPI and RSS sources.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
}

// Paper is one arXiv result. ID is the bare arXiv identifier without the
// URL prefix.
type Paper struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Abstract   string   `json:"abstract"`
	Authors    []string `json:"authors"`
	Published  string   `json:"published"`
	URL        string   `json:"url"`
	Categories []string `json:"categories"`
}
