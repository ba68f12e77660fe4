package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Sambhav234/Quiz-Generator/internal/feeds"
	"github.com/Sambhav234/Quiz-Generator/internal/quiz"
)

// Fetcher is the slice of the feeds client the handlers need.
type Fetcher interface {
	LatestNews(ctx context.Context, category string, limit int) ([]feeds.Article, error)
	Papers(ctx context.Context, query string, maxResults int) ([]feeds.Paper, error)
}

// generate-from-* fetches a page of candidates and picks one by index.
const sourceFetchSize = 10

// GET /api/news?category=technology&limit=5
func NewsHandler(f Fetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		if category == "" {
			category = "technology"
		}
		limit := parseIntDefault(r.URL.Query().Get("limit"), 5)

		articles, err := f.LatestNews(r.Context(), category, limit)
		if err != nil {
			respondError(w, http.StatusBadGateway, "news fetch failed")
			return
		}
		if articles == nil {
			articles = []feeds.Article{}
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"articles": articles,
			"count":    len(articles),
		})
	}
}

// GET /api/papers?query=machine+learning&limit=5
func PapersHandler(f Fetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("query"))
		if query == "" {
			query = "machine learning"
		}
		limit := parseIntDefault(r.URL.Query().Get("limit"), 5)

		papers, err := f.Papers(r.Context(), query, limit)
		if err != nil {
			respondError(w, http.StatusBadGateway, "papers fetch failed")
			return
		}
		if papers == nil {
			papers = []feeds.Paper{}
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"papers":  papers,
			"count":   len(papers),
		})
	}
}

// POST /api/generate-from-news  {"category":"technology","article_id":0,"num_questions":5}
func GenerateFromNewsHandler(f Fetcher, gen QuizEngine, maxQuestions int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Category     string `json:"category"`
			ArticleID    int    `json:"article_id"`
			NumQuestions *int   `json:"num_questions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad json")
			return
		}
		if req.Category == "" {
			req.Category = "technology"
		}

		articles, err := f.LatestNews(r.Context(), req.Category, sourceFetchSize)
		if err != nil {
			respondError(w, http.StatusBadGateway, "news fetch failed")
			return
		}
		if len(articles) == 0 {
			respondError(w, http.StatusNotFound, "no news articles found")
			return
		}
		article := articles[0]
		if req.ArticleID > 0 && req.ArticleID < len(articles) {
			article = articles[req.ArticleID]
		}

		content := article.Title + ". " + article.Content
		questions := gen.Generate(content, clampQuestions(req.NumQuestions, maxQuestions))
		if questions == nil {
			questions = []quiz.Question{}
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"article":   article,
			"questions": questions,
			"count":     len(questions),
		})
	}
}

// POST /api/generate-from-paper  {"query":"machine learning","paper_index":0,"num_questions":5}
func GenerateFromPaperHandler(f Fetcher, gen QuizEngine, maxQuestions int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query        string `json:"query"`
			PaperIndex   int    `json:"paper_index"`
			NumQuestions *int   `json:"num_questions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad json")
			return
		}
		if req.Query == "" {
			req.Query = "machine learning"
		}

		papers, err := f.Papers(r.Context(), req.Query, sourceFetchSize)
		if err != nil {
			respondError(w, http.StatusBadGateway, "papers fetch failed")
			return
		}
		if len(papers) == 0 {
			respondError(w, http.StatusNotFound, "no research papers found")
			return
		}
		paper := papers[0]
		if req.PaperIndex > 0 && req.PaperIndex < len(papers) {
			paper = papers[req.PaperIndex]
		}

		content := paper.Title + ". " + paper.Abstract
		questions := gen.Generate(content, clampQuestions(req.NumQuestions, maxQuestions))
		if questions == nil {
			questions = []quiz.Question{}
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"paper":     paper,
			"questions": questions,
			"count":     len(questions),
		})
	}
}
