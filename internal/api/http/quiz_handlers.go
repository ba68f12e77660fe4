package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sambhav234/Quiz-Generator/internal/attempts"
	"github.com/Sambhav234/Quiz-Generator/internal/quiz"
	"github.com/Sambhav234/Quiz-Generator/internal/rbac"
)

// QuizEngine is the slice of the generator the handlers need.
type QuizEngine interface {
	Generate(text string, numQuestions int) []quiz.Question
}

const defaultNumQuestions = 5

// clampQuestions resolves the requested question count: absent means the
// default, and maxQuestions caps runaway requests.
func clampQuestions(requested *int, maxQuestions int) int {
	n := defaultNumQuestions
	if requested != nil {
		n = *requested
	}
	if maxQuestions > 0 && n > maxQuestions {
		n = maxQuestions
	}
	return n
}

// POST /api/generate-quiz  {"content":"...","num_questions":5,"type":"news","source_id":"..."}
func GenerateQuizHandler(gen QuizEngine, maxQuestions int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content      string `json:"content"`
			NumQuestions *int   `json:"num_questions"`
			SourceType   string `json:"type"`
			SourceID     string `json:"source_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad json")
			return
		}
		if strings.TrimSpace(req.Content) == "" {
			respondError(w, http.StatusBadRequest, "no content provided")
			return
		}
		if req.SourceType == "" {
			req.SourceType = "news"
		}

		questions := gen.Generate(req.Content, clampQuestions(req.NumQuestions, maxQuestions))
		if questions == nil {
			questions = []quiz.Question{}
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"questions":   questions,
			"count":       len(questions),
			"source_type": req.SourceType,
			"source_id":   req.SourceID,
		})
	}
}

// POST /api/submit-quiz  {"questions":[...],"answers":["..."]}
//
// The graded report is returned either way; recording it in the history
// store additionally yields an attempt_id.
func SubmitQuizHandler(store attempts.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Questions  []quiz.Question `json:"questions"`
			Answers    []string        `json:"answers"`
			SourceType string          `json:"source_type"`
			SourceID   string          `json:"source_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "bad json")
			return
		}
		report, err := quiz.GradeSubmission(req.Questions, req.Answers)
		if err != nil {
			respondError(w, http.StatusBadRequest, "answers count mismatch")
			return
		}

		out := map[string]any{
			"success": true,
			"score":   report.Score,
			"correct": report.Correct,
			"total":   report.Total,
			"results": report.Results,
		}

		subject := rbac.SubjectFromContext(r.Context())
		if subject == "" {
			subject = "anon"
		}
		att := attempts.Attempt{
			ID:         uuid.NewString(),
			Subject:    subject,
			SourceType: req.SourceType,
			SourceID:   req.SourceID,
			Score:      report.Score,
			Correct:    report.Correct,
			Total:      report.Total,
			Results:    report.Results,
			CreatedAt:  time.Now().Unix(),
		}
		if err := store.Record(r.Context(), att); err != nil {
			// grading succeeded; history is best-effort
			log.Printf("record attempt %s: %v", att.ID, err)
		} else {
			out["attempt_id"] = att.ID
		}
		respondJSON(w, http.StatusOK, out)
	}
}
