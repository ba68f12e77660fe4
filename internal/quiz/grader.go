package quiz

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrAnswerMismatch reports a grading call where the number of submitted
// answers differs from the number of questions.
var ErrAnswerMismatch = errors.New("answer count does not match question count")

// AnswerResult is the per-question outcome of a graded submission.
type AnswerResult struct {
	Index         int    `json:"question_index"`
	Prompt        string `json:"question"`
	Submitted     string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// GradeReport summarizes a graded submission. Score is a percentage in
// [0,100] rounded to two decimals, zero when there are no questions.
type GradeReport struct {
	Score   float64        `json:"score"`
	Correct int            `json:"correct"`
	Total   int            `json:"total"`
	Results []AnswerResult `json:"results"`
}

// GradeSubmission scores answers against questions pairwise. Comparison
// is case-insensitive string equality, so boolean and numeric answers
// grade the same way text does. The call is pure: identical inputs yield
// identical reports.
func GradeSubmission(questions []Question, answers []string) (GradeReport, error) {
	if len(answers) != len(questions) {
		return GradeReport{}, fmt.Errorf("%w: %d answers for %d questions",
			ErrAnswerMismatch, len(answers), len(questions))
	}
	report := GradeReport{
		Total:   len(questions),
		Results: make([]AnswerResult, 0, len(questions)),
	}
	for i, q := range questions {
		correct := strings.EqualFold(answers[i], q.CorrectAnswer)
		if correct {
			report.Correct++
		}
		report.Results = append(report.Results, AnswerResult{
			Index:         i,
			Prompt:        q.Prompt,
			Submitted:     answers[i],
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
			Explanation:   q.Explanation,
		})
	}
	if report.Total > 0 {
		report.Score = math.Round(float64(report.Correct)/float64(report.Total)*10000) / 100
	}
	return report, nil
}
