// Package attempts records graded quiz submissions so results can be
// reviewed later. Generated quizzes themselves are never persisted;
// only the outcome of grading one is.
package attempts

import (
	"context"
	"errors"

	"github.com/Sambhav234/Quiz-Generator/internal/quiz"
)

var ErrNotFound = errors.New("attempt not found")

// Attempt is one graded submission.
type Attempt struct {
	ID         string              `json:"id"`
	Subject    string              `json:"subject"`
	SourceType string              `json:"source_type,omitempty"` // text|news|paper
	SourceID   string              `json:"source_id,omitempty"`
	Score      float64             `json:"score"`
	Correct    int                 `json:"correct"`
	Total      int                 `json:"total"`
	Results    []quiz.AnswerResult `json:"results"`
	CreatedAt  int64               `json:"created_at"`
}

type ListOpts struct {
	Subject string // filter by submitting user
	Limit   int    // <=0 means the default page size
	Offset  int
}

type Store interface {
	Record(ctx context.Context, a Attempt) error
	Get(ctx context.Context, id string) (Attempt, error)
	List(ctx context.Context, opts ListOpts) ([]Attempt, error)
	Delete(ctx context.Context, id string) error
	Purge(ctx context.Context) error
}
