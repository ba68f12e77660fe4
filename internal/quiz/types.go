// Package quiz generates quiz questions from free text and grades
// submitted answers. Generation is heuristic: sentences are ranked by a
// signal table, candidate answers are pulled out as key terms, and one of
// three synthesizers turns a sentence into a question. There is no
// semantic understanding of the content; usefulness of the output tracks
// the quality of the heuristics, not correctness of facts.
package quiz

// QuestionKind discriminates the three question variants. The values
// double as the wire strings used by the HTTP API.
type QuestionKind string

const (
	MultipleChoice QuestionKind = "multiple_choice"
	TrueFalse      QuestionKind = "true_false"
	FillBlank      QuestionKind = "fill_blank"
)

// Blank is the placeholder substituted for a key term in prompts.
const Blank = "_____"

// Question is one generated quiz item. Options is populated only for
// multiple-choice questions and then always contains CorrectAnswer
// exactly once. A Question is immutable once returned; the generator
// keeps no reference to it.
type Question struct {
	Kind          QuestionKind `json:"type"`
	Prompt        string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation"`
}

// TermKind classifies a key term.
type TermKind string

const (
	TermNumber     TermKind = "number"
	TermProperNoun TermKind = "proper_noun"
)

// KeyTerm is a candidate answer span extracted from a sentence.
type KeyTerm struct {
	Value string
	Kind  TermKind
}

// ScoredSentence pairs a sentence with its quiz-worthiness score.
type ScoredSentence struct {
	Text  string
	Score int
}
