package nlp

import "strings"

// Pipeline bundles sentence segmentation, tokenization, tagging and
// stopword lookup over a shared lexicon. A Pipeline is safe for concurrent
// use; it holds only read-only state.
type Pipeline struct {
	lex *Lexicon
}

// New returns a Pipeline backed by the embedded English lexicon.
func New() *Pipeline { return &Pipeline{lex: defaultLexicon} }

// NewWithLexicon returns a Pipeline over a caller-supplied lexicon.
func NewWithLexicon(lex *Lexicon) *Pipeline { return &Pipeline{lex: lex} }

// IsStopword reports whether w is a common function word. Matching is
// case-insensitive.
func (p *Pipeline) IsStopword(w string) bool {
	_, ok := p.lex.Stopwords[strings.ToLower(w)]
	return ok
}
