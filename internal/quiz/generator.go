package quiz

import (
	"github.com/Sambhav234/Quiz-Generator/internal/nlp"
)

// Language is the text-analysis capability the generator consumes:
// sentence segmentation, word tokenization, part-of-speech tagging and
// stopword lookup. *nlp.Pipeline satisfies it.
type Language interface {
	Sentences(text string) []string
	Words(text string) []string
	Tag(tokens []string) []nlp.TaggedToken
	IsStopword(w string) bool
}

// Generator builds quiz questions from free text. A Generator holds no
// per-call state; it is safe for concurrent use whenever its Rand is.
type Generator struct {
	lang    Language
	rng     Rand
	signals []signal
	synths  map[QuestionKind]synthFunc
	kinds   []QuestionKind
}

type synthFunc func(sentence string) (Question, bool)

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the default shared randomness source.
func WithRand(r Rand) Option { return func(g *Generator) { g.rng = r } }

// WithLanguage replaces the default embedded-lexicon pipeline.
func WithLanguage(l Language) Option { return func(g *Generator) { g.lang = l } }

// NewGenerator returns a Generator wired with the default language
// pipeline and randomness source, then applies opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		lang: nlp.New(),
		rng:  globalRand{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.signals = buildSignals(g.lang)
	g.synths = map[QuestionKind]synthFunc{
		MultipleChoice: g.synthesizeMultipleChoice,
		TrueFalse:      g.synthesizeTrueFalse,
		FillBlank:      g.synthesizeFillBlank,
	}
	g.kinds = []QuestionKind{MultipleChoice, TrueFalse, FillBlank}
	return g
}

// Generate produces up to numQuestions questions from text. It ranks
// sentences, then walks the top ones picking a question type uniformly at
// random for each; sentences a synthesizer cannot use are skipped. The
// result may be shorter than requested when the text lacks extractable
// content, and is empty for empty text or a non-positive count.
func (g *Generator) Generate(text string, numQuestions int) []Question {
	if numQuestions <= 0 {
		return nil
	}
	sentences := g.KeySentences(text, numQuestions*3)
	if len(sentences) == 0 {
		return nil
	}
	limit := numQuestions * 2
	if limit > len(sentences) {
		limit = len(sentences)
	}
	questions := make([]Question, 0, numQuestions)
	for _, sentence := range sentences[:limit] {
		if len(questions) >= numQuestions {
			break
		}
		kind := g.kinds[g.rng.IntN(len(g.kinds))]
		if q, ok := g.synths[kind](sentence); ok {
			questions = append(questions, q)
		}
	}
	if len(questions) > numQuestions {
		questions = questions[:numQuestions]
	}
	return questions
}
