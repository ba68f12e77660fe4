package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

// TaggedToken is a token paired with its part-of-speech tag. The tagger
// emits a small subset of the Penn Treebank tag set.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tags the rest of the engine branches on.
const (
	TagProperNoun       = "NNP"
	TagProperNounPlural = "NNPS"
	TagCardinal         = "CD"
)

var numericShapeRe = regexp.MustCompile(`^\d+(?:[.,]\d+)*$`)

// Tag assigns part-of-speech tags with lexicon lookups and shape
// heuristics. Closed-class words keep their class even when capitalized,
// so a sentence-leading "The" never reads as a proper noun. The tagger has
// no dictionary beyond the lexicon; content words are classified by
// capitalization and suffix alone.
func (p *Pipeline) Tag(tokens []string) []TaggedToken {
	out := make([]TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TaggedToken{Text: tok, Tag: p.tagOne(tok)})
	}
	return out
}

func (p *Pipeline) tagOne(tok string) string {
	lower := strings.ToLower(tok)
	switch {
	case strings.HasPrefix(tok, "'") || strings.HasPrefix(tok, "’"):
		return tagClitic(lower)
	case numericShapeRe.MatchString(tok):
		return TagCardinal
	case !IsWordToken(tok):
		return tok // punctuation tags as itself, Treebank style
	}
	if _, ok := p.lex.NumberWords[lower]; ok {
		return TagCardinal
	}
	if tag, ok := p.lex.ClosedClass[lower]; ok {
		return tag
	}
	if _, ok := p.lex.Stopwords[lower]; ok {
		return tagBySuffix(lower)
	}
	runes := []rune(tok)
	if unicode.IsUpper(runes[0]) {
		if len(runes) > 3 && strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") {
			return TagProperNounPlural
		}
		return TagProperNoun
	}
	return tagBySuffix(lower)
}

func tagBySuffix(lower string) string {
	switch {
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return "VBG"
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return "VBD"
	case strings.HasSuffix(lower, "ly") && len(lower) > 3:
		return "RB"
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 3:
		return "NNS"
	default:
		return "NN"
	}
}

func tagClitic(lower string) string {
	switch strings.TrimLeft(lower, "'’") {
	case "s":
		return "POS"
	case "t":
		return "RB"
	case "ll", "d":
		return "MD"
	default:
		return "VBP"
	}
}
