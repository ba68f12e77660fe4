package quiz

import "github.com/Sambhav234/Quiz-Generator/internal/nlp"

// KeyTerms extracts candidate answer spans from sentence. Numeral
// substrings come first, in text order; then tokens tagged as proper
// nouns (longer than two characters) and cardinal numbers, in tagging
// order. A cardinal is skipped when its exact string is already among the
// collected terms; proper nouns are never deduplicated. The result may be
// empty.
func (g *Generator) KeyTerms(sentence string) []KeyTerm {
	var terms []KeyTerm
	for _, m := range numeralRe.FindAllString(sentence, -1) {
		terms = append(terms, KeyTerm{Value: m, Kind: TermNumber})
	}
	for _, tt := range g.lang.Tag(g.lang.Words(sentence)) {
		switch tt.Tag {
		case nlp.TagProperNoun, nlp.TagProperNounPlural:
			if len(tt.Text) > 2 {
				terms = append(terms, KeyTerm{Value: tt.Text, Kind: TermProperNoun})
			}
		case nlp.TagCardinal:
			if !hasTermValue(terms, tt.Text) {
				terms = append(terms, KeyTerm{Value: tt.Text, Kind: TermNumber})
			}
		}
	}
	return terms
}

func hasTermValue(terms []KeyTerm, value string) bool {
	for _, t := range terms {
		if t.Value == value {
			return true
		}
	}
	return false
}
