package nlp

import (
	"strings"
	"unicode"
)

// Sentences splits text into sentences. A run of ".", "!" or "?" ends a
// sentence unless the period belongs to a decimal number, a single-letter
// initial, a dotted initialism such as "U.S." or a known abbreviation.
// Closing quotes and brackets stay attached to the sentence they end.
// Sentences are trimmed of surrounding whitespace; empty ones are dropped.
func (p *Pipeline) Sentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		end := i
		for end+1 < len(runes) && isTerminator(runes[end+1]) {
			end++
		}
		if runes[i] == '.' && end == i && !p.periodEndsSentence(runes, i) {
			continue
		}
		for end+1 < len(runes) && isCloser(runes[end+1]) {
			end++
		}
		if !boundaryFollows(runes, end) {
			i = end
			continue
		}
		if s := strings.TrimSpace(string(runes[start : end+1])); s != "" {
			out = append(out, s)
		}
		start = end + 1
		i = end
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}

func isTerminator(r rune) bool { return r == '.' || r == '!' || r == '?' }

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '’', '”':
		return true
	}
	return false
}

// periodEndsSentence decides whether a lone period at index i is a real
// sentence boundary, by inspecting the token immediately before it.
func (p *Pipeline) periodEndsSentence(runes []rune, i int) bool {
	if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
		return false // decimal point
	}
	j := i
	for j > 0 && (unicode.IsLetter(runes[j-1]) || runes[j-1] == '.') {
		j--
	}
	word := string(runes[j:i])
	if strings.Contains(word, ".") {
		return false // dotted initialism
	}
	if len([]rune(word)) == 1 && unicode.IsUpper(runes[j]) {
		return false // personal initial
	}
	if _, ok := p.lex.Abbreviations[strings.ToLower(word)]; ok {
		return false
	}
	return true
}

// boundaryFollows reports whether the text after the terminator run ending
// at end looks like the start of a new sentence.
func boundaryFollows(runes []rune, end int) bool {
	k := end + 1
	for k < len(runes) && unicode.IsSpace(runes[k]) {
		k++
	}
	if k == len(runes) {
		return true
	}
	if k == end+1 {
		return false // no whitespace after the terminator
	}
	r := runes[k]
	switch {
	case unicode.IsUpper(r) || unicode.IsDigit(r):
		return true
	case r == '"' || r == '\'' || r == '(' || r == '[' || r == '‘' || r == '“':
		return true
	}
	return false
}
