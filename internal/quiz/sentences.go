package quiz

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Sambhav234/Quiz-Generator/internal/nlp"
)

// Sentences shorter than this are fragments not worth quizzing on.
const minSentenceLen = 20

// signal is one scoring heuristic: a matcher worth a fixed number of
// points. Signals are independent; a sentence's score is the sum of every
// signal that matches it.
type signal struct {
	name   string
	points int
	match  func(sentence string) bool
}

var (
	numeralRe     = regexp.MustCompile(`\d+\.?\d*`)
	quantityRe    = regexp.MustCompile(`(?i)\b(?:percent|million|billion|thousand|hundred)\b`)
	monthRe       = regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\b`)
	attributionRe = regexp.MustCompile(`(?i)\b(?:according to|study shows|research indicates|findings suggest)\b`)
	properSpanRe  = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)
	changeVerbRe  = regexp.MustCompile(`(?i)\b(?:increased|decreased|improved|reduced|discovered|found)\b`)
)

func buildSignals(lang Language) []signal {
	fromRe := func(name string, points int, re *regexp.Regexp) signal {
		return signal{name: name, points: points, match: re.MatchString}
	}
	return []signal{
		fromRe("numeral", 3, numeralRe),
		fromRe("quantity", 2, quantityRe),
		fromRe("month", 2, monthRe),
		fromRe("attribution", 2, attributionRe),
		fromRe("proper-span", 1, properSpanRe),
		fromRe("change-verb", 1, changeVerbRe),
		{name: "content-words", points: 1, match: func(s string) bool {
			return contentWordCount(lang, s) > 5
		}},
	}
}

// contentWordCount counts tokens that are alphanumeric and not stopwords,
// over the lowercased sentence.
func contentWordCount(lang Language, sentence string) int {
	n := 0
	for _, tok := range lang.Words(strings.ToLower(sentence)) {
		if nlp.IsWordToken(tok) && !lang.IsStopword(tok) {
			n++
		}
	}
	return n
}

func (g *Generator) scoreSentence(sentence string) int {
	score := 0
	for _, sig := range g.signals {
		if sig.match(sentence) {
			score += sig.points
		}
	}
	return score
}

// KeySentences ranks the sentences of text by quiz-worthiness and returns
// up to maxSentences of them, highest score first. Ranking is
// deterministic: score descending, original order on ties. Sentences that
// match no signal score 0 but stay eligible.
func (g *Generator) KeySentences(text string, maxSentences int) []string {
	var scored []ScoredSentence
	for _, s := range g.lang.Sentences(text) {
		if utf8.RuneCountInString(s) < minSentenceLen {
			continue
		}
		scored = append(scored, ScoredSentence{Text: s, Score: g.scoreSentence(s)})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if maxSentences < 0 {
		maxSentences = 0
	}
	if len(scored) > maxSentences {
		scored = scored[:maxSentences]
	}
	out := make([]string, len(scored))
	for i, ss := range scored {
		out[i] = ss.Text
	}
	return out
}
