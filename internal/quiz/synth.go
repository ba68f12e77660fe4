package quiz

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Fixed distractors for non-numeric multiple-choice answers.
var textDistractors = []string{
	"Not mentioned in the text",
	"All of the above",
	"None of the above",
}

// synthesizeMultipleChoice blanks the sentence's first key term and
// surrounds it with distractors. It returns false when the sentence has
// no key terms or no usable distractors. The options always contain the
// answer exactly once, so the correct answer survives the shuffle by
// value rather than by position.
func (g *Generator) synthesizeMultipleChoice(sentence string) (Question, bool) {
	terms := g.KeyTerms(sentence)
	if len(terms) == 0 {
		return Question{}, false
	}
	answer := terms[0]

	prompt := strings.Replace(sentence, answer.Value, Blank, 1)
	if !strings.Contains(prompt, Blank) {
		if answer.Kind == TermNumber {
			prompt = fmt.Sprintf("According to the text, what is the number mentioned: %s?", sentence)
		} else {
			prompt = fmt.Sprintf("According to the text, %s?", strings.ToLower(sentence))
		}
	}

	distractors := distractorsFor(answer)
	if len(distractors) == 0 {
		return Question{}, false
	}
	options := make([]string, 0, 1+len(distractors))
	options = append(options, answer.Value)
	options = append(options, distractors...)
	g.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return Question{
		Kind:          MultipleChoice,
		Prompt:        prompt,
		Options:       options,
		CorrectAnswer: answer.Value,
		Explanation:   sentence,
	}, true
}

// distractorsFor builds up to three wrong options. Numeric answers get
// scaled variants of the answer's first numeral substring, truncated to
// integers; a variant numerically equal to the answer or already
// generated is dropped. Spelled-out cardinals have no numeral substring
// to scale, so they yield none. Text answers get the fixed set.
func distractorsFor(answer KeyTerm) []string {
	if answer.Kind != TermNumber {
		return textDistractors
	}
	base, err := strconv.ParseFloat(numeralRe.FindString(answer.Value), 64)
	if err != nil {
		return nil
	}
	var out []string
	for _, scale := range []float64{0.5, 1.5, 2.0, 0.8} {
		v := int(base * scale)
		if float64(v) == base {
			continue
		}
		d := strconv.Itoa(v)
		if slices.Contains(out, d) {
			continue
		}
		out = append(out, d)
		if len(out) == 3 {
			break
		}
	}
	return out
}

type negationPair struct {
	trigger string
	re      *regexp.Regexp
	to      string
}

func negation(trigger, to string) negationPair {
	return negationPair{
		trigger: trigger,
		re:      regexp.MustCompile(`(?i)\b` + trigger + `\b`),
		to:      to,
	}
}

// negationPairs is scanned in order; the first pair whose trigger occurs
// as a whole word is applied (to every occurrence of that trigger) and
// scanning stops.
var negationPairs = []negationPair{
	negation("is", "is not"),
	negation("are", "are not"),
	negation("was", "was not"),
	negation("were", "were not"),
	negation("has", "does not have"),
	negation("have", "do not have"),
	negation("increased", "decreased"),
	negation("decreased", "increased"),
	negation("improved", "worsened"),
	negation("found", "did not find"),
}

// negate flips the first negatable verb in the statement.
// TODO: a statement with no trigger words comes back unchanged yet is
// still presented as false; consider falling back to the true branch.
func negate(statement string) string {
	for _, p := range negationPairs {
		if p.re.MatchString(statement) {
			return p.re.ReplaceAllString(statement, p.to)
		}
	}
	return statement
}

// synthesizeTrueFalse turns the sentence into a statement to judge. A
// coin flip picks the branch: either the sentence stands as a true
// statement, or one verb is negated and the claim is false. This
// synthesizer never declines a sentence.
func (g *Generator) synthesizeTrueFalse(sentence string) (Question, bool) {
	statement := strings.TrimSpace(sentence)
	if g.rng.Float64() > 0.5 {
		return Question{
			Kind:          TrueFalse,
			Prompt:        "True or False: " + negate(statement),
			CorrectAnswer: "false",
			Explanation:   "The correct statement is: " + statement,
		}, true
	}
	return Question{
		Kind:          TrueFalse,
		Prompt:        "True or False: " + statement,
		CorrectAnswer: "true",
		Explanation:   statement,
	}, true
}

// synthesizeFillBlank blanks the first key term in place. It returns
// false when the sentence has no key terms or the term's literal text
// does not occur in the sentence.
func (g *Generator) synthesizeFillBlank(sentence string) (Question, bool) {
	terms := g.KeyTerms(sentence)
	if len(terms) == 0 {
		return Question{}, false
	}
	answer := terms[0]
	prompt := strings.Replace(sentence, answer.Value, Blank, 1)
	if !strings.Contains(prompt, Blank) {
		return Question{}, false
	}
	return Question{
		Kind:          FillBlank,
		Prompt:        prompt,
		CorrectAnswer: answer.Value,
		Explanation:   sentence,
	}, true
}
