package nlp

import (
	"regexp"
	"unicode"
)

// The tokenizer follows the Treebank conventions loosely: numbers keep
// internal commas and decimal points, contraction suffixes split off as
// their own tokens ("it's" -> "it", "'s") and any other punctuation mark
// is a token of its own.
var tokenRe = regexp.MustCompile(`\d+(?:[.,]\d+)*|\p{L}+|(?i:['\x{2019}](?:s|re|ve|ll|d|m|t)\b)|\S`)

// Words splits text into word, number and punctuation tokens. Case is
// preserved; callers that want case-insensitive analysis lower the text
// first.
func (p *Pipeline) Words(text string) []string {
	return tokenRe.FindAllString(text, -1)
}

// IsWordToken reports whether tok consists entirely of letters or digits,
// i.e. whether it is a word rather than punctuation.
func IsWordToken(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
