// Package nlp provides the lightweight text-analysis capabilities the quiz
// engine depends on: sentence segmentation, word tokenization, heuristic
// part-of-speech tagging and a stopword list. All resources are embedded and
// loaded once at process start; every operation is deterministic.
package nlp

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// Lexicon holds the word lists backing the pipeline. All lookups are
// lowercase.
type Lexicon struct {
	Stopwords     map[string]struct{}
	NumberWords   map[string]struct{}
	Abbreviations map[string]struct{}
	ClosedClass   map[string]string // word -> tag
}

type lexiconFile struct {
	Stopwords     []string            `yaml:"stopwords"`
	NumberWords   []string            `yaml:"number_words"`
	Abbreviations []string            `yaml:"abbreviations"`
	ClosedClass   map[string][]string `yaml:"closed_class"`
}

// LoadLexicon parses a lexicon from YAML.
func LoadLexicon(data []byte) (*Lexicon, error) {
	var raw lexiconFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	lex := &Lexicon{
		Stopwords:     toSet(raw.Stopwords),
		NumberWords:   toSet(raw.NumberWords),
		Abbreviations: toSet(raw.Abbreviations),
		ClosedClass:   make(map[string]string),
	}
	for tag, words := range raw.ClosedClass {
		for _, w := range words {
			lex.ClosedClass[w] = tag
		}
	}
	return lex, nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var defaultLexicon = mustLoadLexicon()

func mustLoadLexicon() *Lexicon {
	lex, err := LoadLexicon(lexiconYAML)
	if err != nil {
		panic("nlp: embedded lexicon is invalid: " + err.Error())
	}
	return lex
}
