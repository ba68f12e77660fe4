package nlp

import (
	"reflect"
	"testing"
)

func TestSentences(t *testing.T) {
	p := New()
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "plain",
			in:   "First sentence. Second sentence! Third?",
			want: []string{"First sentence.", "Second sentence!", "Third?"},
		},
		{
			name: "decimal stays intact",
			in:   "Growth reached 3.14 percent last year. Analysts were surprised.",
			want: []string{"Growth reached 3.14 percent last year.", "Analysts were surprised."},
		},
		{
			name: "abbreviation does not split",
			in:   "Dr. Smith arrived early. The meeting began.",
			want: []string{"Dr. Smith arrived early.", "The meeting began."},
		},
		{
			name: "initialism does not split",
			in:   "The U.S. economy grew quickly in 2024.",
			want: []string{"The U.S. economy grew quickly in 2024."},
		},
		{
			name: "tail without terminator kept",
			in:   "A full stop here. And a dangling tail",
			want: []string{"A full stop here.", "And a dangling tail"},
		},
		{
			name: "closing quote attaches",
			in:   `He said "stop now." Then he left.`,
			want: []string{`He said "stop now."`, "Then he left."},
		},
		{
			name: "terminator run",
			in:   "Really?! Yes. Wait... No.",
			want: []string{"Really?!", "Yes.", "Wait...", "No."},
		},
		{
			name: "empty",
			in:   "   ",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Sentences(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Sentences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	p := New()
	cases := []struct {
		in   string
		want []string
	}{
		{"The study found 42 results.", []string{"The", "study", "found", "42", "results", "."}},
		{"it's working", []string{"it", "'s", "working"}},
		{"don't stop", []string{"don", "'t", "stop"}},
		{"1,000 users paid $5.50 each", []string{"1,000", "users", "paid", "$", "5.50", "each"}},
		{"well-known fact", []string{"well", "-", "known", "fact"}},
		{"", nil},
	}
	for _, tc := range cases {
		got := p.Words(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Words(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTag(t *testing.T) {
	p := New()
	cases := []struct {
		tok  string
		want string
	}{
		{"42", TagCardinal},
		{"3.14", TagCardinal},
		{"1,000", TagCardinal},
		{"seven", TagCardinal},
		{"Seven", TagCardinal},
		{"Microsoft", TagProperNoun},
		{"Researchers", TagProperNounPlural},
		{"NASA", TagProperNoun},
		{"The", "DT"},   // capitalized article stays closed-class
		{"However", "RB"},
		{"Most", "NN"}, // capitalized stopword never becomes a proper noun
		{"study", "NN"},
		{"results", "NNS"},
		{"increased", "VBD"},
		{"running", "VBG"},
		{"quickly", "RB"},
		{"'s", "POS"},
		{".", "."},
	}
	for _, tc := range cases {
		tagged := p.Tag([]string{tc.tok})
		if len(tagged) != 1 {
			t.Fatalf("Tag(%q) returned %d tokens", tc.tok, len(tagged))
		}
		if tagged[0].Tag != tc.want {
			t.Errorf("Tag(%q) = %s, want %s", tc.tok, tagged[0].Tag, tc.want)
		}
	}
}

func TestTagNeverMarksClosedClassAsProper(t *testing.T) {
	p := New()
	for _, tok := range []string{"This", "Those", "Between", "Because", "With", "And"} {
		if got := p.Tag([]string{tok})[0].Tag; got == TagProperNoun || got == TagProperNounPlural {
			t.Errorf("Tag(%q) = %s, want a closed-class tag", tok, got)
		}
	}
}

func TestIsStopword(t *testing.T) {
	p := New()
	for _, w := range []string{"the", "The", "is", "don't", "of"} {
		if !p.IsStopword(w) {
			t.Errorf("IsStopword(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"quantum", "market", "42"} {
		if p.IsStopword(w) {
			t.Errorf("IsStopword(%q) = true, want false", w)
		}
	}
}

func TestIsWordToken(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"study", true},
		{"42", true},
		{"étude", true},
		{"3.14", false},
		{"1,000", false},
		{"'s", false},
		{".", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsWordToken(tc.in); got != tc.want {
			t.Errorf("IsWordToken(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLoadLexiconRejectsBadYAML(t *testing.T) {
	if _, err := LoadLexicon([]byte("stopwords: {broken")); err == nil {
		t.Fatal("expected error for malformed lexicon")
	}
}
