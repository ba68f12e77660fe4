package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sambhav234/Quiz-Generator/internal/quiz"
)

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{
			Kind:          quiz.MultipleChoice,
			Prompt:        "Revenue grew _____ percent.",
			Options:       []string{"21", "42", "63", "84"},
			CorrectAnswer: "42",
			Explanation:   "Revenue grew 42 percent.",
		},
		{
			Kind:          quiz.TrueFalse,
			Prompt:        "True or False: Water boils.",
			CorrectAnswer: "true",
			Explanation:   "Water boils.",
		},
	}
}

func answer(t *testing.T, m Model, text string) Model {
	t.Helper()
	m.input.SetValue(text)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestQuizFlowGradesAtTheEnd(t *testing.T) {
	m := New(testQuestions())

	view := m.View()
	if !strings.Contains(view, "Question 1/2") || !strings.Contains(view, "b) 42") {
		t.Fatalf("first view missing question or lettered options:\n%s", view)
	}

	m = answer(t, m, "b") // letter resolves to "42"
	if m.done {
		t.Fatal("done after first answer")
	}
	m = answer(t, m, "false")
	if !m.done {
		t.Fatal("not done after last answer")
	}
	if m.err != nil {
		t.Fatalf("grading error: %v", m.err)
	}
	if m.report.Correct != 1 || m.report.Total != 2 || m.report.Score != 50 {
		t.Errorf("report = %d/%d score %.2f, want 1/2 score 50", m.report.Correct, m.report.Total, m.report.Score)
	}

	report := m.View()
	for _, want := range []string{"Score: 50.00%", "your answer: 42", "correct answer: true"} {
		if !strings.Contains(report, want) {
			t.Errorf("report view missing %q:\n%s", want, report)
		}
	}
}

func TestResolveAnswer(t *testing.T) {
	mc := testQuestions()[0]
	tf := testQuestions()[1]

	for _, tc := range []struct {
		name string
		q    quiz.Question
		in   string
		want string
	}{
		{"lowercase letter", mc, "b", "42"},
		{"uppercase letter", mc, "C", "63"},
		{"letter out of range", mc, "z", "z"},
		{"literal option", mc, "42", "42"},
		{"whitespace trimmed", mc, "  a ", "21"},
		{"letters stay literal outside multiple choice", tf, "t", "t"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveAnswer(tc.q, tc.in); got != tc.want {
				t.Errorf("resolveAnswer(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestQuitKeysAfterReport(t *testing.T) {
	m := New(testQuestions()[:1])
	m = answer(t, m, "42")
	if !m.done {
		t.Fatal("not done")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q after the report should quit")
	}
}
