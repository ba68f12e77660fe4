// Package tui is the interactive quiz session for the terminal client:
// one question at a time, a text input for the answer, and the graded
// report at the end.
package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sambhav234/Quiz-Generator/internal/quiz"
)

type Model struct {
	questions []quiz.Question
	answers   []string
	index     int
	input     textinput.Model
	report    quiz.GradeReport
	done      bool
	err       error
}

func New(questions []quiz.Question) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Answer and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	return Model{
		questions: questions,
		answers:   make([]string, 0, len(questions)),
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if m.done {
			if msg.String() == "q" || msg.Type == tea.KeyEnter {
				return m, tea.Quit
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			m.answers = append(m.answers, resolveAnswer(m.questions[m.index], m.input.Value()))
			m.input.SetValue("")
			m.index++
			if m.index >= len(m.questions) {
				m.report, m.err = quiz.GradeSubmission(m.questions, m.answers)
				m.done = true
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.done {
		return m.reportView()
	}
	q := m.questions[m.index]
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d/%d", m.index+1, len(m.questions))) + "\n\n")
	b.WriteString(q.Prompt + "\n")
	if q.Kind == quiz.MultipleChoice {
		for i, opt := range q.Options {
			b.WriteString(fmt.Sprintf("  %c) %s\n", 'a'+i, opt))
		}
	}
	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(hintStyle.Render("Enter to answer, Ctrl+C to quit"))
	return b.String()
}

func (m Model) reportView() string {
	if m.err != nil {
		return "grading failed: " + m.err.Error() + "\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Score: %.2f%%  (%d/%d)", m.report.Score, m.report.Correct, m.report.Total)) + "\n\n")
	for _, res := range m.report.Results {
		mark := wrongStyle.Render("✗")
		if res.Correct {
			mark = rightStyle.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", mark, res.Index+1, res.Prompt))
		b.WriteString("   your answer: " + res.Submitted + "\n")
		if !res.Correct {
			b.WriteString("   correct answer: " + res.CorrectAnswer + "\n")
		}
		if res.Explanation != "" {
			b.WriteString(hintStyle.Render("   "+res.Explanation) + "\n")
		}
	}
	b.WriteString("\n" + hintStyle.Render("q to quit"))
	return b.String()
}

// resolveAnswer maps a lettered reply ("b") to the multiple-choice
// option it names. Anything else is taken literally.
func resolveAnswer(q quiz.Question, raw string) string {
	answer := strings.TrimSpace(raw)
	if q.Kind != quiz.MultipleChoice || len(answer) != 1 {
		return answer
	}
	idx := int(unicode.ToLower(rune(answer[0])) - 'a')
	if idx >= 0 && idx < len(q.Options) {
		return q.Options[idx]
	}
	return answer
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	rightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	wrongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
