package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizplay/internal/bank"
	"quizplay/internal/quiz"
)

const (
	colorHeader    = lipgloss.Color("33")
	colorMuted     = lipgloss.Color("242")
	colorCorrect   = lipgloss.Color("42")
	colorIncorrect = lipgloss.Color("203")
	colorAccent    = lipgloss.Color("212")
)

// renderHeader renders the title and session progress line.
func renderHeader(snap quiz.Snapshot, noColor bool) string {
	line := "quizplay"
	switch snap.Phase {
	case quiz.PhaseInQuestion:
		line += fmt.Sprintf(" | %s | Question %d/%d | Score %d", snap.Theme, snap.Position+1, snap.Total, snap.Score)
	case quiz.PhaseCompleted:
		line += fmt.Sprintf(" | %s | Score %d", snap.Theme, snap.Score)
	}
	return stylize(line, noColor, colorHeader)
}

func renderPrompt(m Model) string {
	lines := []string{"Open a question bank (JSON or YAML):", m.input.View()}
	if m.loading {
		lines = append(lines, stylize("Reading "+m.bankPath+"...", m.noColor, colorMuted))
	}
	return strings.Join(lines, "\n")
}

// renderQuestion renders the current question and its interaction state.
func renderQuestion(snap quiz.Snapshot, m Model) string {
	in := snap.Interaction
	lines := []string{bold(snap.Question.Prompt(), m.noColor), ""}

	switch q := snap.Question.(type) {
	case bank.MultipleChoice:
		for i, option := range q.Options {
			marker := "  "
			if i == m.cursor && !in.Revealed() {
				marker = "> "
			}
			line := fmt.Sprintf("%s%d. %s", marker, i+1, option)
			if in.Revealed() {
				switch {
				case option == q.Correct:
					line = stylize(line+"  ✓", m.noColor, colorCorrect)
				case option == in.Primary:
					line = stylize(line+"  ✗", m.noColor, colorIncorrect)
				}
			}
			lines = append(lines, line)
		}
	case bank.Vocab:
		if in.Revealed() {
			lines = append(lines, "Your answer: "+in.Primary)
		} else {
			lines = append(lines, m.input.View())
		}
	case bank.Conditional:
		switch in.Stage {
		case quiz.StageAwaitingAnswer:
			lines = append(lines, m.input.View())
		case quiz.StageAwaitingDegree:
			lines = append(lines, "Your answer: "+in.Primary, "Degree of the conditional (0-3):", m.input.View())
		default:
			lines = append(lines, "Your answer: "+in.Primary)
			if in.Degree != "" {
				lines = append(lines, "Your degree: "+in.Degree)
			}
		}
	case bank.AdjectiveOrder:
		lines = append(lines, renderPool(in, m), "", "Your order: "+strings.Join(in.Selection, " "))
	}

	if in.Revealed() {
		lines = append(lines, "", renderFeedback(snap.Question, in.Correct, m.noColor))
	}
	return strings.Join(lines, "\n")
}

func renderPool(in quiz.Interaction, m Model) string {
	words := make([]string, 0, len(in.Pool))
	for i, slot := range in.Pool {
		word := fmt.Sprintf("[%d] %s", i+1, slot.Word)
		switch {
		case slot.Picked:
			word = stylize(fmt.Sprintf("[%d] %s", i+1, strings.Repeat("·", len([]rune(slot.Word)))), m.noColor, colorMuted)
		case i == m.cursor && !in.Revealed():
			word = stylize(word, m.noColor, colorAccent)
			if m.noColor {
				word = ">" + word
			}
		}
		words = append(words, word)
	}
	return strings.Join(words, "  ")
}

// renderFeedback shows the verdict and, when wrong, the expected answer.
func renderFeedback(question bank.Question, correct bool, noColor bool) string {
	if correct {
		return stylize("Correct!", noColor, colorCorrect)
	}
	return stylize("Incorrect. Expected: "+bank.ExpectedAnswer(question), noColor, colorIncorrect)
}

func renderCompleted(snap quiz.Snapshot, noColor bool) string {
	return strings.Join([]string{
		bold("Finished "+snap.Theme, noColor),
		fmt.Sprintf("Score: %d / %d", snap.Score, snap.Total),
	}, "\n")
}

func renderNotice(text string, isErr bool, noColor bool) string {
	if isErr {
		return stylize(text, noColor, colorIncorrect)
	}
	return stylize(text, noColor, colorMuted)
}

// renderHelp lists the keys that apply to the current screen.
func renderHelp(m Model, snap quiz.Snapshot, noColor bool) string {
	var help string
	switch {
	case m.prompting():
		help = "enter: load  ctrl+c: quit"
		if m.opening {
			help = "enter: load  esc: cancel  ctrl+c: quit"
		}
	case snap.Phase == quiz.PhaseThemeSelection:
		help = "↑/↓: move  enter: start  o: open bank  q: quit"
	case snap.Phase == quiz.PhaseCompleted:
		help = "enter: choose another theme  o: open bank  q: quit"
	case snap.Interaction.Revealed():
		help = "enter: next  esc: back to themes"
	default:
		switch snap.Question.(type) {
		case bank.MultipleChoice:
			help = "1-9 or ↑/↓ + enter: answer  esc: back to themes"
		case bank.AdjectiveOrder:
			help = "1-9 or ←/→ + space: pick or remove  backspace: undo  enter: submit  esc: back to themes"
		default:
			help = "enter: submit  esc: back to themes"
		}
	}
	return stylize(help, noColor, colorMuted)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func bold(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}
