package live

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizplay/internal/bank"
	"quizplay/internal/quiz"
)

// Options configures the live UI model.
type Options struct {
	NoColor bool
	// BankPath is loaded on start when the engine has no bank yet.
	BankPath string
	// Theme is selected as soon as a bank is available.
	Theme string
	// ReadFile acquires bank files. Required for the path prompt.
	ReadFile ReadFunc
	Context  context.Context
}

// Model drives a quiz engine from keyboard input using Bubble Tea.
type Model struct {
	engine  *quiz.Engine
	ctx     context.Context
	read    ReadFunc
	input   textinput.Model
	themes  table.Model
	noColor bool
	width   int

	bankPath  string
	theme     string
	loading   bool
	opening   bool
	cursor    int
	notice    string
	noticeErr bool
}

// NewModel constructs a live UI model around engine.
func NewModel(engine *quiz.Engine, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 256

	themes := table.New(
		table.WithColumns(themeColumns(0)),
		table.WithRows(themeRows(engine.Bank())),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	themes.SetStyles(tableStyles(opts.NoColor))

	m := Model{
		engine:   engine,
		ctx:      ctx,
		read:     opts.ReadFile,
		input:    input,
		themes:   themes,
		noColor:  opts.NoColor,
		bankPath: strings.TrimSpace(opts.BankPath),
		theme:    strings.TrimSpace(opts.Theme),
	}
	switch engine.Phase() {
	case quiz.PhaseNoBank:
		m.preparePrompt()
		m.input.SetValue(m.bankPath)
	case quiz.PhaseThemeSelection:
		m.selectInitialTheme()
	case quiz.PhaseInQuestion:
		m.startQuestion()
	}
	return m
}

// Init starts the cursor blink and any pending bank load.
func (m Model) Init() tea.Cmd {
	if m.engine.Phase() == quiz.PhaseNoBank && m.bankPath != "" && m.read != nil {
		return tea.Batch(textinput.Blink, loadBank(m.ctx, m.read, m.bankPath))
	}
	return textinput.Blink
}

// Update routes key presses to the active phase.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.themes.SetColumns(themeColumns(typed.Width))
		m.themes.SetHeight(max(typed.Height-8, 3))
		m.input.Width = max(typed.Width-4, 10)
		return m, nil
	case bankReadMsg:
		return m.applyBank(typed), nil
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.prompting() {
			return m.updatePrompt(typed)
		}
		switch m.engine.Phase() {
		case quiz.PhaseThemeSelection:
			return m.updateThemes(typed)
		case quiz.PhaseInQuestion:
			return m.updateQuestion(typed)
		case quiz.PhaseCompleted:
			return m.updateCompleted(typed)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the active phase.
func (m Model) View() string {
	snap := m.engine.Snapshot()
	sections := []string{renderHeader(snap, m.noColor)}
	switch {
	case m.prompting():
		sections = append(sections, renderPrompt(m))
	case snap.Phase == quiz.PhaseThemeSelection:
		sections = append(sections, "Choose a theme:", m.themes.View())
	case snap.Phase == quiz.PhaseInQuestion:
		sections = append(sections, renderQuestion(snap, m))
	case snap.Phase == quiz.PhaseCompleted:
		sections = append(sections, renderCompleted(snap, m.noColor))
	}
	if m.notice != "" {
		sections = append(sections, renderNotice(m.notice, m.noticeErr, m.noColor))
	}
	sections = append(sections, renderHelp(m, snap, m.noColor))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) prompting() bool {
	return m.opening || m.engine.Phase() == quiz.PhaseNoBank
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *Model) preparePrompt() {
	m.input.Reset()
	m.input.Placeholder = "path/to/bank.json"
	m.input.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.loading {
			return m, nil
		}
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.setNotice("Enter the path of a bank file", true)
			return m, nil
		}
		if m.read == nil {
			m.setNotice("Bank loading is not available", true)
			return m, nil
		}
		m.bankPath = path
		m.loading = true
		m.setNotice("Loading "+path+"...", false)
		return m, loadBank(m.ctx, m.read, path)
	case tea.KeyEsc:
		if m.opening && !m.loading {
			m.opening = false
			m.input.Blur()
			m.setNotice("", false)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyBank installs a freshly read bank. Failures leave the engine as it was.
func (m Model) applyBank(msg bankReadMsg) Model {
	m.loading = false
	if msg.err != nil {
		m.setNotice(fmt.Sprintf("Could not read bank: %v", msg.err), true)
		return m
	}
	if err := m.engine.LoadBank(msg.data, bank.FormatForPath(msg.path)); err != nil {
		m.setNotice(fmt.Sprintf("Could not load bank: %v", err), true)
		return m
	}
	m.opening = false
	m.input.Blur()
	m.themes.SetRows(themeRows(m.engine.Bank()))
	m.themes.SetCursor(0)
	b := m.engine.Bank()
	m.setNotice(fmt.Sprintf("Loaded %d themes (%d questions) from %s", b.Len(), b.QuestionCount(), msg.path), false)
	m.selectInitialTheme()
	return m
}

// selectInitialTheme starts the configured theme once, if any.
func (m *Model) selectInitialTheme() {
	if m.theme == "" {
		return
	}
	theme := m.theme
	m.theme = ""
	if err := m.engine.SelectTheme(theme); err != nil {
		m.setNotice(fmt.Sprintf("Theme %q is not in this bank", theme), true)
		return
	}
	m.startQuestion()
}

func (m Model) updateThemes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		names := m.engine.Snapshot().Themes
		index := m.themes.Cursor()
		if index < 0 || index >= len(names) {
			return m, nil
		}
		if err := m.engine.SelectTheme(names[index]); err != nil {
			m.setNotice(err.Error(), true)
			return m, nil
		}
		m.setNotice("", false)
		m.startQuestion()
		return m, textinput.Blink
	case "o":
		m.opening = true
		m.preparePrompt()
		m.setNotice("", false)
		return m, textinput.Blink
	case "q":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.themes, cmd = m.themes.Update(msg)
	return m, cmd
}

// startQuestion resets per-question widgets for the current question.
func (m *Model) startQuestion() {
	m.cursor = 0
	m.input.Reset()
	m.input.Blur()
	switch m.engine.Snapshot().Question.(type) {
	case bank.Vocab, bank.Conditional:
		m.input.Placeholder = "Your answer"
		m.input.Focus()
	}
}

func (m Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.engine.Reset()
		m.themes.SetCursor(0)
		m.setNotice("Session abandoned", false)
		return m, nil
	}
	snap := m.engine.Snapshot()
	if snap.Interaction.Revealed() {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			if err := m.engine.Advance(); err != nil {
				m.setNotice(err.Error(), true)
				return m, nil
			}
			m.setNotice("", false)
			if m.engine.Phase() == quiz.PhaseInQuestion {
				m.startQuestion()
			}
		}
		return m, nil
	}

	switch q := snap.Question.(type) {
	case bank.MultipleChoice:
		return m.updateChoice(q, msg), nil
	case bank.Vocab, bank.Conditional:
		return m.updateText(snap, msg)
	case bank.AdjectiveOrder:
		return m.updateOrder(snap, msg), nil
	}
	return m, nil
}

func (m Model) updateChoice(q bank.MultipleChoice, msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case "enter":
		m.submitAnswer(q.Options[m.cursor])
	default:
		if n, ok := digitKey(msg); ok && n <= len(q.Options) {
			m.cursor = n - 1
			m.submitAnswer(q.Options[m.cursor])
		}
	}
	return m
}

func (m Model) updateText(snap quiz.Snapshot, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	value := m.input.Value()
	if strings.TrimSpace(value) == "" {
		return m, nil
	}
	if snap.Interaction.Stage == quiz.StageAwaitingDegree {
		if _, err := m.engine.SubmitDegree(value); err != nil {
			if errors.Is(err, quiz.ErrInvalidDegree) {
				m.setNotice("The degree must be 0, 1, 2 or 3", true)
			} else {
				m.setNotice(err.Error(), true)
			}
			m.input.Reset()
			return m, nil
		}
		m.input.Blur()
		m.setNotice("", false)
		return m, nil
	}
	m.submitAnswer(value)
	m.input.Reset()
	if m.engine.Snapshot().Interaction.Stage == quiz.StageAwaitingDegree {
		m.input.Placeholder = "Degree (0-3)"
		return m, nil
	}
	m.input.Blur()
	return m, nil
}

func (m *Model) submitAnswer(value string) {
	if _, err := m.engine.SubmitAnswer(value); err != nil {
		m.setNotice(err.Error(), true)
		return
	}
	m.setNotice("", false)
}

func (m Model) updateOrder(snap quiz.Snapshot, msg tea.KeyMsg) Model {
	pool := snap.Interaction.Pool
	switch msg.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(pool)-1 {
			m.cursor++
		}
	case " ":
		m.toggle(pool, m.cursor)
	case "backspace":
		if len(snap.Interaction.Selection) > 0 {
			m.report(m.engine.RetractLast())
		}
	case "enter":
		if !snap.Interaction.CanSubmit {
			m.setNotice("Pick every word before submitting", true)
			return m
		}
		if _, err := m.engine.SubmitSelection(); err != nil {
			m.setNotice(err.Error(), true)
			return m
		}
		m.setNotice("", false)
	default:
		if n, ok := digitKey(msg); ok && n <= len(pool) {
			m.cursor = n - 1
			m.toggle(pool, m.cursor)
		}
	}
	return m
}

// toggle picks a free slot, or takes a picked slot's word back out of the
// order.
func (m *Model) toggle(pool []quiz.Slot, slot int) {
	if slot < 0 || slot >= len(pool) {
		return
	}
	if pool[slot].Picked {
		m.report(m.engine.RetractSlot(slot))
		return
	}
	m.report(m.engine.Pick(slot))
}

// report shows a selection error, or clears the notice on success.
func (m *Model) report(err error) {
	if err != nil {
		m.setNotice(err.Error(), true)
		return
	}
	m.setNotice("", false)
}

func (m Model) updateCompleted(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.engine.Reset()
		m.themes.SetCursor(0)
		m.setNotice("", false)
	case "o":
		m.opening = true
		m.preparePrompt()
		return m, textinput.Blink
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// digitKey reports the number typed for keys 1 through 9.
func digitKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(string(msg.Runes))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
