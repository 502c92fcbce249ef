// Package plain runs a quiz over line-oriented input and output, for
// terminals without cursor control and for scripted use.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizplay/internal/bank"
	"quizplay/internal/quiz"
)

// QuitCommand abandons the current session and returns to the theme menu.
const QuitCommand = ":q"

// UndoCommand retracts the last picked word of an adjective-order question.
// "-N" retracts entry N of the current order instead.
const UndoCommand = "undo"

// ErrNoBank reports that Run was called before a bank was loaded.
var ErrNoBank = errors.New("no bank loaded")

var errAbandon = errors.New("session abandoned")

// Options configures a Runner.
type Options struct {
	// Theme is started immediately when set.
	Theme string
}

// Runner drives an engine from a line reader.
type Runner struct {
	engine *quiz.Engine
	lines  *bufio.Scanner
	out    io.Writer
	theme  string
}

// New builds a Runner reading answers from in and writing prompts to out.
func New(engine *quiz.Engine, in io.Reader, out io.Writer, opts Options) *Runner {
	return &Runner{
		engine: engine,
		lines:  bufio.NewScanner(in),
		out:    out,
		theme:  strings.TrimSpace(opts.Theme),
	}
}

// Run plays until input ends. End of input is not an error.
func (r *Runner) Run(ctx context.Context) error {
	if r.engine.Phase() == quiz.PhaseNoBank {
		return ErrNoBank
	}
	if r.theme != "" && r.engine.Phase() == quiz.PhaseThemeSelection {
		if err := r.engine.SelectTheme(r.theme); err != nil {
			r.printf("Theme %q is not in this bank\n", r.theme)
		}
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch r.engine.Phase() {
		case quiz.PhaseThemeSelection:
			err = r.chooseTheme()
		case quiz.PhaseInQuestion:
			err = r.askQuestion()
		case quiz.PhaseCompleted:
			snap := r.engine.Snapshot()
			r.printf("\nScore: %d / %d\n", snap.Score, snap.Total)
			r.engine.Reset()
		}
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errAbandon):
			r.engine.Reset()
			r.printf("Back to the theme menu.\n")
		case err != nil:
			return err
		}
	}
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// scan prompts once and returns the next line, blank or not.
func (r *Runner) scan(prompt string) (string, error) {
	r.printf("%s", prompt)
	if !r.lines.Scan() {
		r.printf("\n")
		if err := r.lines.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return r.lines.Text(), nil
}

// readLine prompts until it gets a non-blank line.
func (r *Runner) readLine(prompt string) (string, error) {
	for {
		line, err := r.scan(prompt)
		if err != nil || strings.TrimSpace(line) != "" {
			return line, err
		}
	}
}

// readAnswer is readLine inside a session, where QuitCommand abandons it.
func (r *Runner) readAnswer(prompt string) (string, error) {
	line, err := r.readLine(prompt)
	if err != nil {
		return "", err
	}
	return abandonOn(line)
}

func abandonOn(line string) (string, error) {
	if strings.TrimSpace(line) == QuitCommand {
		return "", errAbandon
	}
	return line, nil
}

func (r *Runner) chooseTheme() error {
	themes := r.engine.Snapshot().Themes
	b := r.engine.Bank()
	r.printf("\nThemes:\n")
	for i, name := range themes {
		questions, _ := b.Questions(name)
		r.printf("  %d. %s (%d questions)\n", i+1, name, len(questions))
	}
	for {
		line, err := r.readLine("Theme> ")
		if err != nil {
			return err
		}
		choice := strings.TrimSpace(line)
		if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(themes) {
			choice = themes[n-1]
		}
		if err := r.engine.SelectTheme(choice); err != nil {
			r.printf("Unknown theme %q\n", choice)
			continue
		}
		return nil
	}
}

func (r *Runner) askQuestion() error {
	snap := r.engine.Snapshot()
	r.printf("\nQuestion %d/%d: %s\n", snap.Position+1, snap.Total, snap.Question.Prompt())

	var err error
	switch q := snap.Question.(type) {
	case bank.MultipleChoice:
		err = r.askChoice(q)
	case bank.Vocab:
		err = r.askText()
	case bank.Conditional:
		err = r.askConditional()
	case bank.AdjectiveOrder:
		err = r.askOrder()
	default:
		err = fmt.Errorf("unsupported question %T", snap.Question)
	}
	if err != nil {
		return err
	}

	in := r.engine.Snapshot().Interaction
	if in.Correct {
		r.printf("Correct!\n")
	} else {
		r.printf("Incorrect. Expected: %s\n", bank.ExpectedAnswer(snap.Question))
	}
	return r.engine.Advance()
}

func (r *Runner) askChoice(q bank.MultipleChoice) error {
	for i, option := range q.Options {
		r.printf("  %d. %s\n", i+1, option)
	}
	for {
		line, err := r.readAnswer("> ")
		if err != nil {
			return err
		}
		value := line
		if n, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil && n >= 1 && n <= len(q.Options) {
			value = q.Options[n-1]
		}
		if _, err := r.engine.SubmitAnswer(value); err != nil {
			if errors.Is(err, quiz.ErrUnknownOption) {
				r.printf("Choose one of the listed options.\n")
				continue
			}
			return err
		}
		return nil
	}
}

func (r *Runner) askText() error {
	line, err := r.readAnswer("> ")
	if err != nil {
		return err
	}
	_, err = r.engine.SubmitAnswer(line)
	return err
}

func (r *Runner) askConditional() error {
	line, err := r.readAnswer("> ")
	if err != nil {
		return err
	}
	outcome, err := r.engine.SubmitAnswer(line)
	if err != nil || outcome.Revealed() {
		return err
	}
	for {
		line, err := r.readAnswer("Degree (0-3)> ")
		if err != nil {
			return err
		}
		if _, err := r.engine.SubmitDegree(line); err != nil {
			if errors.Is(err, quiz.ErrInvalidDegree) {
				r.printf("The degree must be 0, 1, 2 or 3.\n")
				continue
			}
			return err
		}
		return nil
	}
}

// askOrder reads slot numbers until every word of the pool is picked, then
// asks for confirmation before submitting. UndoCommand and "-N" edit the
// order at either prompt.
func (r *Runner) askOrder() error {
	for {
		in := r.engine.Snapshot().Interaction
		r.printf("%s\n", renderPool(in))
		if len(in.Selection) > 0 {
			r.printf("Your order: %s\n", strings.Join(in.Selection, " "))
		}
		if in.CanSubmit {
			submitted, err := r.confirmOrder()
			if err != nil || submitted {
				return err
			}
			continue
		}
		line, err := r.readAnswer("Order> ")
		if err != nil {
			return err
		}
		handled, err := r.editOrder(line)
		if err != nil {
			return err
		}
		if handled {
			continue
		}
		for _, field := range strings.Fields(line) {
			n, convErr := strconv.Atoi(field)
			if convErr != nil {
				r.printf("%q is not a word number.\n", field)
				break
			}
			if err := r.engine.Pick(n - 1); err != nil {
				if errors.Is(err, quiz.ErrInvalidSlot) {
					r.printf("Word %d is not available.\n", n)
					break
				}
				return err
			}
		}
	}
}

// confirmOrder submits on an empty line and reports whether it did.
func (r *Runner) confirmOrder() (bool, error) {
	line, err := r.scan("Enter to submit, undo or -N to change> ")
	if err != nil {
		return false, err
	}
	if line, err = abandonOn(line); err != nil {
		return false, err
	}
	if strings.TrimSpace(line) == "" {
		_, err := r.engine.SubmitSelection()
		return err == nil, err
	}
	handled, err := r.editOrder(line)
	if err == nil && !handled {
		r.printf("Press enter to submit, or type %s or -N to change the order.\n", UndoCommand)
	}
	return false, err
}

// editOrder applies UndoCommand or "-N". It reports whether line was one of
// them.
func (r *Runner) editOrder(line string) (bool, error) {
	field := strings.TrimSpace(line)
	if strings.EqualFold(field, UndoCommand) {
		if err := r.engine.RetractLast(); err != nil && !errors.Is(err, quiz.ErrInvalidSlot) {
			return true, err
		}
		return true, nil
	}
	rest, ok := strings.CutPrefix(field, "-")
	if !ok {
		return false, nil
	}
	n, convErr := strconv.Atoi(rest)
	if convErr != nil {
		r.printf("%q is not an entry number.\n", field)
		return true, nil
	}
	if err := r.engine.Retract(n - 1); err != nil {
		if errors.Is(err, quiz.ErrInvalidSlot) {
			r.printf("Entry %d is not in your order.\n", n)
			return true, nil
		}
		return true, err
	}
	return true, nil
}

func renderPool(in quiz.Interaction) string {
	parts := make([]string, 0, len(in.Pool))
	for i, slot := range in.Pool {
		if slot.Picked {
			parts = append(parts, fmt.Sprintf("[%d] -", i+1))
			continue
		}
		parts = append(parts, fmt.Sprintf("[%d] %s", i+1, slot.Word))
	}
	return "  " + strings.Join(parts, "  ")
}
