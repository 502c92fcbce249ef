package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"quizplay/internal/bank"
)

// Options configures an Engine.
type Options struct {
	// Rand drives question and pool shuffles. Defaults to NewRand(0).
	Rand *rand.Rand
	// Observer receives lifecycle events. Defaults to NopObserver.
	Observer Observer
}

// Engine runs quiz sessions over a loaded bank. It owns all quiz state and is
// not safe for concurrent use; front ends drive it from a single goroutine.
type Engine struct {
	bank     *bank.Bank
	session  *session
	rng      *rand.Rand
	observer Observer
}

// NewEngine constructs an engine with no bank loaded.
func NewEngine(opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	observer := opts.Observer
	if observer == nil {
		observer = NopObserver{}
	}
	return &Engine{rng: rng, observer: observer}
}

// LoadBank parses raw bank data and installs it. On failure the error
// matches bank.ErrInvalidFormat and the previous bank and session are kept.
func (e *Engine) LoadBank(raw []byte, format bank.Format) error {
	parsed, err := bank.Parse(raw, format)
	if err != nil {
		e.observer.OnBankRejected(err)
		return err
	}
	e.SetBank(parsed)
	return nil
}

// SetBank installs an already validated bank and discards any session.
func (e *Engine) SetBank(b *bank.Bank) {
	e.bank = b
	e.session = nil
	e.observer.OnBankLoaded(b.Len(), b.QuestionCount())
}

// Bank returns the loaded bank, or nil before the first successful load.
func (e *Engine) Bank() *bank.Bank {
	return e.bank
}

// Phase reports the current engine phase.
func (e *Engine) Phase() Phase {
	switch {
	case e.bank == nil:
		return PhaseNoBank
	case e.session == nil:
		return PhaseThemeSelection
	case e.session.done:
		return PhaseCompleted
	default:
		return PhaseInQuestion
	}
}

// SelectTheme starts a session over a shuffled copy of the theme's questions.
func (e *Engine) SelectTheme(name string) error {
	if e.Phase() != PhaseThemeSelection {
		return fmt.Errorf("select theme: %w", ErrWrongPhase)
	}
	questions, ok := e.bank.Questions(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	s := &session{
		id:    uuid.NewString(),
		theme: name,
		order: Shuffle(questions, e.rng),
	}
	s.current = e.enter(s.order[0])
	e.session = s
	e.observer.OnThemeSelected(s.id, s.theme, len(s.order))
	return nil
}

// Advance moves past a revealed question, completing the session after the
// last one.
func (e *Engine) Advance() error {
	s, _, err := e.current("advance")
	if err != nil {
		return err
	}
	if s.current.stage != StageRevealed {
		return fmt.Errorf("advance: %w", ErrNotYetAnswered)
	}
	if s.position+1 < len(s.order) {
		s.position++
		s.current = e.enter(s.order[s.position])
		e.observer.OnAdvance(s.id, s.position, len(s.order))
		return nil
	}
	s.position = len(s.order)
	s.done = true
	e.observer.OnComplete(s.id, s.score, len(s.order))
	return nil
}

// Reset abandons the session and returns to theme selection. The bank stays
// loaded.
func (e *Engine) Reset() {
	id := ""
	if e.session != nil {
		id = e.session.id
	}
	e.session = nil
	e.observer.OnReset(id)
}

// Snapshot returns a copy of everything a front end may display.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{Phase: e.Phase()}
	if e.bank != nil {
		snap.Themes = e.bank.Themes()
	}
	s := e.session
	if s == nil {
		return snap
	}
	snap.SessionID = s.id
	snap.Theme = s.theme
	snap.Score = s.score
	snap.Position = s.position
	snap.Total = len(s.order)
	if !s.done {
		snap.Question = bank.Clone(s.order[s.position])
		snap.Interaction = s.current.snapshot()
	}
	return snap
}

// enter builds fresh interaction state for a question.
func (e *Engine) enter(question bank.Question) interaction {
	in := interaction{stage: StageAwaitingAnswer}
	if order, ok := question.(bank.AdjectiveOrder); ok {
		in.pool = Shuffle(order.Order, e.rng)
	}
	return in
}

// current returns the active session and question, or ErrWrongPhase.
func (e *Engine) current(op string) (*session, bank.Question, error) {
	if e.Phase() != PhaseInQuestion {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrWrongPhase)
	}
	return e.session, e.session.order[e.session.position], nil
}
