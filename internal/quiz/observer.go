package quiz

import "quizplay/internal/bank"

// AnswerEvent describes an accepted submission.
type AnswerEvent struct {
	SessionID string
	Position  int
	Kind      bank.Kind
	Stage     Stage
	Correct   bool
	Score     int
}

// Observer receives engine lifecycle events.
type Observer interface {
	OnBankLoaded(themes int, questions int)
	OnBankRejected(err error)
	OnThemeSelected(sessionID string, theme string, total int)
	OnAnswer(event AnswerEvent)
	OnAdvance(sessionID string, position int, total int)
	OnComplete(sessionID string, score int, total int)
	OnReset(sessionID string)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnBankLoaded(int, int) {}
func (NopObserver) OnBankRejected(error) {}
func (NopObserver) OnThemeSelected(string, string, int) {}
func (NopObserver) OnAnswer(AnswerEvent) {}
func (NopObserver) OnAdvance(string, int, int) {}
func (NopObserver) OnComplete(string, int, int) {}
func (NopObserver) OnReset(string) {}
