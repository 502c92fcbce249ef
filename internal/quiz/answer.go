package quiz

import (
	"fmt"
	"slices"
	"strings"

	"quizplay/internal/bank"
)

// SubmitAnswer submits the primary answer of a qcm, vocab or conditionnel
// question. A correct conditional answer moves to the degree step; a wrong
// one reveals the question immediately.
func (e *Engine) SubmitAnswer(primary string) (Outcome, error) {
	s, question, err := e.current("submit answer")
	if err != nil {
		return Outcome{}, err
	}
	if s.current.stage == StageRevealed {
		return Outcome{}, fmt.Errorf("submit answer: %w", ErrAlreadyAnswered)
	}

	switch q := question.(type) {
	case bank.MultipleChoice:
		if !slices.Contains(q.Options, primary) {
			return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownOption, primary)
		}
		s.current.primary = primary
		return e.reveal(s, q, primary == q.Correct), nil
	case bank.Vocab:
		s.current.primary = primary
		return e.reveal(s, q, bank.NormalizeAnswerText(primary) == bank.NormalizeAnswerText(q.Answer)), nil
	case bank.Conditional:
		if s.current.stage == StageAwaitingDegree {
			return Outcome{}, fmt.Errorf("submit answer: %w: degree expected", ErrAnswerKind)
		}
		s.current.primary = primary
		if bank.NormalizeAnswerText(primary) != bank.NormalizeAnswerText(q.Answer) {
			return e.reveal(s, q, false), nil
		}
		s.current.primaryCorrect = true
		s.current.stage = StageAwaitingDegree
		e.observer.OnAnswer(AnswerEvent{
			SessionID: s.id,
			Position:  s.position,
			Kind:      q.Kind(),
			Stage:     StageAwaitingDegree,
			Correct:   true,
			Score:     s.score,
		})
		return Outcome{Stage: StageAwaitingDegree, Correct: true, Score: s.score}, nil
	case bank.AdjectiveOrder:
		return Outcome{}, fmt.Errorf("submit answer: %w: word order expected", ErrAnswerKind)
	default:
		return Outcome{}, fmt.Errorf("submit answer: %w: unsupported question %T", ErrAnswerKind, question)
	}
}

// SubmitDegree completes a conditional question whose primary answer was
// correct. The value is trimmed and must be one of "0".."3".
func (e *Engine) SubmitDegree(value string) (Outcome, error) {
	s, question, err := e.current("submit degree")
	if err != nil {
		return Outcome{}, err
	}
	if s.current.stage == StageRevealed {
		return Outcome{}, fmt.Errorf("submit degree: %w", ErrAlreadyAnswered)
	}
	q, ok := question.(bank.Conditional)
	if !ok || s.current.stage != StageAwaitingDegree {
		return Outcome{}, fmt.Errorf("submit degree: %w", ErrAnswerKind)
	}
	degree, err := bank.ParseDegree(value)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrInvalidDegree, err)
	}
	s.current.degree = strings.TrimSpace(value)
	return e.reveal(s, q, s.current.primaryCorrect && degree == q.Degree), nil
}

// SubmitOrder submits a complete word order for an adjective-order question.
func (e *Engine) SubmitOrder(words []string) (Outcome, error) {
	s, question, err := e.current("submit order")
	if err != nil {
		return Outcome{}, err
	}
	return e.submitOrder(s, question, words)
}

// SubmitSelection submits the words picked from the pool so far.
func (e *Engine) SubmitSelection() (Outcome, error) {
	s, question, err := e.current("submit selection")
	if err != nil {
		return Outcome{}, err
	}
	return e.submitOrder(s, question, s.current.selection())
}

func (e *Engine) submitOrder(s *session, question bank.Question, words []string) (Outcome, error) {
	if s.current.stage == StageRevealed {
		return Outcome{}, fmt.Errorf("submit order: %w", ErrAlreadyAnswered)
	}
	q, ok := question.(bank.AdjectiveOrder)
	if !ok {
		return Outcome{}, fmt.Errorf("submit order: %w", ErrAnswerKind)
	}
	if len(words) != len(q.Order) {
		return Outcome{}, fmt.Errorf("%w: %d of %d words", ErrIncompleteSelection, len(words), len(q.Order))
	}
	s.current.submitted = append([]string(nil), words...)
	return e.reveal(s, q, bank.NormalizeWordOrder(words) == bank.NormalizeWordOrder(q.Order)), nil
}

// reveal scores the current question. The score is frozen afterwards since
// every submit path rejects revealed questions.
func (e *Engine) reveal(s *session, question bank.Question, correct bool) Outcome {
	s.current.stage = StageRevealed
	s.current.correct = correct
	if correct {
		s.score++
	}
	e.observer.OnAnswer(AnswerEvent{
		SessionID: s.id,
		Position:  s.position,
		Kind:      question.Kind(),
		Stage:     StageRevealed,
		Correct:   correct,
		Score:     s.score,
	})
	return Outcome{Stage: StageRevealed, Correct: correct, Score: s.score}
}
