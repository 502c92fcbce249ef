package quiz

import (
	"fmt"

	"quizplay/internal/bank"
)

// Pick appends the word in the given pool slot to the selection.
func (e *Engine) Pick(slot int) error {
	s, err := e.selectable("pick")
	if err != nil {
		return err
	}
	in := &s.current
	if slot < 0 || slot >= len(in.pool) {
		return fmt.Errorf("%w: slot %d out of range", ErrInvalidSlot, slot)
	}
	if in.isPicked(slot) {
		return fmt.Errorf("%w: slot %d already selected", ErrInvalidSlot, slot)
	}
	in.picked = append(in.picked, slot)
	return nil
}

// PickWord picks the first free slot holding word. Duplicate words occupy
// separate slots, so each can be picked once.
func (e *Engine) PickWord(word string) error {
	s, err := e.selectable("pick")
	if err != nil {
		return err
	}
	for slot, candidate := range s.current.pool {
		if candidate == word && !s.current.isPicked(slot) {
			s.current.picked = append(s.current.picked, slot)
			return nil
		}
	}
	return fmt.Errorf("%w: no free slot holds %q", ErrInvalidSlot, word)
}

// Retract removes the selection entry at index, returning its slot to the
// pool.
func (e *Engine) Retract(index int) error {
	s, err := e.selectable("retract")
	if err != nil {
		return err
	}
	in := &s.current
	if index < 0 || index >= len(in.picked) {
		return fmt.Errorf("%w: selection index %d out of range", ErrInvalidSlot, index)
	}
	in.picked = append(in.picked[:index], in.picked[index+1:]...)
	return nil
}

// RetractSlot removes the selection entry that took the given pool slot.
func (e *Engine) RetractSlot(slot int) error {
	s, err := e.selectable("retract")
	if err != nil {
		return err
	}
	for index, picked := range s.current.picked {
		if picked == slot {
			return e.Retract(index)
		}
	}
	return fmt.Errorf("%w: slot %d is not selected", ErrInvalidSlot, slot)
}

// RetractLast removes the most recently picked word.
func (e *Engine) RetractLast() error {
	s, err := e.selectable("retract")
	if err != nil {
		return err
	}
	if len(s.current.picked) == 0 {
		return fmt.Errorf("%w: selection is empty", ErrInvalidSlot)
	}
	return e.Retract(len(s.current.picked) - 1)
}

// selectable returns the session when the current question accepts pool
// edits.
func (e *Engine) selectable(op string) (*session, error) {
	s, question, err := e.current(op)
	if err != nil {
		return nil, err
	}
	if _, ok := question.(bank.AdjectiveOrder); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrAnswerKind)
	}
	if s.current.stage == StageRevealed {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyAnswered)
	}
	return s, nil
}
