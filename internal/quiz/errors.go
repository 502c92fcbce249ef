package quiz

import "errors"

// Guard errors. A correct front end never triggers these; they report misuse
// of the engine and leave its state unchanged.
var (
	ErrWrongPhase          = errors.New("operation not allowed in the current phase")
	ErrUnknownTheme        = errors.New("unknown theme")
	ErrUnknownOption       = errors.New("answer is not one of the options")
	ErrAnswerKind          = errors.New("answer does not fit the current question")
	ErrIncompleteSelection = errors.New("selection is incomplete")
	ErrAlreadyAnswered     = errors.New("question already answered")
	ErrNotYetAnswered      = errors.New("question not answered yet")
	ErrInvalidSlot         = errors.New("invalid selection slot")
)

// ErrInvalidDegree reports a degree outside 0..3. The question stays in the
// degree step so the player can answer again.
var ErrInvalidDegree = errors.New("invalid degree")
