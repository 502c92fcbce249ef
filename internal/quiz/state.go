package quiz

import "quizplay/internal/bank"

// Phase is the coarse state of the engine as seen by a front end.
type Phase int

const (
	PhaseNoBank Phase = iota
	PhaseThemeSelection
	PhaseInQuestion
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseNoBank:
		return "no-bank"
	case PhaseThemeSelection:
		return "theme-selection"
	case PhaseInQuestion:
		return "in-question"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Stage is the per-question interaction state.
type Stage int

const (
	// StageAwaitingAnswer waits for the primary answer.
	StageAwaitingAnswer Stage = iota
	// StageAwaitingDegree waits for the degree of a conditional whose
	// primary answer was correct.
	StageAwaitingDegree
	// StageRevealed means the answer is scored and correctness is shown.
	StageRevealed
)

func (s Stage) String() string {
	switch s {
	case StageAwaitingAnswer:
		return "awaiting-answer"
	case StageAwaitingDegree:
		return "awaiting-degree"
	case StageRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Slot is one entry of an adjective-order pool.
type Slot struct {
	Word   string
	Picked bool
}

// Interaction is a copy of the transient state of the current question.
type Interaction struct {
	Stage          Stage
	Primary        string
	PrimaryCorrect bool
	Degree         string
	Correct        bool
	// Pool, Selection and Submitted are only populated for adjective-order.
	Pool      []Slot
	Selection []string
	Submitted []string
	CanSubmit bool
}

// Revealed reports whether the current question has been scored.
func (i Interaction) Revealed() bool {
	return i.Stage == StageRevealed
}

// Snapshot is the read-only view of the engine offered to front ends.
type Snapshot struct {
	Phase       Phase
	Themes      []string
	SessionID   string
	Theme       string
	Question    bank.Question
	Interaction Interaction
	Score       int
	Position    int
	Total       int
}

// Outcome is the result of an accepted submission.
type Outcome struct {
	Stage   Stage
	Correct bool
	Score   int
}

// Revealed reports whether the submission finished the question.
func (o Outcome) Revealed() bool {
	return o.Stage == StageRevealed
}

// interaction is the mutable per-question state owned by a session.
type interaction struct {
	stage          Stage
	primary        string
	primaryCorrect bool
	degree         string
	correct        bool
	pool           []string
	picked         []int
	submitted      []string
}

func (in *interaction) isPicked(slot int) bool {
	for _, picked := range in.picked {
		if picked == slot {
			return true
		}
	}
	return false
}

func (in *interaction) selection() []string {
	words := make([]string, 0, len(in.picked))
	for _, slot := range in.picked {
		words = append(words, in.pool[slot])
	}
	return words
}

func (in *interaction) snapshot() Interaction {
	view := Interaction{
		Stage:          in.stage,
		Primary:        in.primary,
		PrimaryCorrect: in.primaryCorrect,
		Degree:         in.degree,
		Correct:        in.correct,
	}
	if in.pool != nil {
		view.Pool = make([]Slot, len(in.pool))
		for i, word := range in.pool {
			view.Pool[i] = Slot{Word: word, Picked: in.isPicked(i)}
		}
		view.Selection = in.selection()
		view.CanSubmit = in.stage == StageAwaitingAnswer && len(in.picked) == len(in.pool)
	}
	if in.submitted != nil {
		view.Submitted = append([]string(nil), in.submitted...)
	}
	return view
}

// session is the state of one quiz run over a theme.
type session struct {
	id       string
	theme    string
	order    []bank.Question
	position int
	score    int
	done     bool
	current  interaction
}
