package bank

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the question variants. The values are the "type" tags
// of the exchange format.
type Kind string

const (
	KindMultipleChoice Kind = "qcm"
	KindVocab          Kind = "vocab"
	KindAdjectiveOrder Kind = "adjectif-order"
	KindConditional    Kind = "conditionnel"
)

// Question is one of MultipleChoice, Vocab, AdjectiveOrder or Conditional.
// The set is closed; consumers are expected to type-switch over all four.
type Question interface {
	Kind() Kind
	Prompt() string
	question()
}

// MultipleChoice is a question answered by picking one of Options verbatim.
type MultipleChoice struct {
	Text    string
	Options []string
	Correct string
}

// Vocab is a free-text question compared case- and whitespace-insensitively.
type Vocab struct {
	Text   string
	Answer string
}

// AdjectiveOrder asks the player to arrange the words of Order. Words may
// repeat; only their sequence matters.
type AdjectiveOrder struct {
	Text  string
	Order []string
}

// Conditional is a two-step question: a free-text answer, then the degree of
// the conditional it uses.
type Conditional struct {
	Text   string
	Answer string
	Degree Degree
}

func (MultipleChoice) Kind() Kind { return KindMultipleChoice }
func (Vocab) Kind() Kind { return KindVocab }
func (AdjectiveOrder) Kind() Kind { return KindAdjectiveOrder }
func (Conditional) Kind() Kind { return KindConditional }

func (q MultipleChoice) Prompt() string { return q.Text }
func (q Vocab) Prompt() string { return q.Text }
func (q AdjectiveOrder) Prompt() string { return q.Text }
func (q Conditional) Prompt() string { return q.Text }

func (MultipleChoice) question() {}
func (Vocab) question() {}
func (AdjectiveOrder) question() {}
func (Conditional) question() {}

// Degree is the grammatical degree of a conditional, 0 through 3.
type Degree int

// MaxDegree is the highest valid degree.
const MaxDegree Degree = 3

// Valid reports whether the degree is within 0..3.
func (d Degree) Valid() bool {
	return d >= 0 && d <= MaxDegree
}

func (d Degree) String() string {
	return strconv.Itoa(int(d))
}

// ParseDegree reads a trimmed "0".."3" value.
func ParseDegree(value string) (Degree, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) != 1 || trimmed[0] < '0' || trimmed[0] > '0'+byte(MaxDegree) {
		return 0, fmt.Errorf("degree %q must be one of 0, 1, 2, 3", value)
	}
	return Degree(trimmed[0] - '0'), nil
}

// Theme is a named, ordered group of questions.
type Theme struct {
	Name      string
	Questions []Question
}

// Clone returns q with its slices copied, so the result shares no memory
// with q.
func Clone(q Question) Question {
	switch v := q.(type) {
	case MultipleChoice:
		v.Options = append([]string(nil), v.Options...)
		return v
	case AdjectiveOrder:
		v.Order = append([]string(nil), v.Order...)
		return v
	default:
		return q
	}
}

// ExpectedAnswer renders the canonical answer shown after a wrong answer.
func ExpectedAnswer(q Question) string {
	switch v := q.(type) {
	case MultipleChoice:
		return v.Correct
	case Vocab:
		return v.Answer
	case AdjectiveOrder:
		return strings.Join(v.Order, " ")
	case Conditional:
		return fmt.Sprintf("%s (degree %d)", v.Answer, v.Degree)
	default:
		return ""
	}
}

// Bank holds themes in their source order. It is immutable after
// construction: questions are cloned on the way in and on the way out.
type Bank struct {
	themes []Theme
	index  map[string]int
}

// New validates themes and builds a Bank from them.
func New(themes ...Theme) (*Bank, error) {
	collector := &issueCollector{}
	for _, theme := range themes {
		collector.checkTheme(theme)
	}
	collector.checkThemeSet(themes)
	if err := collector.result(); err != nil {
		return nil, err
	}
	return build(themes), nil
}

func build(themes []Theme) *Bank {
	b := &Bank{
		themes: make([]Theme, len(themes)),
		index:  make(map[string]int, len(themes)),
	}
	for i, theme := range themes {
		b.themes[i] = Theme{Name: theme.Name, Questions: cloneAll(theme.Questions)}
		b.index[theme.Name] = i
	}
	return b
}

func cloneAll(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = Clone(q)
	}
	return out
}

// Themes returns theme names in source order.
func (b *Bank) Themes() []string {
	names := make([]string, 0, len(b.themes))
	for _, theme := range b.themes {
		names = append(names, theme.Name)
	}
	return names
}

// Questions returns a copy of the questions of a theme.
func (b *Bank) Questions(theme string) ([]Question, bool) {
	i, ok := b.index[theme]
	if !ok {
		return nil, false
	}
	return cloneAll(b.themes[i].Questions), true
}

// Len returns the number of themes.
func (b *Bank) Len() int {
	return len(b.themes)
}

// QuestionCount returns the number of questions across all themes.
func (b *Bank) QuestionCount() int {
	total := 0
	for _, theme := range b.themes {
		total += len(theme.Questions)
	}
	return total
}
