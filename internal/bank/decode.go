package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// rawTheme is a theme as it appears in the exchange format, before the
// questions are resolved into their variants.
type rawTheme struct {
	Name      string
	Questions []rawQuestion
}

type rawQuestion struct {
	Type     string      `json:"type" yaml:"type"`
	Question string      `json:"question" yaml:"question"`
	Options  []string    `json:"options,omitempty" yaml:"options,omitempty"`
	Answer   answerField `json:"answer" yaml:"answer"`
	Degree   degreeField `json:"degree,omitempty" yaml:"degree,omitempty"`
}

// answerField holds either a single string or, for adjectif-order, a list
// of words.
type answerField struct {
	Text   string
	Words  []string
	IsList bool
}

func (field *answerField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var words []string
		if err := json.Unmarshal(trimmed, &words); err != nil {
			return fmt.Errorf("answer must be a string or a list of strings")
		}
		field.Words = words
		field.IsList = true
		return nil
	}
	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return fmt.Errorf("answer must be a string or a list of strings")
	}
	field.Text = text
	return nil
}

func (field *answerField) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var words []string
		if err := node.Decode(&words); err != nil {
			return fmt.Errorf("line %d: answer must be a string or a list of strings", node.Line)
		}
		field.Words = words
		field.IsList = true
		return nil
	case yaml.ScalarNode:
		field.Text = node.Value
		return nil
	default:
		return fmt.Errorf("line %d: answer must be a string or a list of strings", node.Line)
	}
}

// degreeField keeps the raw degree text so it can be validated with the
// rest of the question. Both "2" and 2 are accepted.
type degreeField struct {
	Value string
	Set   bool
}

func (field *degreeField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return fmt.Errorf("degree: %w", err)
		}
		field.Value = text
		field.Set = true
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("degree must be a string or a number")
	}
	if _, err := strconv.Atoi(number.String()); err != nil {
		return fmt.Errorf("degree must be an integer, got %s", number)
	}
	field.Value = number.String()
	field.Set = true
	return nil
}

func (field *degreeField) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: degree must be a string or a number", node.Line)
	}
	field.Value = node.Value
	field.Set = true
	return nil
}

// resolve converts raw themes into typed questions and validates them.
// Issues keep the index of the question in the source document.
func resolve(raw []rawTheme, collector *issueCollector) []Theme {
	themes := make([]Theme, 0, len(raw))
	for _, theme := range raw {
		collector.checkThemeHeader(theme.Name, len(theme.Questions))
		questions := make([]Question, 0, len(theme.Questions))
		for i, question := range theme.Questions {
			prefix := questionField(theme.Name, i)
			resolved, ok := resolveQuestion(prefix, question, collector)
			if !ok {
				continue
			}
			collector.checkQuestion(prefix, resolved)
			questions = append(questions, resolved)
		}
		themes = append(themes, Theme{Name: theme.Name, Questions: questions})
	}
	return themes
}

func resolveQuestion(prefix string, raw rawQuestion, collector *issueCollector) (Question, bool) {
	switch Kind(raw.Type) {
	case KindMultipleChoice:
		if raw.Answer.IsList {
			collector.add(prefix+".answer", "must be a string")
			return nil, false
		}
		return MultipleChoice{Text: raw.Question, Options: raw.Options, Correct: raw.Answer.Text}, true
	case KindVocab:
		if raw.Answer.IsList {
			collector.add(prefix+".answer", "must be a string")
			return nil, false
		}
		return Vocab{Text: raw.Question, Answer: raw.Answer.Text}, true
	case KindAdjectiveOrder:
		if !raw.Answer.IsList {
			collector.add(prefix+".answer", "must be a list of words")
			return nil, false
		}
		return AdjectiveOrder{Text: raw.Question, Order: raw.Answer.Words}, true
	case KindConditional:
		if raw.Answer.IsList {
			collector.add(prefix+".answer", "must be a string")
			return nil, false
		}
		if !raw.Degree.Set {
			collector.add(prefix+".degree", "is required")
			return nil, false
		}
		degree, err := ParseDegree(raw.Degree.Value)
		if err != nil {
			collector.add(prefix+".degree", "must be one of 0, 1, 2, 3")
			return nil, false
		}
		return Conditional{Text: raw.Question, Answer: raw.Answer.Text, Degree: degree}, true
	case "":
		collector.add(prefix+".type", "is required")
	default:
		collector.add(prefix+".type", fmt.Sprintf("unsupported type %q", raw.Type))
	}
	return nil, false
}
