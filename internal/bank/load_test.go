package bank

import (
	"errors"
	"strings"
	"testing"
)

const frenchBank = `{
  "Vocabulaire": [
    {"type": "vocab", "question": "Traduire: cat", "answer": "chat"},
    {"type": "qcm", "question": "Capitale de la France ?", "options": ["Lyon", "Paris"], "answer": "Paris"}
  ],
  "Adjectifs": [
    {"type": "adjectif-order", "question": "Ordonnez", "answer": ["une", "jolie", "petite", "maison"]}
  ],
  "Conditionnel": [
    {"type": "conditionnel", "question": "Si j'avais su, j'...", "answer": "aurait aimé", "degree": "2"},
    {"type": "conditionnel", "question": "S'il pleut, je ...", "answer": "reste", "degree": 0}
  ]
}`

// TestParseJSONKeepsThemeOrder verifies themes come back in document order.
func TestParseJSONKeepsThemeOrder(t *testing.T) {
	b, err := Parse([]byte(frenchBank), FormatJSON)
	if err != nil {
		t.Fatalf("parse bank: %v", err)
	}
	themes := b.Themes()
	want := []string{"Vocabulaire", "Adjectifs", "Conditionnel"}
	if strings.Join(themes, ",") != strings.Join(want, ",") {
		t.Fatalf("expected themes %v, got %v", want, themes)
	}
	if b.QuestionCount() != 5 {
		t.Fatalf("expected 5 questions, got %d", b.QuestionCount())
	}
}

// TestParseJSONResolvesVariants verifies each type tag maps to its variant.
func TestParseJSONResolvesVariants(t *testing.T) {
	b, err := Parse([]byte(frenchBank), FormatJSON)
	if err != nil {
		t.Fatalf("parse bank: %v", err)
	}
	vocab, _ := b.Questions("Vocabulaire")
	if q, ok := vocab[0].(Vocab); !ok || q.Answer != "chat" {
		t.Fatalf("expected vocab question, got %#v", vocab[0])
	}
	if q, ok := vocab[1].(MultipleChoice); !ok || q.Correct != "Paris" || len(q.Options) != 2 {
		t.Fatalf("expected qcm question, got %#v", vocab[1])
	}
	adjectives, _ := b.Questions("Adjectifs")
	if q, ok := adjectives[0].(AdjectiveOrder); !ok || len(q.Order) != 4 {
		t.Fatalf("expected adjective order question, got %#v", adjectives[0])
	}
	conditionals, _ := b.Questions("Conditionnel")
	if q, ok := conditionals[0].(Conditional); !ok || q.Degree != 2 {
		t.Fatalf("expected degree 2 conditional, got %#v", conditionals[0])
	}
	if q, ok := conditionals[1].(Conditional); !ok || q.Degree != 0 {
		t.Fatalf("expected numeric degree 0 to parse, got %#v", conditionals[1])
	}
}

// TestParseYAML verifies the YAML rendition of the format is accepted.
func TestParseYAML(t *testing.T) {
	payload := `Couleurs:
  - type: qcm
    question: "Rouge en anglais ?"
    options: [red, blue]
    answer: red
  - type: adjectif-order
    question: "Ordonnez"
    answer: [un, grand, chien]
Grammaire:
  - type: conditionnel
    question: "Si..."
    answer: "aurais"
    degree: 1
`
	b, err := Parse([]byte(payload), FormatYAML)
	if err != nil {
		t.Fatalf("parse yaml bank: %v", err)
	}
	if got := b.Themes(); len(got) != 2 || got[0] != "Couleurs" || got[1] != "Grammaire" {
		t.Fatalf("unexpected themes: %v", got)
	}
	grammar, _ := b.Questions("Grammaire")
	if q := grammar[0].(Conditional); q.Degree != 1 {
		t.Fatalf("expected degree 1, got %d", q.Degree)
	}
}

// TestParseRejectsMalformedInput verifies syntax and shape errors are reported
// as invalid format.
func TestParseRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"Theme": [`,
		"array top level": `[{"type": "vocab", "question": "q", "answer": "a"}]`,
		"theme not list":  `{"Theme": {"type": "vocab"}}`,
		"trailing doc":    `{"Theme": [{"type": "vocab", "question": "q", "answer": "a"}]} {}`,
		"answer object":   `{"Theme": [{"type": "vocab", "question": "q", "answer": {"a": 1}}]}`,
		"empty":           ``,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(payload), FormatJSON)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("expected invalid format error, got %v", err)
			}
		})
	}
}

// TestParseIgnoresExtraKeys verifies both formats accept questions carrying
// keys the player does not use.
func TestParseIgnoresExtraKeys(t *testing.T) {
	payloads := map[Format]string{
		FormatJSON: `{"Theme": [{"type": "vocab", "question": "q", "answer": "a", "hint": "x"}]}`,
		FormatYAML: "Theme:\n  - type: vocab\n    question: q\n    answer: a\n    hint: x\n",
	}
	for format, payload := range payloads {
		b, err := Parse([]byte(payload), format)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", format, err)
		}
		questions, _ := b.Questions("Theme")
		if q, ok := questions[0].(Vocab); !ok || q.Answer != "a" {
			t.Fatalf("%s: unexpected question %#v", format, questions[0])
		}
	}
}

// TestFormatForPath verifies extension based format detection.
func TestFormatForPath(t *testing.T) {
	if FormatForPath("bank.YAML") != FormatYAML {
		t.Fatalf("expected yaml for .YAML")
	}
	if FormatForPath("bank.yml") != FormatYAML {
		t.Fatalf("expected yaml for .yml")
	}
	if FormatForPath("bank.json") != FormatJSON || FormatForPath("bank") != FormatJSON {
		t.Fatalf("expected json default")
	}
}
