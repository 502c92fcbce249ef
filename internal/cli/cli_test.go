package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"quizplay/internal/config"
	"quizplay/internal/testutil"
)

const sampleBank = `{
  "Vocab": [
    {"type": "vocab", "question": "Traduire: cat", "answer": "chat"},
    {"type": "vocab", "question": "Traduire: dog", "answer": "chien"}
  ],
  "QCM": [{"type": "qcm", "question": "Capitale ?", "options": ["Lyon", "Paris"], "answer": "Paris"}]
}`

// isolate runs the test from an empty directory with no QUIZPLAY_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{config.EnvBank, config.EnvTheme, config.EnvUI, config.EnvNoColor, config.EnvSeed} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func withStdin(t *testing.T, input string) {
	t.Helper()
	original := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() { stdin = original })
}

func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := stdoutIsTTY
	stdoutIsTTY = func(io.Writer) bool { return tty }
	t.Cleanup(func() { stdoutIsTTY = original })
}

func runCLI(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRootHelp(t *testing.T) {
	code, out, errOut := runCLI("--help")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if errOut != "" {
		t.Fatalf("expected no stderr output, got %q", errOut)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected usage header, got %q", out)
	}
	for _, cmd := range commands {
		if !strings.Contains(out, cmd.Name) {
			t.Fatalf("expected command %q in output", cmd.Name)
		}
	}
}

func TestNoArgsShowsUsage(t *testing.T) {
	code, out, _ := runCLI()
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected usage output, got %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	code, out, errOut := runCLI("nope")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out != "" {
		t.Fatalf("expected no stdout output, got %q", out)
	}
	if !strings.Contains(errOut, "Unknown command") || !strings.Contains(errOut, "Usage:") {
		t.Fatalf("expected unknown command error with usage, got %q", errOut)
	}
}

func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		code, out, _ := runCLI(cmd.Name, "--help")
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitOK, code)
		}
		if !strings.Contains(out, "quizplay "+cmd.Name) {
			t.Fatalf("%s: expected usage line, got %q", cmd.Name, out)
		}
	}
}

// TestValidateReportsBankSummary verifies a valid bank is summarized.
func TestValidateReportsBankSummary(t *testing.T) {
	dir := isolate(t)
	path := testutil.WriteFile(t, dir, "bank.json", sampleBank)
	code, out, errOut := runCLI("validate", path)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if strings.TrimSpace(out) != "Bank OK (2 themes, 3 questions)" {
		t.Fatalf("unexpected output %q", out)
	}
}

// TestValidateListsIssues verifies each issue is printed on its own line.
func TestValidateListsIssues(t *testing.T) {
	dir := isolate(t)
	path := testutil.WriteFile(t, dir, "bank.yaml", `
Broken:
  - type: qcm
    question: "Q"
    options: [a]
    answer: b
  - type: conditionnel
    question: "Q"
    answer: x
    degree: 9
`)
	code, _, errOut := runCLI("validate", path)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, want := range []string{
		`  themes["Broken"][0].options: `,
		`  themes["Broken"][0].answer: `,
		`  themes["Broken"][1].degree: `,
	} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("expected %q in stderr:\n%s", want, errOut)
		}
	}
}

// TestValidateUsesConfiguredBank verifies the bank from config is checked
// when no argument is given.
func TestValidateUsesConfiguredBank(t *testing.T) {
	dir := isolate(t)
	if code, _, errOut := runCLI("init"); code != ExitOK {
		t.Fatalf("init failed: %s", errOut)
	}
	code, out, errOut := runCLI("validate")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.HasPrefix(out, "Bank OK (3 themes") {
		t.Fatalf("unexpected output %q in %s", out, dir)
	}
}

// TestValidateMissingFile verifies read failures exit with an error.
func TestValidateMissingFile(t *testing.T) {
	isolate(t)
	code, _, errOut := runCLI("validate", "missing.json")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "missing.json") {
		t.Fatalf("expected path in error, got %q", errOut)
	}
}

// TestThemesListsInSourceOrder verifies theme listing.
func TestThemesListsInSourceOrder(t *testing.T) {
	dir := isolate(t)
	path := testutil.WriteFile(t, dir, "bank.json", sampleBank)
	code, out, _ := runCLI("themes", path)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if out != "1. Vocab (2 questions)\n2. QCM (1 questions)\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if code, _, _ := runCLI("themes"); code != ExitUsage {
		t.Fatalf("expected usage exit without a bank, got %d", code)
	}
}

// TestInitRefusesToOverwrite verifies init is idempotent-safe.
func TestInitRefusesToOverwrite(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI("init")
	if code != ExitOK || !strings.Contains(out, "sample.json") {
		t.Fatalf("expected scaffold, got %d %q", code, out)
	}
	code, _, errOut := runCLI("init")
	if code != ExitError || !strings.Contains(errOut, "already exists") {
		t.Fatalf("expected overwrite refusal, got %d %q", code, errOut)
	}
}
