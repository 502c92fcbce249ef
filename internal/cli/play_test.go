package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizplay/internal/config"
	"quizplay/internal/testutil"
)

// TestPlayPlainSession verifies a scripted session through the plain UI.
func TestPlayPlainSession(t *testing.T) {
	dir := isolate(t)
	withTerminal(t, false)
	path := testutil.WriteFile(t, dir, "bank.json", sampleBank)
	withStdin(t, "QCM\n2\n")

	code, out, errOut := runCLI("play", "--bank", path, "--seed", "4")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	for _, want := range []string{"Loaded 2 themes (3 questions)", "Correct!", "Score: 1 / 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

// TestPlayVerboseWritesLog verifies verbose lines reach stdout and the log
// file.
func TestPlayVerboseWritesLog(t *testing.T) {
	dir := isolate(t)
	withTerminal(t, true)
	path := testutil.WriteFile(t, dir, "bank.json", sampleBank)
	logPath := filepath.Join(dir, "logs", "play.log")
	withStdin(t, "")

	code, out, errOut := runCLI("play", "--bank", path, "--theme", "Vocab", "--verbose", "--log", logPath, "--no-color")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "[verbose] bank loaded: 2 themes, 3 questions") {
		t.Fatalf("expected verbose output, got:\n%s", out)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `theme "Vocab", 2 questions`) {
		t.Fatalf("expected session line in log, got %q", data)
	}
}

// TestPlayUsesConfigDefaults verifies config values feed the session.
func TestPlayUsesConfigDefaults(t *testing.T) {
	dir := isolate(t)
	withTerminal(t, false)
	testutil.WriteFile(t, dir, "banks/french.json", sampleBank)
	testutil.WriteFile(t, dir, ".quizplay/config.yml", "version: 1\nbank: banks/french.json\ntheme: QCM\nui: plain\n")
	withStdin(t, "1\n")

	code, out, errOut := runCLI("play")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Question 1/1: Capitale ?") || !strings.Contains(out, "Incorrect. Expected: Paris") {
		t.Fatalf("expected configured theme to start, got:\n%s", out)
	}
}

// TestPlayEnvOverridesConfig verifies QUIZPLAY_THEME beats the config file.
func TestPlayEnvOverridesConfig(t *testing.T) {
	dir := isolate(t)
	withTerminal(t, false)
	testutil.WriteFile(t, dir, "bank.json", sampleBank)
	testutil.WriteFile(t, dir, ".quizplay/config.yml", "version: 1\nbank: bank.json\ntheme: QCM\n")
	t.Setenv("QUIZPLAY_THEME", "Vocab")
	withStdin(t, "")

	code, out, errOut := runCLI("play")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Question 1/2") {
		t.Fatalf("expected Vocab session, got:\n%s", out)
	}
}

// TestPlayPlainRequiresBank verifies plain prompts need a bank up front.
func TestPlayPlainRequiresBank(t *testing.T) {
	isolate(t)
	withTerminal(t, false)
	code, _, errOut := runCLI("play", "--ui", "plain")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "--bank") {
		t.Fatalf("expected bank hint, got %q", errOut)
	}
}

// TestPlayInvalidBank verifies malformed banks fail the command.
func TestPlayInvalidBank(t *testing.T) {
	dir := isolate(t)
	withTerminal(t, false)
	path := testutil.WriteFile(t, dir, "bank.json", `{"A": "nope"}`)
	code, _, errOut := runCLI("play", "--bank", path)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "invalid bank format") {
		t.Fatalf("expected format error, got %q", errOut)
	}
}

// TestPlayRejectsUnknownUIMode verifies flag validation.
func TestPlayRejectsUnknownUIMode(t *testing.T) {
	dir := isolate(t)
	path := testutil.WriteFile(t, dir, "bank.json", sampleBank)
	if code, _, _ := runCLI("play", "--bank", path, "--ui", "fancy"); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

// TestPlayBankFlagReplacesStaleConfig verifies --bank wins over a configured
// bank that no longer exists.
func TestPlayBankFlagReplacesStaleConfig(t *testing.T) {
	dir := isolate(t)
	withTerminal(t, false)
	path := testutil.WriteFile(t, dir, "bank.json", sampleBank)
	testutil.WriteFile(t, dir, ".quizplay/config.yml", "version: 1\nbank: removed.json\n")
	t.Setenv(config.EnvBank, "also-removed.json")
	withStdin(t, "")

	code, out, errOut := runCLI("play", "--bank", path, "--ui", "plain")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Loaded 2 themes") {
		t.Fatalf("expected flag bank to load, got:\n%s", out)
	}
}
