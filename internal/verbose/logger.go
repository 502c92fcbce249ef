// Package verbose streams quiz lifecycle events as [verbose] lines to the
// terminal and an optional log file.
package verbose

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizplay/internal/quiz"
)

const prefix = "[verbose]"

// Options configures a Logger.
type Options struct {
	// Writer receives styled lines, typically stdout. Nil disables it.
	Writer io.Writer
	// LogWriter receives the same lines without colour.
	LogWriter io.Writer
	NoColor   bool
}

type sink struct {
	writer  io.Writer
	palette palette
}

// Logger writes verbose lines to every configured sink and implements
// quiz.Observer.
type Logger struct {
	sinks []sink
}

var _ quiz.Observer = (*Logger)(nil)

// New builds a Logger. The log sink is never coloured.
func New(opts Options) *Logger {
	logger := &Logger{}
	if opts.Writer != nil {
		logger.sinks = append(logger.sinks, sink{writer: opts.Writer, palette: paletteFor(opts.Writer, opts.NoColor)})
	}
	if opts.LogWriter != nil {
		logger.sinks = append(logger.sinks, sink{writer: opts.LogWriter})
	}
	return logger
}

// Enabled reports whether any sink is configured.
func (l *Logger) Enabled() bool {
	return l != nil && len(l.sinks) > 0
}

// Logf writes one formatted line to each sink.
func (l *Logger) Logf(style Style, format string, args ...any) {
	if !l.Enabled() {
		return
	}
	line := fmt.Sprintf(format, args...)
	for _, s := range l.sinks {
		fmt.Fprintf(s.writer, "%s %s\n", s.palette.renderPrefix(prefix), s.palette.apply(style, line))
	}
}

// OpenLogFile creates path and its parent directory, truncating any
// previous log.
func OpenLogFile(path string) (*os.File, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("log path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

func (l *Logger) OnBankLoaded(themes, questions int) {
	l.Logf(StyleSession, "bank loaded: %d themes, %d questions", themes, questions)
}

func (l *Logger) OnBankRejected(err error) {
	for i, line := range strings.Split(err.Error(), "\n") {
		if i == 0 {
			l.Logf(StyleError, "bank rejected: %s", line)
			continue
		}
		l.Logf(StyleError, "  %s", line)
	}
}

func (l *Logger) OnThemeSelected(sessionID, theme string, total int) {
	l.Logf(StyleSession, "session %s: theme %q, %d questions", sessionID, theme, total)
}

func (l *Logger) OnAnswer(event quiz.AnswerEvent) {
	switch {
	case event.Stage == quiz.StageAwaitingDegree:
		l.Logf(StyleDefault, "question %d (%s): answer accepted, awaiting degree", event.Position+1, event.Kind)
	case event.Correct:
		l.Logf(StyleCorrect, "question %d (%s): correct, score %d", event.Position+1, event.Kind, event.Score)
	default:
		l.Logf(StyleIncorrect, "question %d (%s): incorrect, score %d", event.Position+1, event.Kind, event.Score)
	}
}

func (l *Logger) OnAdvance(sessionID string, position, total int) {
	l.Logf(StyleDefault, "question %d/%d", position+1, total)
}

func (l *Logger) OnComplete(sessionID string, score, total int) {
	l.Logf(StyleSession, "session %s complete: %d/%d", sessionID, score, total)
}

func (l *Logger) OnReset(sessionID string) {
	if sessionID == "" {
		l.Logf(StyleDefault, "reset")
		return
	}
	l.Logf(StyleDefault, "session %s reset", sessionID)
}
