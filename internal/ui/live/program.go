package live

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizplay/internal/quiz"
)

// Run shows the live UI on the alt screen until the player quits or ctx is
// cancelled.
func Run(ctx context.Context, engine *quiz.Engine, stdin io.Reader, stdout io.Writer, opts Options) error {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if opts.Context == nil {
		opts.Context = ctx
	}
	program := tea.NewProgram(
		NewModel(engine, opts),
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("live ui: %w", err)
	}
	return nil
}
