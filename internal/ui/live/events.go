package live

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ReadFunc reads a bank file. source.ReadFile satisfies it.
type ReadFunc func(ctx context.Context, path string) ([]byte, error)

// bankReadMsg delivers the result of an asynchronous bank read.
type bankReadMsg struct {
	path string
	data []byte
	err  error
}

// loadBank reads path off the UI goroutine.
func loadBank(ctx context.Context, read ReadFunc, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := read(ctx, path)
		return bankReadMsg{path: path, data: data, err: err}
	}
}
