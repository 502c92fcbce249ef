package verbose

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Style selects how a verbose line is rendered on a styled sink.
type Style int

const (
	StyleDefault Style = iota
	StyleSession
	StyleCorrect
	StyleIncorrect
	StyleError
)

var isTerminal = term.IsTerminal

type palette struct {
	enabled bool
	prefix  lipgloss.Style
	styles  map[Style]lipgloss.Style
}

func paletteFor(writer io.Writer, noColor bool) palette {
	if noColor || !shouldUseStyling(writer) {
		return palette{}
	}
	renderer := lipgloss.NewRenderer(writer)
	renderer.SetColorProfile(termenv.ANSI)
	return palette{
		enabled: true,
		prefix:  renderer.NewStyle().Faint(true).Foreground(lipgloss.Color("8")),
		styles: map[Style]lipgloss.Style{
			StyleSession:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
			StyleCorrect:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
			StyleIncorrect: renderer.NewStyle().Foreground(lipgloss.Color("3")),
			StyleError:     renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		},
	}
}

// ShouldUseStyling reports whether writer is a colour-capable terminal.
func ShouldUseStyling(writer io.Writer) bool {
	return shouldUseStyling(writer)
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return isTerminal(int(fder.Fd()))
	}
	return false
}

func (p palette) renderPrefix(text string) string {
	if !p.enabled {
		return text
	}
	return p.prefix.Render(text)
}

func (p palette) apply(style Style, text string) string {
	if !p.enabled {
		return text
	}
	if s, ok := p.styles[style]; ok {
		return s.Render(text)
	}
	return text
}
