package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"quizplay/internal/config"
)

// frontEnd is the front end chosen for a play session.
type frontEnd struct {
	live   bool
	notice string
}

// stdoutIsTTY reports whether play output goes to a terminal.
var stdoutIsTTY = writerIsTTY

// chooseFrontEnd maps the ui setting onto the live or plain front end. The
// mode is checked even when verbose output forces plain prompts, since
// verbose lines would corrupt the alt screen.
func chooseFrontEnd(requested string, verbose bool, stdout io.Writer) (frontEnd, error) {
	mode := strings.ToLower(strings.TrimSpace(requested))
	if mode == "" {
		mode = config.UIAuto
	}
	switch mode {
	case config.UIAuto, config.UILive:
	case config.UIPlain:
		return frontEnd{}, nil
	default:
		return frontEnd{}, fmt.Errorf("invalid ui mode %q (expected %s|%s|%s)", requested, config.UIAuto, config.UILive, config.UIPlain)
	}

	switch {
	case verbose && mode == config.UILive:
		return frontEnd{notice: "Live UI disabled by --verbose; using plain prompts."}, nil
	case verbose:
		return frontEnd{}, nil
	case stdoutIsTTY(stdout):
		return frontEnd{live: true}, nil
	case mode == config.UILive:
		return frontEnd{notice: "Live UI requested but stdout is not a TTY; using plain prompts."}, nil
	default:
		return frontEnd{}, nil
	}
}

// writerIsTTY covers *os.File and any other writer exposing a descriptor.
func writerIsTTY(w io.Writer) bool {
	fder, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(fder.Fd()))
}
