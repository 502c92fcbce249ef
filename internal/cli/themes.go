package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// runThemes builds the handler for the themes command.
func runThemes(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() != 1 {
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		parsed, err := readBank(context.Background(), flags.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, "Failed to load bank:")
			printBankError(stderr, err)
			return ExitError
		}
		for i, name := range parsed.Themes() {
			questions, _ := parsed.Questions(name)
			fmt.Fprintf(stdout, "%d. %s (%d questions)\n", i+1, name, len(questions))
		}
		return ExitOK
	}
}
