package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// parseFlags parses args and reports the exit code to return when parsing
// does not succeed.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// rejectExtraArgs fails when more than max positional arguments remain.
func rejectExtraArgs(cmd *Command, flags *flag.FlagSet, max int, stderr io.Writer) bool {
	if flags.NArg() <= max {
		return false
	}
	fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[max:], " "))
	printCommandUsage(cmd, stderr)
	return true
}

// setFlags returns the names of flags given on the command line.
func setFlags(flags *flag.FlagSet) map[string]bool {
	seen := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		seen[f.Name] = true
	})
	return seen
}
