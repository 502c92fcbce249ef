package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"quizplay/internal/bank"
	"quizplay/internal/source"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizplay/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, 1, stderr) {
			return ExitUsage
		}

		path := flags.Arg(0)
		if path == "" {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
				return ExitError
			}
			if cfg.Bank == "" {
				fmt.Fprintln(stderr, "No bank given and none configured")
				printCommandUsage(cmd, stderr)
				return ExitUsage
			}
			path = cfg.Bank
		}

		parsed, err := readBank(context.Background(), path)
		if err != nil {
			fmt.Fprintln(stderr, "Validation failed:")
			printBankError(stderr, err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Bank OK (%d themes, %d questions)\n", parsed.Len(), parsed.QuestionCount())
		return ExitOK
	}
}

// readBank reads and parses a bank file, choosing the format by extension.
func readBank(ctx context.Context, path string) (*bank.Bank, error) {
	data, err := source.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return bank.Parse(data, bank.FormatForPath(path))
}

// printBankError lists validation issues one per line.
func printBankError(w io.Writer, err error) {
	var validationErr *bank.ValidationError
	if errors.As(err, &validationErr) {
		for _, issue := range validationErr.Issues {
			fmt.Fprintf(w, "  %s: %s\n", issue.Field, issue.Message)
		}
		return
	}
	fmt.Fprintf(w, "  %v\n", err)
}
