package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"quizplay/internal/bank"
	"quizplay/internal/config"
	"quizplay/internal/quiz"
	"quizplay/internal/source"
	"quizplay/internal/ui/live"
	"quizplay/internal/ui/plain"
	"quizplay/internal/verbose"
)

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Question bank file (JSON, or YAML by extension)")
		theme := flags.String("theme", "", "Theme to start immediately")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizplay/config.yml)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain")
		seed := flags.Int64("seed", 0, "Shuffle seed (0 = random)")
		verboseFlag := flags.Bool("verbose", false, "Stream session events to stdout")
		logPath := flags.String("log", "", "Write verbose logs to a file")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, 0, stderr) {
			return ExitUsage
		}

		set := setFlags(flags)
		flagBank, err := absFlagPath(set["bank"], *bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve bank path: %v\n", err)
			return ExitError
		}
		flagLog, err := absFlagPath(set["log"], *logPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve log path: %v\n", err)
			return ExitError
		}
		cfg, err := loadConfig(*configPath, func(cfg *config.Config) {
			if set["bank"] {
				cfg.Bank = flagBank
			}
			if set["log"] {
				cfg.Log = flagLog
			}
			if set["theme"] {
				cfg.Theme = strings.TrimSpace(*theme)
			}
			if set["seed"] {
				cfg.Seed = *seed
			}
			if set["no-color"] {
				cfg.NoColor = *noColor
			}
		})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		// A bad --ui value is reported by chooseFrontEnd as a usage error.
		if set["ui"] {
			cfg.UI = *uiMode
		}

		front, err := chooseFrontEnd(cfg.UI, *verboseFlag, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if front.notice != "" {
			fmt.Fprintln(stderr, front.notice)
		}
		if !front.live && cfg.Bank == "" {
			fmt.Fprintln(stderr, "A bank is required: pass --bank or set bank in .quizplay/config.yml")
			return ExitUsage
		}

		var logFile *os.File
		if strings.TrimSpace(cfg.Log) != "" {
			logFile, err = verbose.OpenLogFile(cfg.Log)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
				return ExitError
			}
			defer func() { _ = logFile.Close() }()
		}
		logOpts := verbose.Options{NoColor: cfg.NoColor}
		if *verboseFlag && !front.live {
			logOpts.Writer = stdout
		}
		if logFile != nil {
			logOpts.LogWriter = logFile
		}
		logger := verbose.New(logOpts)

		engine := quiz.NewEngine(quiz.Options{Rand: quiz.NewRand(cfg.Seed), Observer: logger})

		if front.live {
			// The terminal is in raw mode, so only externally sent signals
			// arrive here.
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			err = live.Run(ctx, engine, stdin, stdout, live.Options{
				NoColor:  cfg.NoColor,
				BankPath: cfg.Bank,
				Theme:    cfg.Theme,
				ReadFile: source.ReadFile,
			})
		} else {
			err = playPlain(context.Background(), engine, cfg, stdout)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// absFlagPath resolves a path flag against the working directory. Unset
// flags resolve to "".
func absFlagPath(set bool, value string) (string, error) {
	value = strings.TrimSpace(value)
	if !set || value == "" {
		return value, nil
	}
	return filepath.Abs(value)
}

// playPlain loads the bank synchronously and runs line prompts on stdin.
func playPlain(ctx context.Context, engine *quiz.Engine, cfg config.Config, stdout io.Writer) error {
	data, err := source.ReadFile(ctx, cfg.Bank)
	if err != nil {
		return err
	}
	if err := engine.LoadBank(data, bank.FormatForPath(cfg.Bank)); err != nil {
		return err
	}
	b := engine.Bank()
	fmt.Fprintf(stdout, "Loaded %d themes (%d questions). Type %s during a question to return to the themes.\n",
		b.Len(), b.QuestionCount(), plain.QuitCommand)
	return plain.New(engine, stdin, stdout, plain.Options{Theme: cfg.Theme}).Run(ctx)
}
