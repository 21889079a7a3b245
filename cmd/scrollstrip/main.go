// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// scrollstrip is a terminal widget demo: a horizontally scrollable row
// of cards with a custom scrollbar and a segmented progress indicator.
//
// Two modes of operation:
//
// Interactive (default when stdout is a terminal): runs the widget in
// the alternate screen with mouse reporting. The wheel over the cards
// scrolls, the thumb can be dragged, and a click on the track jumps.
//
// Snapshot (--snapshot, or whenever stdout is not a terminal): renders
// one frame at the given scroll offset to stdout and exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/scrollstrip/cmd/scrollstrip/cli"
	"github.com/bureau-foundation/scrollstrip/lib/config"
	"github.com/bureau-foundation/scrollstrip/lib/strip"
	"github.com/bureau-foundation/scrollstrip/lib/version"
)

// defaultSnapshotWidth is the terminal width assumed for snapshots
// when neither --width nor a terminal on stdout says otherwise.
const defaultSnapshotWidth = 100

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		logOutput  string
		logLevel   string
		snapshot   bool
		width      int
		scroll     int
	)

	flagSet := pflag.NewFlagSet("scrollstrip", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML (.yaml, .yml) or JSONC (.json, .jsonc) config file")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to the status line)")
	flagSet.StringVar(&logLevel, "log-level", "warn", "minimum level for stderr and --log-output records: debug, info, warn, error")
	flagSet.BoolVar(&snapshot, "snapshot", false, "render one frame to stdout and exit")
	flagSet.IntVar(&width, "width", 0, "terminal width for --snapshot (default: the terminal, or 100)")
	flagSet.IntVar(&scroll, "scroll", 0, "scroll offset in columns for --snapshot")
	flagSet.BoolP("help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("scrollstrip")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return cli.Validation("%w", err).WithHint("Run 'scrollstrip --help' for usage.")
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}
	if width < 0 || scroll < 0 {
		return cli.Validation("--width and --scroll must not be negative")
	}

	level, err := cli.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := cli.NewCommandLogger(level)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	options, unknownThemeKeys := strip.OptionsFromConfig(cfg)

	stdoutIsTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	if snapshot || !stdoutIsTerminal {
		warnUnknownThemeKeys(logger, unknownThemeKeys)
		if width == 0 {
			width = snapshotWidth(stdoutIsTerminal)
		}
		options.Logger = logger
		return renderSnapshot(os.Stdout, logger, options, width, scroll)
	}

	return runInteractive(options, level, logOutput, unknownThemeKeys)
}

// loadConfig returns the built-in configuration, or the file at path
// layered over it. The result is validated.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("config file %s does not exist", path).
				WithHint("Omit --config to use the built-in deck.")
		}
		if err != nil {
			return nil, cli.Validation("cannot load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// snapshotExitClamped is the exit code of a snapshot whose requested
// scroll offset was outside the scrollable range. The frame is still
// printed, at the nearest valid offset.
const snapshotExitClamped = 2

// renderSnapshot writes one frame to w. A --scroll beyond the content's
// maximum offset is clamped, logged, and reported as exit code 2 so
// scripts can tell the frame does not show what they asked for.
func renderSnapshot(w io.Writer, logger *slog.Logger, options strip.Options, width, scroll int) error {
	frame, shown := strip.Snapshot(options, width, scroll)
	fmt.Fprintln(w, frame)
	if shown != scroll {
		logger.Warn("scroll offset clamped", "requested", scroll, "shown", shown)
		return &cli.ExitError{Code: snapshotExitClamped}
	}
	return nil
}

func snapshotWidth(stdoutIsTerminal bool) int {
	if stdoutIsTerminal {
		if columns, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && columns > 0 {
			return columns
		}
	}
	return defaultSnapshotWidth
}

func warnUnknownThemeKeys(logger *slog.Logger, keys []string) {
	for _, key := range keys {
		logger.Warn("unknown theme key ignored", "key", key)
	}
}

// statusLogLevel is the threshold for records shown on the status
// line. It is fixed: --log-level only tunes the --log-output file.
const statusLogLevel = slog.LevelWarn

// runInteractive runs the widget in the alternate screen. Log records
// are routed through a TUILogHandler to the status line instead of
// stderr (which would corrupt the display); --log-output additionally
// captures records at --log-level and above to a JSON file.
func runInteractive(options strip.Options, level slog.Level, logOutput string, unknownThemeKeys []string) error {
	logger, tuiHandler, closeLog, err := newInteractiveLogger(level, logOutput)
	if err != nil {
		return err
	}
	defer closeLog()
	options.Logger = logger

	program := tea.NewProgram(strip.New(options), tea.WithAltScreen(), tea.WithMouseCellMotion())
	tuiHandler.SetProgram(program)

	// program.Send blocks until the event loop is running, so startup
	// warnings are delivered from their own goroutine.
	if len(unknownThemeKeys) > 0 {
		go warnUnknownThemeKeys(logger, unknownThemeKeys)
	}

	if _, err := program.Run(); err != nil {
		return cli.Internal("terminal UI failed: %w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `scrollstrip — horizontally scrollable card strip with a custom scrollbar.

Scroll the cards with the mouse wheel, drag the scrollbar thumb, or
click anywhere on the scrollbar to jump. The dots and labels above the
track light up with the scroll position. Press q to quit.

When stdout is not a terminal (or with --snapshot), one frame is
rendered to stdout instead. If --scroll is past the end of the deck the
frame is shown at the last offset and the exit status is 2.

Usage:
  scrollstrip [flags]

Examples:
  # Run the built-in deck
  scrollstrip

  # Use a custom deck and theme
  scrollstrip --config strip.yaml

  # Render the frame scrolled 120 columns in
  scrollstrip --snapshot --width 100 --scroll 120

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// newInteractiveLogger builds the logger for interactive mode: a
// TUILogHandler at statusLogLevel, fanned out to a JSON file at level
// when logOutput is set. The returned closer is always non-nil.
func newInteractiveLogger(level slog.Level, logOutput string) (*slog.Logger, *strip.TUILogHandler, func(), error) {
	tuiHandler := strip.NewTUILogHandler(statusLogLevel)
	if logOutput == "" {
		return slog.New(tuiHandler), tuiHandler, func() {}, nil
	}
	fileHandler, fileCloser, err := openFileLogHandler(logOutput, level)
	if err != nil {
		return nil, nil, nil, cli.Internal("cannot open log file %s: %w", logOutput, err)
	}
	return slog.New(fanoutHandler{tuiHandler, fileHandler}), tuiHandler, fileCloser, nil
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string, level slog.Level) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
