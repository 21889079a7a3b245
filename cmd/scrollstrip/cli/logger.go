// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// NewCommandLogger creates the stderr logger used outside the terminal
// UI (startup, snapshot mode). When stderr is a terminal it uses
// slog.TextHandler for human-readable output; when stderr is piped or
// redirected it uses slog.JSONHandler for machine-parseable output.
func NewCommandLogger(level slog.Level) *slog.Logger {
	return slog.New(NewCommandHandler(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level))
}

// NewCommandHandler picks the text or JSON handler for w.
func NewCommandHandler(w io.Writer, interactive bool, level slog.Level) slog.Handler {
	options := &slog.HandlerOptions{Level: level}
	if interactive {
		return slog.NewTextHandler(w, options)
	}
	return slog.NewJSONHandler(w, options)
}

// ParseLevel maps a --log-level value to a slog level.
func ParseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, Validation("invalid log level %q", value).
			WithHint("Use one of debug, info, warn, error.")
	}
	return level, nil
}
