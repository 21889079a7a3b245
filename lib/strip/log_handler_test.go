// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package strip

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/scrollstrip/lib/testutil"
)

func TestTUILogHandlerLevelFilter(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)
	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be below a warn handler's level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should pass a warn handler")
	}
}

func TestTUILogHandlerDropsWithoutProgram(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)
	record := slog.NewRecord(time.Now(), slog.LevelWarn, "dropped", 0)
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Errorf("Handle without a program returned %v", err)
	}
}

func TestTUILogHandlerSummary(t *testing.T) {
	root := NewTUILogHandler(slog.LevelWarn)
	derived := root.WithAttrs([]slog.Attr{slog.String("path", "strip.yaml")}).WithGroup("theme").(*TUILogHandler)

	if derived.program != root.program {
		t.Error("derived handler does not share the program pointer")
	}

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "unknown theme key", 0)
	record.AddAttrs(slog.String("key", "glow"))
	if got, want := derived.summarize(record), "unknown theme key (path=strip.yaml, theme.key=glow)"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}

	bare := slog.NewRecord(time.Now(), slog.LevelWarn, "plain", 0)
	if got := root.summarize(bare); got != "plain" {
		t.Errorf("summary without attrs = %q", got)
	}
}

// TestProgramWithDebugLogging runs the model in a real bubbletea
// program whose logger routes debug records back into the same
// program. The model logs from inside Update, so the handler must not
// wait on the event loop it is called from.
func TestProgramWithDebugLogging(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelDebug)
	options := testOptions(t)
	options.Logger = slog.New(handler)

	program := tea.NewProgram(New(options),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	handler.SetProgram(program)

	type result struct {
		model tea.Model
		err   error
	}
	done := make(chan result, 1)
	go func() {
		model, err := program.Run()
		done <- result{model, err}
	}()

	go func() {
		program.Send(tea.WindowSizeMsg{Width: 100, Height: 40})
		program.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
		program.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	}()

	final := testutil.RequireReceive(t, done, 5*time.Second, "waiting for program exit")
	if final.err != nil {
		t.Fatalf("program.Run failed: %v", final.err)
	}
	model, ok := final.model.(Model)
	if !ok {
		t.Fatalf("final model is %T, want Model", final.model)
	}
	if model.Mounted() {
		t.Error("model still mounted after quit")
	}
}
