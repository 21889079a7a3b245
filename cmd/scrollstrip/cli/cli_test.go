// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestToolError_ErrorWithHint(t *testing.T) {
	err := Validation("missing config %s", "strip.yaml").
		WithHint("Pass --config with a YAML or JSONC file.")

	want := "missing config strip.yaml\n\nPass --config with a YAML or JSONC file."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_EmptyHintNotAppended(t *testing.T) {
	err := Internal("unexpected failure")
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_SurvivesErrorsAs(t *testing.T) {
	inner := NotFound("no such file").WithHint("check the path")
	wrapped := fmt.Errorf("startup failed: %w", inner)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Category != CategoryNotFound || toolErr.Hint != "check the path" {
		t.Errorf("unwrapped error = %+v", toolErr)
	}
}

func TestToolError_WrapsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Internal("cannot open log file: %w", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 3}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 3 {
		t.Errorf("ExitError does not report its code")
	}
	if err.Error() != "exit code 3" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestParseLevel(t *testing.T) {
	for input, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(input)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", input, got, err, want)
		}
	}

	_, err := ParseLevel("loud")
	var toolErr *ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != CategoryValidation {
		t.Errorf("ParseLevel(loud) error = %v, want validation error", err)
	}
}

func TestNewCommandHandlerFormats(t *testing.T) {
	var buffer bytes.Buffer
	slog.New(NewCommandHandler(&buffer, false, slog.LevelInfo)).Info("loaded", "cards", 12)

	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("non-interactive output is not JSON: %q", buffer.String())
	}
	if record["msg"] != "loaded" || record["cards"] != float64(12) {
		t.Errorf("record = %v", record)
	}

	buffer.Reset()
	slog.New(NewCommandHandler(&buffer, true, slog.LevelWarn)).Info("hidden")
	if buffer.Len() != 0 {
		t.Errorf("info record passed a warn handler: %q", buffer.String())
	}
}
