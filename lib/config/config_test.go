// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"testing"

	"github.com/bureau-foundation/scrollstrip/lib/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if len(cfg.Content.Cards) != 12 {
		t.Errorf("expected 12 cards, got %d", len(cfg.Content.Cards))
	}
	if cfg.Content.Cards[0].Width != 40 || cfg.Content.Cards[0].Height != 10 {
		t.Errorf("expected 40x10 cards, got %dx%d", cfg.Content.Cards[0].Width, cfg.Content.Cards[0].Height)
	}
	wantAccents := []string{"red", "red", "red", "blue", "blue", "blue", "yellow", "yellow", "yellow", "green", "green", "green"}
	for index, card := range cfg.Content.Cards {
		if card.Accent != wantAccents[index] {
			t.Errorf("card %d accent = %q, want %q", index, card.Accent, wantAccents[index])
		}
	}
	if len(cfg.Indicator.Labels) != 4 || cfg.Indicator.DotsPerSegment != 6 {
		t.Errorf("expected 4 labels x 6 dots, got %d x %d", len(cfg.Indicator.Labels), cfg.Indicator.DotsPerSegment)
	}
	if cfg.Scrollbar.Inset != 2 {
		t.Errorf("expected inset=2, got %d", cfg.Scrollbar.Inset)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := testutil.WriteFile(t, "strip.yaml", `
frame:
  width: 80
content:
  gap: 3
  card_width: 20
  cards:
    - title: First
      body: hello
    - title: Second
      accent: green
      width: 30
scrollbar:
  wheel_step: 4
theme:
  active: "#E59E2E"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	if cfg.Frame.Width != 80 {
		t.Errorf("expected frame.width=80, got %d", cfg.Frame.Width)
	}
	if len(cfg.Content.Cards) != 2 {
		t.Fatalf("expected the file deck to replace the default, got %d cards", len(cfg.Content.Cards))
	}
	first, second := cfg.Content.Cards[0], cfg.Content.Cards[1]
	if first.Width != 20 || first.Height != 10 || first.Accent != "red" {
		t.Errorf("first card = %+v, want 20x10 red", first)
	}
	if second.Width != 30 || second.Accent != "green" {
		t.Errorf("second card = %+v, want width 30 green", second)
	}
	if cfg.Scrollbar.WheelStep != 4 || cfg.Scrollbar.ThumbWidth != 8 {
		t.Errorf("scrollbar = %+v, want wheel_step=4 and default thumb", cfg.Scrollbar)
	}
	if cfg.Theme["active"] != "#E59E2E" {
		t.Errorf("theme override lost: %v", cfg.Theme)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	path := testutil.WriteFile(t, "strip.jsonc", `{
  // Narrow frame for a small terminal.
  "frame": {"width": 60},
  "indicator": {
    "labels": ["A", "B", "C"], /* three segments */
    "dots_per_segment": 4,
  },
}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Frame.Width != 60 {
		t.Errorf("expected frame.width=60, got %d", cfg.Frame.Width)
	}
	if len(cfg.Indicator.Labels) != 3 || cfg.Indicator.DotsPerSegment != 4 {
		t.Errorf("indicator = %+v", cfg.Indicator)
	}
	if len(cfg.Content.Cards) != 12 {
		t.Errorf("expected default deck to survive, got %d cards", len(cfg.Content.Cards))
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(testutil.MissingPath(t, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := testutil.WriteFile(t, "strip.toml", "frame = 1")
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported config format") {
		t.Errorf("expected unsupported format error, got %v", err)
	}

	path = testutil.WriteFile(t, "broken.yaml", "frame: [")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Content.Gap = -1
	cfg.Scrollbar.ThumbWidth = 0
	cfg.Indicator.Labels = nil
	cfg.Content.Cards[3].Width = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"content.gap", "scrollbar.thumb_width", "indicator.labels", "content.cards[3]"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
