// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package strip

import (
	"log/slog"

	"github.com/bureau-foundation/scrollstrip/lib/config"
	"github.com/bureau-foundation/scrollstrip/lib/content"
	"github.com/bureau-foundation/scrollstrip/lib/indicator"
	"github.com/bureau-foundation/scrollstrip/lib/tui"
)

// Options configures a Model.
type Options struct {
	// Cards is the deck shown in the scrollable row.
	Cards []content.Card

	// Gap is the blank columns between adjacent cards.
	Gap int

	// FrameWidth fixes the frame width. Zero (or anything wider than
	// the terminal) fills the terminal.
	FrameWidth int

	// FrameHeight fixes the frame height; the scrollbar is anchored to
	// its bottom. Zero fits the content.
	FrameHeight int

	// Inset is the blank margin at both ends of the track that the
	// thumb never enters.
	Inset int

	// ThumbWidth is the fixed thumb width in columns.
	ThumbWidth int

	// WheelStep is the scroll distance of one wheel notch in columns.
	WheelStep int

	// Indicator defines the segmented progress row.
	Indicator indicator.Indicator

	Theme  tui.Theme
	Keys   KeyMap
	Logger *slog.Logger
}

// OptionsFromConfig builds Options from a loaded configuration. The
// returned slice lists theme override keys that matched no theme
// color; callers log them.
func OptionsFromConfig(cfg *config.Config) (Options, []string) {
	theme, unknown := tui.DefaultTheme.WithOverrides(cfg.Theme)

	cards := make([]content.Card, len(cfg.Content.Cards))
	for index, card := range cfg.Content.Cards {
		cards[index] = content.Card{
			Title:  card.Title,
			Body:   card.Body,
			Accent: card.Accent,
			Width:  card.Width,
			Height: card.Height,
		}
	}

	return Options{
		Cards:       cards,
		Gap:         cfg.Content.Gap,
		FrameWidth:  cfg.Frame.Width,
		FrameHeight: cfg.Frame.Height,
		Inset:       cfg.Scrollbar.Inset,
		ThumbWidth:  cfg.Scrollbar.ThumbWidth,
		WheelStep:   cfg.Scrollbar.WheelStep,
		Indicator: indicator.Indicator{
			Labels:         cfg.Indicator.Labels,
			DotsPerSegment: cfg.Indicator.DotsPerSegment,
		},
		Theme: theme,
		Keys:  DefaultKeyMap,
	}, unknown
}
