// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the scroll strip. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color
	HelpText   lipgloss.Color

	// Scrollbar frame and track.
	BorderColor lipgloss.Color
	TrackColor  lipgloss.Color

	// Thumb. ThumbDragBackground replaces ThumbBackground while the
	// thumb is being dragged.
	ThumbForeground     lipgloss.Color
	ThumbBackground     lipgloss.Color
	ThumbDragBackground lipgloss.Color

	// Progress indicator: lit dots and labels use ActiveColor, unlit
	// dots InactiveColor and unlit labels NormalText.
	ActiveColor   lipgloss.Color
	InactiveColor lipgloss.Color

	// Cards: background accents by name, and the text drawn on them.
	CardAccents    map[string]lipgloss.Color
	CardForeground lipgloss.Color

	// Status line log records.
	LogWarning lipgloss.Color
	LogError   lipgloss.Color
}

// AccentColor returns the card background for an accent name.
// Unknown names fall back to the "red" accent, the first card group.
func (theme Theme) AccentColor(name string) lipgloss.Color {
	if color, ok := theme.CardAccents[strings.ToLower(name)]; ok {
		return color
	}
	if color, ok := theme.CardAccents["red"]; ok {
		return color
	}
	return theme.NormalText
}

// WithOverrides returns a copy of the theme with every non-empty
// override applied. Keys are the snake_case field names used in the
// configuration file; unknown keys are returned so the caller can warn.
func (theme Theme) WithOverrides(overrides map[string]string) (Theme, []string) {
	result := theme
	result.CardAccents = make(map[string]lipgloss.Color, len(theme.CardAccents))
	for name, color := range theme.CardAccents {
		result.CardAccents[name] = color
	}

	var unknown []string
	for key, value := range overrides {
		if value == "" {
			continue
		}
		color := lipgloss.Color(value)
		switch key {
		case "normal_text":
			result.NormalText = color
		case "faint_text":
			result.FaintText = color
		case "help_text":
			result.HelpText = color
		case "border":
			result.BorderColor = color
		case "track":
			result.TrackColor = color
		case "thumb_foreground":
			result.ThumbForeground = color
		case "thumb_background":
			result.ThumbBackground = color
		case "thumb_drag_background":
			result.ThumbDragBackground = color
		case "active":
			result.ActiveColor = color
		case "inactive":
			result.InactiveColor = color
		case "card_foreground":
			result.CardForeground = color
		default:
			if accent, ok := strings.CutPrefix(key, "accent_"); ok && accent != "" {
				result.CardAccents[accent] = color
				continue
			}
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return result, unknown
}

// DefaultTheme is the built-in color scheme. The indicator accent
// is the 256-color amber nearest #E59E2E and the frame border the sand
// nearest #E1C3A0; card accents are the pale red, blue, yellow
// and green of the four content groups.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),
	HelpText:   lipgloss.Color("241"),

	BorderColor: lipgloss.Color("180"), // sand
	TrackColor:  lipgloss.Color("238"),

	ThumbForeground:     lipgloss.Color("255"),
	ThumbBackground:     lipgloss.Color("236"),
	ThumbDragBackground: lipgloss.Color("172"),

	ActiveColor:   lipgloss.Color("172"), // amber
	InactiveColor: lipgloss.Color("240"),

	CardAccents: map[string]lipgloss.Color{
		"red":    lipgloss.Color("224"),
		"blue":   lipgloss.Color("153"),
		"yellow": lipgloss.Color("229"),
		"green":  lipgloss.Color("194"),
	},
	CardForeground: lipgloss.Color("235"),

	LogWarning: lipgloss.Color("214"),
	LogError:   lipgloss.Color("196"),
}
