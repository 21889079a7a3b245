// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package content renders the blocks that make up the scroll strip's
// row: fixed-size cards with a title and a markdown body, laid side by
// side with a fixed gap.
//
// A card always renders to exactly Width x Height cells regardless of
// its body. Long bodies are clipped with an ellipsis row; short ones
// are padded with the card background. Because every card has a fixed
// footprint, the layout measurer can compute the content extent from
// card sizes alone without rendering anything.
package content

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/scrollstrip/lib/geometry"
	"github.com/bureau-foundation/scrollstrip/lib/tui"
)

// Card is one block of the strip.
type Card struct {
	Title  string
	Body   string
	Accent string
	Width  int
	Height int
}

// Item returns the card's footprint for layout measuring, with gap as
// its right margin.
func (card Card) Item(gap int) geometry.Item {
	return geometry.Item{Width: card.Width, Height: card.Height, MarginRight: gap}
}

// Items converts a deck of cards to layout items.
func Items(cards []Card, gap int) []geometry.Item {
	items := make([]geometry.Item, len(cards))
	for index, card := range cards {
		items[index] = card.Item(gap)
	}
	return items
}

// Render draws a card as exactly Height lines of exactly Width
// columns. The title occupies the first row, a blank row follows, and
// the markdown body fills the rest. Cards narrower than 3 columns or
// shorter than 1 row render as plain background.
func Render(theme tui.Theme, card Card) []string {
	if card.Width <= 0 || card.Height <= 0 {
		return nil
	}

	background := lipgloss.NewStyle().Background(theme.AccentColor(card.Accent))
	innerWidth := card.Width - 2
	if innerWidth < 1 {
		lines := make([]string, card.Height)
		for index := range lines {
			lines[index] = background.Render(strings.Repeat(" ", card.Width))
		}
		return lines
	}

	var body []string
	if card.Title != "" {
		title := lipgloss.NewStyle().
			Foreground(theme.CardForeground).
			Background(theme.AccentColor(card.Accent)).
			Bold(true).
			Render(ansi.Truncate(card.Title, innerWidth, "…"))
		body = append(body, title, "")
	}
	body = append(body, RenderMarkdown(card.Body, MarkdownStyle{
		Foreground: theme.CardForeground,
		Muted:      theme.FaintText,
	}, innerWidth)...)

	if len(body) > card.Height {
		body = body[:card.Height]
		body[card.Height-1] = lipgloss.NewStyle().Foreground(theme.CardForeground).Render("…")
	}

	lines := make([]string, card.Height)
	for index := range lines {
		line := ""
		if index < len(body) {
			line = body[index]
		}
		lines[index] = background.Render(" ") +
			padBackground(line, innerWidth, background) +
			background.Render(" ")
	}
	return lines
}

// padBackground pads a styled line to width, drawing the padding in
// the card background. Lines wider than width are truncated.
func padBackground(line string, width int, background lipgloss.Style) string {
	lineWidth := ansi.StringWidth(line)
	if lineWidth > width {
		return ansi.Truncate(line, width, "")
	}
	return line + background.Render(strings.Repeat(" ", width-lineWidth))
}

// RenderRow renders a deck side by side with gap columns between
// cards. Every returned line is exactly the content extent wide, and
// there are as many lines as the tallest card; shorter cards are
// padded with blank rows.
func RenderRow(theme tui.Theme, cards []Card, gap int) []string {
	height := geometry.ContentHeight(Items(cards, gap))
	if height == 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}

	rows := make([]strings.Builder, height)
	for cardIndex, card := range cards {
		lines := Render(theme, card)
		for row := range rows {
			if row < len(lines) {
				rows[row].WriteString(lines[row])
			} else {
				rows[row].WriteString(strings.Repeat(" ", max(card.Width, 0)))
			}
			if cardIndex < len(cards)-1 {
				rows[row].WriteString(strings.Repeat(" ", gap))
			}
		}
	}

	result := make([]string, height)
	for row := range rows {
		result[row] = rows[row].String()
	}
	return result
}
