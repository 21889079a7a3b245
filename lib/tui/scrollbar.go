// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Thumb glyphs: a left and a right chevron joined by a heavy rule,
// forming a two-arrow handle.
const (
	thumbLeftGlyph  = "◀"
	thumbRightGlyph = "▶"
	thumbFillGlyph  = "━"
	trackGlyph      = "─"
)

// RenderThumb produces the thumb glyphs for the given width. Widths
// below 2 collapse to a single fill glyph.
func RenderThumb(theme Theme, width int, dragging bool) string {
	if width <= 0 {
		return ""
	}
	background := theme.ThumbBackground
	if dragging {
		background = theme.ThumbDragBackground
	}
	style := lipgloss.NewStyle().
		Foreground(theme.ThumbForeground).
		Background(background).
		Bold(true)

	if width < 2 {
		return style.Render(thumbFillGlyph)
	}
	return style.Render(thumbLeftGlyph + strings.Repeat(thumbFillGlyph, width-2) + thumbRightGlyph)
}

// RenderTrack produces the single-row scrollbar track of clientWidth
// columns: blank insets at both ends, a rule between them, and the
// thumb spliced in at thumbLeft (relative to the track's left edge).
//
// The caller is responsible for keeping thumbLeft inside the valid
// range; anything that would overflow the row is clipped.
func RenderTrack(theme Theme, clientWidth, inset, thumbLeft, thumbWidth int, dragging bool) string {
	if clientWidth <= 0 {
		return ""
	}
	if inset < 0 {
		inset = 0
	}
	if 2*inset > clientWidth {
		inset = clientWidth / 2
	}

	trackStyle := lipgloss.NewStyle().Foreground(theme.TrackColor)
	usable := clientWidth - 2*inset
	row := strings.Repeat(" ", inset) +
		trackStyle.Render(strings.Repeat(trackGlyph, usable)) +
		strings.Repeat(" ", clientWidth-inset-usable)

	if thumbWidth > clientWidth-thumbLeft {
		thumbWidth = clientWidth - thumbLeft
	}
	if thumbLeft < 0 || thumbWidth <= 0 {
		return row
	}
	return SpliceOverlay(row, []string{RenderThumb(theme, thumbWidth, dragging)}, thumbLeft, 0)
}

// RenderFrame wraps rows of exactly innerWidth columns in the rounded
// scrollbar frame. The returned block is innerWidth+2 columns wide.
func RenderFrame(theme Theme, rows []string, innerWidth int) string {
	if innerWidth < 0 {
		innerWidth = 0
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Width(innerWidth).
		MaxWidth(innerWidth + 2).
		Render(strings.Join(rows, "\n"))
}
