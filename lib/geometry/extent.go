// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

// Item is one block in the scrollable row. Width is the block's own
// rendered width; MarginRight is the gap that separates it from the
// next block.
type Item struct {
	Width       int
	Height      int
	MarginRight int
}

// ContentExtent returns the total width of a row of items: the sum of
// every item's width plus the right margin of every item except the
// last. The trailing margin is dropped so the last block sits flush
// against the end of the scroll range.
func ContentExtent(items []Item) int {
	extent := 0
	for index, item := range items {
		extent += item.Width
		if index < len(items)-1 {
			extent += item.MarginRight
		}
	}
	return extent
}

// ContentHeight returns the height of the tallest item.
func ContentHeight(items []Item) int {
	height := 0
	for _, item := range items {
		if item.Height > height {
			height = item.Height
		}
	}
	return height
}

// Layout is the result of one measuring pass. It is recomputed on
// mount and on every resize and never cached across passes.
type Layout struct {
	// ContentWidth is the full extent of the item row.
	ContentWidth int

	// ContentHeight is the height of the tallest item.
	ContentHeight int

	// ViewportWidth is the number of columns the strip shows at once.
	ViewportWidth int
}

// Measure computes the layout of items shown through a viewport of
// the given width. Negative viewport widths are treated as zero.
func Measure(items []Item, viewportWidth int) Layout {
	if viewportWidth < 0 {
		viewportWidth = 0
	}
	return Layout{
		ContentWidth:  ContentExtent(items),
		ContentHeight: ContentHeight(items),
		ViewportWidth: viewportWidth,
	}
}

// MaxScroll returns the largest valid scroll offset. Zero means the
// content fits inside the viewport and nothing can scroll.
func (layout Layout) MaxScroll() int {
	maxScroll := layout.ContentWidth - layout.ViewportWidth
	if maxScroll < 0 {
		return 0
	}
	return maxScroll
}

// Overflows reports whether the content is wider than the viewport.
func (layout Layout) Overflows() bool {
	return layout.MaxScroll() > 0
}

// ClampScroll limits offset to [0, MaxScroll].
func (layout Layout) ClampScroll(offset int) int {
	if offset < 0 {
		return 0
	}
	if maxScroll := layout.MaxScroll(); offset > maxScroll {
		return maxScroll
	}
	return offset
}
