// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package indicator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/scrollstrip/lib/tui"
)

const dotGlyph = "●"

// element is one piece of the progress row before spacing: a label
// or a single dot, with its lit state already resolved.
type element struct {
	text   string
	active bool
	isDot  bool
}

// elements lays the indicator out in structural order: label, its
// dots, next label, its dots, and so on.
func (indicator Indicator) elements(state State) []element {
	result := make([]element, 0, indicator.Segments()+indicator.Dots())
	dot := 0
	for labelIndex, label := range indicator.Labels {
		result = append(result, element{text: label, active: state.LabelActive(labelIndex)})
		for range indicator.DotsPerSegment {
			result = append(result, element{text: dotGlyph, active: state.DotActive(dot), isDot: true})
			dot++
		}
	}
	return result
}

// Render draws the progress row across exactly width columns with the
// elements spread edge to edge (first element flush left, last flush
// right, remaining space split evenly between neighbours). When the
// row is too narrow for that, elements are separated by single spaces
// and the row is truncated.
func (indicator Indicator) Render(theme tui.Theme, state State, width int) string {
	if width <= 0 {
		return ""
	}
	elements := indicator.elements(state)
	if len(elements) == 0 {
		return strings.Repeat(" ", width)
	}

	contentWidth := 0
	for _, element := range elements {
		contentWidth += ansi.StringWidth(element.text)
	}

	gaps := len(elements) - 1
	spacing := make([]int, gaps)
	free := width - contentWidth
	for index := range spacing {
		spacing[index] = 1
	}
	if gaps > 0 && free > gaps {
		base, extra := free/gaps, free%gaps
		for index := range spacing {
			spacing[index] = base
			if index < extra {
				spacing[index]++
			}
		}
	}

	activeStyle := lipgloss.NewStyle().Foreground(theme.ActiveColor)
	inactiveDot := lipgloss.NewStyle().Foreground(theme.InactiveColor)
	inactiveLabel := lipgloss.NewStyle().Foreground(theme.NormalText)

	var row strings.Builder
	for index, element := range elements {
		style := activeStyle
		if !element.active {
			if element.isDot {
				style = inactiveDot
			} else {
				style = inactiveLabel
			}
		}
		row.WriteString(style.Render(element.text))
		if index < gaps {
			row.WriteString(strings.Repeat(" ", spacing[index]))
		}
	}
	return tui.PadRight(row.String(), width)
}
