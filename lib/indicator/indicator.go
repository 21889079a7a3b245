// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package indicator computes and renders the segmented progress
// indicator under the scroll strip: a row of dots grouped into
// labelled segments, lit up to the current scroll ratio.
//
// [Compute] is a pure function of the ratio and the dot/segment
// counts. The tie-break is floor division throughout, which lights the
// last dot only at ratio 1 and can report a label one segment behind
// the dot when the dot count does not divide evenly; that behaviour is
// deliberate and covered by tests.
package indicator

import "math"

// Indicator is the fixed structure of the progress row: one label per
// segment, each followed by DotsPerSegment dots.
type Indicator struct {
	Labels         []string
	DotsPerSegment int
}

// Dots returns the total number of dots.
func (indicator Indicator) Dots() int {
	if indicator.DotsPerSegment <= 0 {
		return 0
	}
	return len(indicator.Labels) * indicator.DotsPerSegment
}

// Segments returns the number of labelled segments.
func (indicator Indicator) Segments() int {
	return len(indicator.Labels)
}

// State computes the lit state for a ratio.
func (indicator Indicator) State(ratio float64) State {
	return Compute(ratio, indicator.Dots(), indicator.Segments())
}

// State is the lit state of the indicator. Every dot with an index at
// or below ActiveDot is active, and likewise for labels. -1 means
// nothing is lit.
type State struct {
	ActiveDot   int
	ActiveLabel int
}

// Inactive is the state with nothing lit, used when the content does
// not overflow and there is no scroll progress to show.
func Inactive() State {
	return State{ActiveDot: -1, ActiveLabel: -1}
}

// DotActive reports whether the dot at index is lit.
func (state State) DotActive(index int) bool {
	return index <= state.ActiveDot
}

// LabelActive reports whether the label at index is lit.
func (state State) LabelActive(index int) bool {
	return index <= state.ActiveLabel
}

// Compute maps a scroll ratio to the lit state:
//
//	activeDot   = floor(ratio * (dots - 1))
//	activeLabel = floor(activeDot / (dots / segments))
//
// The label division is real-valued before flooring, so uneven dot
// counts split the dot range at fractional boundaries. The ratio is
// clamped to [0, 1]; empty collections produce [Inactive].
func Compute(ratio float64, dots, segments int) State {
	if dots <= 0 {
		return Inactive()
	}
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	state := State{
		ActiveDot:   int(math.Floor(ratio * float64(dots-1))),
		ActiveLabel: -1,
	}
	if segments > 0 {
		dotsPerLabel := float64(dots) / float64(segments)
		state.ActiveLabel = int(math.Floor(float64(state.ActiveDot) / dotsPerLabel))
	}
	return state
}
