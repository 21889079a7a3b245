// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package strip implements the scroll strip widget: a horizontally
// scrollable row of cards with a custom scrollbar and a segmented
// progress indicator. Built on bubbletea (Elm architecture), it is the
// thin presentation layer over the pure arithmetic in [geometry] and
// [indicator].
//
// Three input paths converge on one scroll ratio:
//
//   - wheel over the card viewport adds a fixed step to the scroll
//     offset, and the thumb follows by forward mapping
//   - a press on the track outside the thumb jumps: scroll offset and
//     thumb offset are both derived from the click ratio in one step
//   - a press on the thumb starts a drag; motion moves the thumb under
//     the pointer (clamped) and the scroll offset follows; a release
//     anywhere ends it
//
// After every input the thumb and indicator are recomputed from the
// same ratio, so they never disagree.
//
// The widget is inert until the first tea.WindowSizeMsg (its mount
// point) and again after [Model.Unmount]: every handler checks the
// mount state first and silently does nothing otherwise.
//
// Data flow:
//
//	[tea.MouseMsg / tea.WindowSizeMsg]
//	        |
//	    [Model] -- geometry.Track / geometry.Layout --> ratio
//	        |                                            |
//	  [card viewport]     [track + thumb]     [indicator.State]
package strip
