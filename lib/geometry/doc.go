// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package geometry holds the pure coordinate arithmetic behind the
// scroll strip: measuring the content extent of a row of fixed-size
// items, and mapping between the three coordinate spaces the widget
// keeps in sync.
//
//   - content scroll offset, in [0, MaxScroll]
//   - scrollbar thumb offset, in [Inset, TrackWidth+Inset-ThumbWidth]
//   - normalized scroll ratio, in [0, 1]
//
// Nothing here touches a terminal or a renderer. The strip package
// feeds mouse and window events through these functions and applies
// the results to what it draws, so every property of the mapping can
// be tested without a rendering surface.
//
// All units are terminal cells. Ratios are float64; offsets stay
// float64 until the presentation layer rounds them to a column.
//
// This package depends on no other scrollstrip packages.
package geometry
