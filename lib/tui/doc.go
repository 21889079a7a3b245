// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the shared terminal chrome for the scroll
// strip: the colour theme, the horizontal scrollbar track with its
// thumb, and ANSI-aware helpers for splicing and slicing rendered
// lines.
//
// Everything here renders strings with lipgloss and measures them
// with charmbracelet/x/ansi, so escape sequences in styled content
// survive slicing. No function in this package holds state; the strip
// package owns the widget state and calls in here to draw it.
package tui
