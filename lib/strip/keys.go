// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package strip

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings. The widget is pointer driven; the
// keyboard only quits.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}
