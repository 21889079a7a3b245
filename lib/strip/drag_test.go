// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package strip

import "testing"

func TestDragStateString(t *testing.T) {
	for state, want := range map[DragState]string{Idle: "idle", Dragging: "dragging", DragState(7): "unknown"} {
		if got := state.String(); got != want {
			t.Errorf("DragState(%d).String() = %q, want %q", state, got, want)
		}
	}
}
