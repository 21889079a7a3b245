// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package strip

// DragState is the thumb drag state machine. It is owned by a single
// Model and changes only through beginDrag (press on the thumb) and
// endDrag (release anywhere, or unmount).
type DragState int

const (
	// Idle: pointer motion is ignored.
	Idle DragState = iota

	// Dragging: pointer motion moves the thumb and the scroll offset.
	Dragging
)

// String returns the state name.
func (state DragState) String() string {
	switch state {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}
