// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

import "math"

// Track describes the horizontal region the scrollbar thumb moves in.
// ClientWidth is the full width of the track; Inset columns are
// reserved at both ends. All thumb offsets are relative to the
// track's left edge.
type Track struct {
	ClientWidth int
	ThumbWidth  int
	Inset       int
}

// TrackWidth is the usable width between the two insets.
func (track Track) TrackWidth() int {
	width := track.ClientWidth - 2*track.Inset
	if width < 0 {
		return 0
	}
	return width
}

// travel is how far the thumb can move: usable width minus the thumb.
func (track Track) travel() int {
	travel := track.TrackWidth() - track.ThumbWidth
	if travel < 0 {
		return 0
	}
	return travel
}

// MinThumb is the leftmost valid thumb offset (the inset).
func (track Track) MinThumb() float64 {
	return float64(track.Inset)
}

// MaxThumb is the rightmost valid thumb offset:
// TrackWidth + Inset - ThumbWidth. When the thumb is wider than the
// usable width the range collapses to the inset.
func (track Track) MaxThumb() float64 {
	return float64(track.Inset + track.travel())
}

// ClampThumb limits a candidate thumb offset to [MinThumb, MaxThumb].
func (track Track) ClampThumb(left float64) float64 {
	if math.IsNaN(left) {
		return track.MinThumb()
	}
	return math.Max(track.MinThumb(), math.Min(left, track.MaxThumb()))
}

// ThumbLeft is the forward mapping from a scroll ratio to a thumb
// offset: ratio*(TrackWidth-ThumbWidth) + Inset.
func (track Track) ThumbLeft(ratio float64) float64 {
	return track.ClampThumb(clampRatio(ratio)*float64(track.travel()) + track.MinThumb())
}

// RatioFromThumb is the reverse mapping from a thumb offset to a
// ratio. The offset is clamped first, so the result is always in
// [0, 1]. A track with no travel maps everything to 0.
func (track Track) RatioFromThumb(left float64) float64 {
	travel := track.travel()
	if travel == 0 {
		return 0
	}
	return clampRatio((track.ClampThumb(left) - track.MinThumb()) / float64(travel))
}

// RatioFromClick maps a pointer position, relative to the track's
// left edge, to a ratio: x / TrackWidth, clamped to [0, 1]. A click at
// x == TrackWidth yields exactly 1.
func (track Track) RatioFromClick(x float64) float64 {
	width := track.TrackWidth()
	if width == 0 {
		return 0
	}
	return clampRatio(x / float64(width))
}

// DragThumb computes the thumb offset for a drag gesture: the pointer
// (relative to the track's left edge) grabs the thumb by its middle,
// and the result is clamped to the valid range.
func (track Track) DragThumb(x float64) float64 {
	return track.ClampThumb(x - float64(track.ThumbWidth)/2)
}

// Ratio normalizes a scroll offset against the maximum scroll offset.
// When nothing can scroll (maxScroll <= 0) the ratio is 0 instead of
// NaN or Inf; out-of-range offsets are clamped.
func Ratio(scroll, maxScroll int) float64 {
	if maxScroll <= 0 {
		return 0
	}
	return clampRatio(float64(scroll) / float64(maxScroll))
}

// ScrollFromRatio maps a ratio back to a scroll offset, rounded to
// the nearest column.
func ScrollFromRatio(ratio float64, maxScroll int) int {
	if maxScroll <= 0 {
		return 0
	}
	return int(math.Round(clampRatio(ratio) * float64(maxScroll)))
}

func clampRatio(ratio float64) float64 {
	if math.IsNaN(ratio) || ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
