// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

import (
	"math"
	"testing"
)

func testItems() []Item {
	items := make([]Item, 12)
	for index := range items {
		items[index] = Item{Width: 40, Height: 10, MarginRight: 2}
	}
	return items
}

func TestContentExtentDropsTrailingMargin(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  int
	}{
		{"empty", nil, 0},
		{"single", []Item{{Width: 40, MarginRight: 2}}, 40},
		{"two", []Item{{Width: 40, MarginRight: 2}, {Width: 30, MarginRight: 5}}, 72},
		{"twelve", testItems(), 12*40 + 11*2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ContentExtent(test.items); got != test.want {
				t.Errorf("ContentExtent = %d, want %d", got, test.want)
			}
		})
	}
}

func TestMeasureIsIdempotent(t *testing.T) {
	items := testItems()
	first := Measure(items, 100)
	second := Measure(items, 100)
	if first != second {
		t.Errorf("second measure differs: %+v vs %+v", first, second)
	}
	if first.ContentHeight != 10 {
		t.Errorf("ContentHeight = %d, want 10", first.ContentHeight)
	}
}

func TestLayoutMaxScroll(t *testing.T) {
	layout := Measure(testItems(), 100)
	if got := layout.MaxScroll(); got != 502-100 {
		t.Errorf("MaxScroll = %d, want %d", got, 402)
	}
	if !layout.Overflows() {
		t.Error("expected overflow")
	}

	fits := Measure([]Item{{Width: 20}}, 100)
	if fits.MaxScroll() != 0 || fits.Overflows() {
		t.Errorf("content narrower than viewport: MaxScroll = %d", fits.MaxScroll())
	}

	if got := layout.ClampScroll(-5); got != 0 {
		t.Errorf("ClampScroll(-5) = %d", got)
	}
	if got := layout.ClampScroll(10_000); got != 402 {
		t.Errorf("ClampScroll(10000) = %d", got)
	}
}

func TestForwardMappingStaysInRange(t *testing.T) {
	track := Track{ClientWidth: 80, ThumbWidth: 6, Inset: 2}
	maxScroll := 402
	for scroll := 0; scroll <= maxScroll; scroll++ {
		left := track.ThumbLeft(Ratio(scroll, maxScroll))
		if left < track.MinThumb() || left > track.MaxThumb() {
			t.Fatalf("scroll %d: thumb %v outside [%v, %v]", scroll, left, track.MinThumb(), track.MaxThumb())
		}
	}
	if got := track.MaxThumb(); got != 80-2-6 {
		t.Errorf("MaxThumb = %v, want %v", got, 72)
	}
}

func TestForwardThenReverseRoundTrips(t *testing.T) {
	track := Track{ClientWidth: 80, ThumbWidth: 6, Inset: 2}
	for step := 0; step <= 100; step++ {
		ratio := float64(step) / 100
		got := track.RatioFromThumb(track.ThumbLeft(ratio))
		if math.Abs(got-ratio) > 1e-9 {
			t.Errorf("ratio %v round-tripped to %v", ratio, got)
		}
	}
}

func TestRatioWithoutOverflowIsZero(t *testing.T) {
	for _, scroll := range []int{0, 5, -3} {
		if got := Ratio(scroll, 0); got != 0 {
			t.Errorf("Ratio(%d, 0) = %v, want 0", scroll, got)
		}
	}
	if got := ScrollFromRatio(0.7, 0); got != 0 {
		t.Errorf("ScrollFromRatio without overflow = %d", got)
	}
	if got := Ratio(500, 400); got != 1 {
		t.Errorf("Ratio past the end = %v, want 1", got)
	}
}

func TestRatioFromClickAtRightEdge(t *testing.T) {
	track := Track{ClientWidth: 80, ThumbWidth: 6, Inset: 2}
	ratio := track.RatioFromClick(float64(track.TrackWidth()))
	if ratio != 1 {
		t.Fatalf("ratio = %v, want 1", ratio)
	}
	if got := ScrollFromRatio(ratio, 402); got != 402 {
		t.Errorf("scroll = %d, want 402", got)
	}
	if got := track.ThumbLeft(ratio); got != track.MaxThumb() {
		t.Errorf("thumb = %v, want %v", got, track.MaxThumb())
	}
	if got := track.RatioFromClick(1000); got != 1 {
		t.Errorf("click past the end = %v", got)
	}
	if got := track.RatioFromClick(-4); got != 0 {
		t.Errorf("click before the start = %v", got)
	}
}

func TestDragThumbClampsAndTracks(t *testing.T) {
	track := Track{ClientWidth: 80, ThumbWidth: 6, Inset: 2}
	previous := math.Inf(-1)
	for x := -10; x <= 100; x++ {
		left := track.DragThumb(float64(x))
		if left < previous {
			t.Fatalf("x=%d: thumb moved backwards (%v < %v)", x, left, previous)
		}
		if left < track.MinThumb() || left > track.MaxThumb() {
			t.Fatalf("x=%d: thumb %v out of range", x, left)
		}
		previous = left
	}
	if got := track.DragThumb(40); got != 37 {
		t.Errorf("DragThumb(40) = %v, want 37", got)
	}
}

func TestDegenerateTrackPinsThumb(t *testing.T) {
	track := Track{ClientWidth: 8, ThumbWidth: 10, Inset: 2}
	if track.MaxThumb() != track.MinThumb() {
		t.Errorf("MaxThumb %v != MinThumb %v", track.MaxThumb(), track.MinThumb())
	}
	if got := track.ThumbLeft(0.8); got != 2 {
		t.Errorf("ThumbLeft = %v, want 2", got)
	}
	if got := track.RatioFromThumb(5); got != 0 {
		t.Errorf("RatioFromThumb = %v, want 0", got)
	}
	if got := track.ClampThumb(math.NaN()); got != 2 {
		t.Errorf("ClampThumb(NaN) = %v", got)
	}
}
