// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package strip

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/scrollstrip/lib/content"
	"github.com/bureau-foundation/scrollstrip/lib/geometry"
	"github.com/bureau-foundation/scrollstrip/lib/indicator"
	"github.com/bureau-foundation/scrollstrip/lib/tui"
)

// Vertical layout below the card row: one spacer row, then the
// scrollbar frame (top border, indicator row, track row, bottom
// border), then the status line.
const (
	spacerRows    = 1
	scrollbarRows = 4
)

// Model is the bubbletea model for the scroll strip.
type Model struct {
	options Options
	logger  *slog.Logger

	// mounted is set by the first WindowSizeMsg. detached is set by
	// Unmount and is permanent; a detached model ignores everything,
	// resizes included.
	mounted  bool
	detached bool

	// Frame geometry in terminal cells. originX centers the frame
	// when the terminal is wider than the configured frame width.
	terminalWidth int
	frameWidth    int
	originX       int

	layout geometry.Layout
	track  geometry.Track

	// rows is the whole card row rendered once per layout pass, every
	// line exactly the content extent wide. The viewport slices it.
	rows []string

	// scroll, ratio and thumbLeft are kept consistent by the input
	// handlers: all three come from the same computation.
	scroll    int
	ratio     float64
	thumbLeft float64
	drag      DragState

	status         string
	statusLevel    slog.Level
	statusSequence int
}

// New creates a scroll strip. The model is inert until it receives
// its first tea.WindowSizeMsg.
func New(options Options) Model {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if options.WheelStep <= 0 {
		options.WheelStep = 1
	}
	if len(options.Keys.Quit.Keys()) == 0 {
		options.Keys = DefaultKeyMap
	}
	return Model{
		options: options,
		logger:  logger,
	}
}

// Init implements tea.Model. The terminal size arrives as the first
// message, which mounts the model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.resize(message.Width)
		return model, nil

	case tea.KeyMsg:
		if key.Matches(message, model.options.Keys.Quit) {
			model.Unmount()
			return model, tea.Quit
		}
		return model, nil

	case tea.MouseMsg:
		model.handleMouse(message)
		return model, nil

	case logRecordMsg:
		model.status = message.Summary
		model.statusLevel = message.Level
		model.statusSequence++
		sequence := model.statusSequence
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{sequence: sequence}
		})

	case logRecordFadeMsg:
		if message.sequence == model.statusSequence {
			model.status = ""
		}
		return model, nil
	}
	return model, nil
}

// resize is the layout measurer. It sizes the frame to the terminal,
// measures the content extent, re-renders the card row, and resets
// the thumb to the inset. Measuring twice with no change in between
// yields the same layout.
func (model *Model) resize(terminalWidth int) {
	if model.detached {
		return
	}
	model.terminalWidth = max(terminalWidth, 0)
	model.frameWidth = model.terminalWidth
	if model.options.FrameWidth > 0 && model.options.FrameWidth < model.frameWidth {
		model.frameWidth = model.options.FrameWidth
	}
	model.originX = (model.terminalWidth - model.frameWidth) / 2

	model.layout = geometry.Measure(content.Items(model.options.Cards, model.options.Gap), model.frameWidth)
	model.track = geometry.Track{
		ClientWidth: model.innerWidth(),
		ThumbWidth:  model.options.ThumbWidth,
		Inset:       model.options.Inset,
	}
	model.rows = content.RenderRow(model.options.Theme, model.options.Cards, model.options.Gap)
	model.thumbLeft = model.track.MinThumb()

	// A shrinking viewport can pull the scroll offset back; the moved
	// offset drives the thumb the same way any other scroll does.
	if clamped := model.layout.ClampScroll(model.scroll); clamped != model.scroll {
		model.SetScroll(clamped)
	}
	// The ratio always follows the new maximum, so the indicator agrees
	// with the scroll position even when the offset did not move.
	model.ratio = geometry.Ratio(model.scroll, model.layout.MaxScroll())

	if !model.mounted {
		model.mounted = true
		model.logger.Debug("scroll strip mounted",
			"cards", len(model.options.Cards),
			"content_width", model.layout.ContentWidth,
			"viewport_width", model.layout.ViewportWidth)
		return
	}
	model.logger.Debug("layout measured",
		"content_width", model.layout.ContentWidth,
		"viewport_width", model.layout.ViewportWidth,
		"max_scroll", model.layout.MaxScroll())
}

// innerWidth is the width inside the scrollbar frame's border, which
// is also the track's client width.
func (model *Model) innerWidth() int {
	return max(model.frameWidth-2, 0)
}

// Unmount detaches the model: every handler becomes a no-op, an
// in-progress drag is abandoned, and the rendered row is released.
func (model *Model) Unmount() {
	if model.detached {
		return
	}
	if model.drag == Dragging {
		model.logger.Debug("drag abandoned on unmount")
	}
	model.detached = true
	model.mounted = false
	model.drag = Idle
	model.rows = nil
}

// active reports whether input handlers should act.
func (model *Model) active() bool {
	return model.mounted && !model.detached
}

// SetScroll moves the card viewport to offset (clamped to the valid
// range) and maps the result forward onto the thumb and indicator.
func (model *Model) SetScroll(offset int) {
	if !model.active() {
		return
	}
	model.scroll = model.layout.ClampScroll(offset)
	model.ratio = geometry.Ratio(model.scroll, model.layout.MaxScroll())
	model.thumbLeft = model.track.ThumbLeft(model.ratio)
}

// Wheel scrolls the card viewport by delta columns.
func (model *Model) Wheel(delta int) {
	if !model.active() {
		return
	}
	model.SetScroll(model.scroll + delta)
}

// ClickTrack jumps to the position of a click at x columns from the
// track's left edge. The scroll offset and the thumb are both derived
// from the click ratio. Content that does not overflow stays at the
// start.
func (model *Model) ClickTrack(x int) {
	if !model.active() {
		return
	}
	if !model.layout.Overflows() {
		model.SetScroll(0)
		return
	}
	model.ratio = model.track.RatioFromClick(float64(x))
	model.scroll = geometry.ScrollFromRatio(model.ratio, model.layout.MaxScroll())
	model.thumbLeft = model.track.ThumbLeft(model.ratio)
	model.logger.Debug("track click", "x", x, "ratio", model.ratio, "scroll", model.scroll)
}

// BeginDrag enters the Dragging state.
func (model *Model) BeginDrag() {
	if !model.active() || model.drag == Dragging {
		return
	}
	model.drag = Dragging
	model.logger.Debug("drag started", "thumb_left", model.thumbLeft)
}

// DragTo moves the thumb under a pointer at x columns from the track's
// left edge, grabbing the thumb by its middle. The thumb offset is
// clamped first and the scroll offset follows from it. Outside the
// Dragging state this does nothing.
func (model *Model) DragTo(x int) {
	if !model.active() || model.drag != Dragging {
		return
	}
	if !model.layout.Overflows() {
		model.SetScroll(0)
		return
	}
	model.thumbLeft = model.track.DragThumb(float64(x))
	model.ratio = model.track.RatioFromThumb(model.thumbLeft)
	model.scroll = geometry.ScrollFromRatio(model.ratio, model.layout.MaxScroll())
}

// EndDrag returns to the Idle state.
func (model *Model) EndDrag() {
	if model.drag != Dragging {
		return
	}
	model.drag = Idle
	model.logger.Debug("drag ended", "scroll", model.scroll)
}

// handleMouse routes a terminal mouse event. A drag in progress sees
// every motion and release regardless of where the pointer is, the
// terminal equivalent of document-level listeners.
func (model *Model) handleMouse(message tea.MouseMsg) {
	if !model.active() {
		return
	}

	if model.drag == Dragging {
		switch message.Action {
		case tea.MouseActionMotion:
			model.DragTo(message.X - model.trackLeft())
		case tea.MouseActionRelease:
			model.EndDrag()
		}
		return
	}

	switch message.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if model.inViewport(message.X, message.Y) {
			model.Wheel(model.options.WheelStep)
		}
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if model.inViewport(message.X, message.Y) {
			model.Wheel(-model.options.WheelStep)
		}
	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress {
			return
		}
		switch {
		case model.onThumb(message.X, message.Y):
			model.BeginDrag()
		case model.onScrollbar(message.X, message.Y):
			model.ClickTrack(message.X - model.trackLeft())
		}
	}
}

// Hit regions, in terminal cells.

func (model *Model) contentHeight() int {
	return len(model.rows)
}

func (model *Model) frameHeight() int {
	return max(model.options.FrameHeight, model.contentHeight()+spacerRows+scrollbarRows)
}

func (model *Model) scrollbarTop() int {
	return model.frameHeight() - scrollbarRows
}

func (model *Model) trackRow() int {
	return model.scrollbarTop() + 2
}

func (model *Model) trackLeft() int {
	return model.originX + 1
}

func (model *Model) inFrameColumns(x int) bool {
	return x >= model.originX && x < model.originX+model.frameWidth
}

func (model *Model) inViewport(x, y int) bool {
	return y >= 0 && y < model.contentHeight() && model.inFrameColumns(x)
}

func (model *Model) onScrollbar(x, y int) bool {
	top := model.scrollbarTop()
	return y >= top && y < top+scrollbarRows && model.inFrameColumns(x)
}

func (model *Model) onThumb(x, y int) bool {
	if y != model.trackRow() {
		return false
	}
	column := x - model.trackLeft()
	left := model.thumbColumn()
	return column >= left && column < left+model.options.ThumbWidth
}

// thumbColumn is the thumb offset rounded to a terminal column.
func (model *Model) thumbColumn() int {
	return int(math.Round(model.thumbLeft))
}

// Accessors.

// Mounted reports whether the model has been sized and not unmounted.
func (model Model) Mounted() bool { return model.active() }

// ScrollOffset is the current scroll offset in columns.
func (model Model) ScrollOffset() int { return model.scroll }

// Ratio is the current scroll ratio in [0, 1].
func (model Model) Ratio() float64 { return model.ratio }

// ThumbLeft is the thumb offset from the track's left edge.
func (model Model) ThumbLeft() float64 { return model.thumbLeft }

// DragState is the current drag state.
func (model Model) DragState() DragState { return model.drag }

// Layout is the most recent layout measurement.
func (model Model) Layout() geometry.Layout { return model.layout }

// Track is the current scrollbar track geometry.
func (model Model) Track() geometry.Track { return model.track }

// TrackOrigin is the screen cell of the track's left edge on the
// track row.
func (model Model) TrackOrigin() (x, y int) {
	return model.trackLeft(), model.trackRow()
}

// IndicatorState is the progress indicator state for the current
// ratio. Content that does not overflow lights nothing.
func (model Model) IndicatorState() indicator.State {
	if !model.active() || !model.layout.Overflows() {
		return indicator.Inactive()
	}
	return model.options.Indicator.State(model.ratio)
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.active() || model.frameWidth <= 0 {
		return ""
	}
	theme := model.options.Theme
	margin := strings.Repeat(" ", model.originX)

	var lines []string
	for _, row := range model.rows {
		lines = append(lines, margin+tui.SliceColumns(row, model.scroll, model.frameWidth))
	}
	for len(lines) < model.scrollbarTop() {
		lines = append(lines, "")
	}

	inner := model.innerWidth()
	indicatorRow := model.options.Indicator.Render(theme, model.IndicatorState(), inner)
	trackRow := tui.RenderTrack(theme, inner, model.options.Inset,
		model.thumbColumn(), model.options.ThumbWidth, model.drag == Dragging)
	for _, line := range strings.Split(tui.RenderFrame(theme, []string{indicatorRow, trackRow}, inner), "\n") {
		lines = append(lines, margin+line)
	}

	lines = append(lines, margin+model.statusLine())
	return strings.Join(lines, "\n")
}

// statusLine shows the latest log record while it is fresh, and the
// help text with the scroll position otherwise.
func (model Model) statusLine() string {
	theme := model.options.Theme
	if model.status != "" {
		color := theme.LogWarning
		if model.statusLevel >= slog.LevelError {
			color = theme.LogError
		}
		return lipgloss.NewStyle().Foreground(color).
			Render(ansi.Truncate(model.status, model.frameWidth, "…"))
	}

	help := "wheel scroll · drag thumb · click track · " + model.options.Keys.Quit.Help().Key + " " + model.options.Keys.Quit.Help().Desc
	position := fmt.Sprintf("%d/%d", model.scroll, model.layout.MaxScroll())
	gap := model.frameWidth - ansi.StringWidth(help) - ansi.StringWidth(position)
	if gap < 1 {
		return lipgloss.NewStyle().Foreground(theme.HelpText).Render(ansi.Truncate(help, model.frameWidth, "…"))
	}
	return lipgloss.NewStyle().Foreground(theme.HelpText).Render(help + strings.Repeat(" ", gap) + position)
}

// Snapshot renders a single frame of the strip at the given terminal
// width with the viewport scrolled to scroll, without a terminal. It
// also returns the scroll offset actually shown, which differs from
// scroll when the request was outside [0, MaxScroll].
func Snapshot(options Options, width, scroll int) (string, int) {
	model := New(options)
	model.resize(width)
	model.SetScroll(scroll)
	return model.View(), model.ScrollOffset()
}
