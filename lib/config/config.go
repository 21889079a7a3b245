// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config is the master configuration for the scroll strip.
type Config struct {
	// Frame sets the outer frame size.
	Frame FrameConfig `yaml:"frame" json:"frame"`

	// Content configures the scrollable card row.
	Content ContentConfig `yaml:"content" json:"content"`

	// Scrollbar configures the track, thumb and wheel.
	Scrollbar ScrollbarConfig `yaml:"scrollbar" json:"scrollbar"`

	// Indicator configures the segmented progress row.
	Indicator IndicatorConfig `yaml:"indicator" json:"indicator"`

	// Theme overrides individual theme colors by snake_case name
	// (for example "active", "border", "accent_red"). Values are
	// lipgloss color strings: ANSI 256 codes or #rrggbb.
	Theme map[string]string `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// FrameConfig sets the outer frame size in cells.
type FrameConfig struct {
	// Width is the fixed frame width. Zero fills the terminal width.
	Width int `yaml:"width" json:"width"`

	// Height is the fixed frame height. Zero fits the content.
	Height int `yaml:"height" json:"height"`
}

// ContentConfig configures the card row.
type ContentConfig struct {
	// Gap is the number of blank columns between adjacent cards.
	Gap int `yaml:"gap" json:"gap"`

	// CardWidth and CardHeight are the size given to cards that do
	// not set their own.
	CardWidth  int `yaml:"card_width" json:"card_width"`
	CardHeight int `yaml:"card_height" json:"card_height"`

	// Accents is the accent cycle for cards without an explicit
	// accent: card i gets Accents[i / GroupSize % len(Accents)].
	Accents   []string `yaml:"accents" json:"accents"`
	GroupSize int      `yaml:"group_size" json:"group_size"`

	// Cards is the deck, in display order.
	Cards []CardConfig `yaml:"cards" json:"cards"`
}

// CardConfig is one card of the deck.
type CardConfig struct {
	Title  string `yaml:"title" json:"title"`
	Body   string `yaml:"body" json:"body"`
	Accent string `yaml:"accent,omitempty" json:"accent,omitempty"`
	Width  int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height int    `yaml:"height,omitempty" json:"height,omitempty"`
}

// ScrollbarConfig configures the track and thumb.
type ScrollbarConfig struct {
	// Inset is the number of columns reserved at each end of the track.
	Inset int `yaml:"inset" json:"inset"`

	// ThumbWidth is the width of the draggable thumb.
	ThumbWidth int `yaml:"thumb_width" json:"thumb_width"`

	// WheelStep is the number of columns one wheel notch scrolls.
	WheelStep int `yaml:"wheel_step" json:"wheel_step"`
}

// IndicatorConfig configures the progress row. There is one segment
// per label, and each label is followed by DotsPerSegment dots.
type IndicatorConfig struct {
	Labels         []string `yaml:"labels" json:"labels"`
	DotsPerSegment int      `yaml:"dots_per_segment" json:"dots_per_segment"`
}

// defaultLabels are the four indicator segments of the built-in deck.
var defaultLabels = []string{"Max Drawdown", "Float Profit", "Closed Profit", "Trades Number"}

// Default returns the built-in deck: twelve 40x10 cards in four
// colour groups of three, a two-column gap, a 100-column frame, and a
// 24-dot indicator in four labelled segments.
func Default() *Config {
	cards := make([]CardConfig, 0, 12)
	for group, label := range defaultLabels {
		for index := 1; index <= 3; index++ {
			cards = append(cards, CardConfig{
				Title: fmt.Sprintf("%s %d/3", label, index),
				Body:  defaultCardBody(label, group*3+index),
			})
		}
	}

	cfg := &Config{
		Frame: FrameConfig{Width: 100},
		Content: ContentConfig{
			Gap:        2,
			CardWidth:  40,
			CardHeight: 10,
			Accents:    []string{"red", "blue", "yellow", "green"},
			GroupSize:  3,
			Cards:      cards,
		},
		Scrollbar: ScrollbarConfig{
			Inset:      2,
			ThumbWidth: 8,
			WheelStep:  10,
		},
		Indicator: IndicatorConfig{
			Labels:         append([]string(nil), defaultLabels...),
			DotsPerSegment: 6,
		},
	}
	cfg.applyCardDefaults()
	return cfg
}

func defaultCardBody(label string, number int) string {
	return fmt.Sprintf("Panel **%d** of the *%s* segment.\n\n"+
		"- scroll with the wheel\n- drag the thumb\n- click the track", number, strings.ToLower(label))
}

// LoadFile loads configuration from the given path, on top of
// [Default]. The format is chosen by extension. The result is not
// validated; call [Config.Validate].
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyCardDefaults()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// A deck in the file replaces the default deck wholesale rather
	// than merging into it element by element.
	defaultCards := c.Content.Cards
	c.Content.Cards = nil
	defer func() {
		if c.Content.Cards == nil {
			c.Content.Cards = defaultCards
		}
	}()

	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (want .yaml, .yml, .json or .jsonc)", extension)
	}
	return nil
}

// applyCardDefaults fills zero card sizes from the content-level size
// and assigns accents from the accent cycle.
func (c *Config) applyCardDefaults() {
	groupSize := c.Content.GroupSize
	if groupSize <= 0 {
		groupSize = 1
	}
	for index := range c.Content.Cards {
		card := &c.Content.Cards[index]
		if card.Width == 0 {
			card.Width = c.Content.CardWidth
		}
		if card.Height == 0 {
			card.Height = c.Content.CardHeight
		}
		if card.Accent == "" && len(c.Content.Accents) > 0 {
			card.Accent = c.Content.Accents[(index/groupSize)%len(c.Content.Accents)]
		}
	}
}

// Validate checks the configuration for values the widget cannot
// lay out. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Frame.Width < 0 {
		errs = append(errs, fmt.Errorf("frame.width must not be negative"))
	}
	if c.Frame.Height < 0 {
		errs = append(errs, fmt.Errorf("frame.height must not be negative"))
	}
	if c.Content.Gap < 0 {
		errs = append(errs, fmt.Errorf("content.gap must not be negative"))
	}
	if len(c.Content.Cards) == 0 {
		errs = append(errs, fmt.Errorf("content.cards must list at least one card"))
	}
	for index, card := range c.Content.Cards {
		if card.Width <= 0 || card.Height <= 0 {
			errs = append(errs, fmt.Errorf("content.cards[%d] must have a positive width and height", index))
		}
	}
	if c.Scrollbar.Inset < 0 {
		errs = append(errs, fmt.Errorf("scrollbar.inset must not be negative"))
	}
	if c.Scrollbar.ThumbWidth < 1 {
		errs = append(errs, fmt.Errorf("scrollbar.thumb_width must be at least 1"))
	}
	if c.Scrollbar.WheelStep < 1 {
		errs = append(errs, fmt.Errorf("scrollbar.wheel_step must be at least 1"))
	}
	if c.Frame.Width > 0 && c.Frame.Width < 2*c.Scrollbar.Inset+c.Scrollbar.ThumbWidth+4 {
		errs = append(errs, fmt.Errorf("frame.width %d is too narrow for the scrollbar", c.Frame.Width))
	}
	if len(c.Indicator.Labels) == 0 {
		errs = append(errs, fmt.Errorf("indicator.labels must list at least one label"))
	}
	if c.Indicator.DotsPerSegment < 1 {
		errs = append(errs, fmt.Errorf("indicator.dots_per_segment must be at least 1"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
