package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pikin-cock/xdeco/deco"
	"github.com/pikin-cock/xdeco/pointer"
)

// PointerMode selects how the pointer follower places the cursor.
type PointerMode string

const (
	PointerModeNearest  PointerMode = "nearest"  // Clamp into the target rectangle.
	PointerModeRelative PointerMode = "relative" // Fractional offset inside it.
)

// Pointer configures the focus-follow warp.
type Pointer struct {
	Mode       PointerMode `yaml:"mode"`
	Horizontal float64     `yaml:"horizontal"` // 0-1, relative mode only
	Vertical   float64     `yaml:"vertical"`   // 0-1, relative mode only
}

// Highlight configures the banner flashed over the focused window.
type Highlight struct {
	Hotkey         string        `yaml:"hotkey"`
	Font           string        `yaml:"font"`
	Background     string        `yaml:"background"`
	Border         string        `yaml:"border"`
	Text           string        `yaml:"text"`
	TextBackground string        `yaml:"text_background"`
	BorderWidth    int           `yaml:"border_width"`
	Align          string        `yaml:"align"` // center, left, right
	Duration       time.Duration `yaml:"duration"`
}

// Log configures daemon logging.
type Log struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Config is the effective xdeco configuration.
type Config struct {
	Pointer   Pointer   `yaml:"pointer"`
	Highlight Highlight `yaml:"highlight"`
	Log       Log       `yaml:"log"`
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() *Config {
	return &Config{
		Pointer: Pointer{
			Mode:       PointerModeNearest,
			Horizontal: 0.5,
			Vertical:   0.5,
		},
		Highlight: Highlight{
			Hotkey:         "mod4-u",
			Font:           deco.DefaultFontName,
			Background:     "grey20",
			Border:         "steelblue",
			Text:           "white",
			TextBackground: "grey20",
			BorderWidth:    2,
			Align:          "center",
			Duration:       800 * time.Millisecond,
		},
		Log: Log{Level: "info"},
	}
}

// Validate checks the configuration for values the daemon cannot use.
func (c *Config) Validate() error {
	switch c.Pointer.Mode {
	case PointerModeNearest, PointerModeRelative:
	default:
		return fmt.Errorf("pointer.mode must be %q or %q, got %q",
			PointerModeNearest, PointerModeRelative, c.Pointer.Mode)
	}
	if c.Pointer.Mode == PointerModeRelative {
		if c.Pointer.Horizontal < 0 || c.Pointer.Horizontal > 1 {
			return fmt.Errorf("pointer.horizontal must be in [0,1], got %v", c.Pointer.Horizontal)
		}
		if c.Pointer.Vertical < 0 || c.Pointer.Vertical > 1 {
			return fmt.Errorf("pointer.vertical must be in [0,1], got %v", c.Pointer.Vertical)
		}
	}
	if _, err := c.AlignValue(); err != nil {
		return err
	}
	if c.Highlight.BorderWidth < 0 {
		return fmt.Errorf("highlight.border_width must be >= 0, got %d", c.Highlight.BorderWidth)
	}
	if c.Highlight.Duration <= 0 {
		return fmt.Errorf("highlight.duration must be > 0, got %v", c.Highlight.Duration)
	}
	return nil
}

// PointerPosition returns the pointer position selector the config names.
func (c *Config) PointerPosition() pointer.Position {
	if c.Pointer.Mode == PointerModeRelative {
		return pointer.Relative(c.Pointer.Horizontal, c.Pointer.Vertical)
	}
	return pointer.Nearest
}

// AlignValue returns the text alignment the config names.
func (c *Config) AlignValue() (deco.Align, error) {
	switch strings.ToLower(c.Highlight.Align) {
	case "center", "":
		return deco.AlignCenter, nil
	case "left":
		return deco.AlignLeft, nil
	case "right":
		return deco.AlignRight, nil
	default:
		return 0, fmt.Errorf("highlight.align must be center, left, or right, got %q", c.Highlight.Align)
	}
}
