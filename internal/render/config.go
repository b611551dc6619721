package render

import (
	"errors"
	"fmt"
	"image/color"
)

// Mode selects the output form of the renderer.
type Mode int

const (
	// ModeIndex emits a single image with raw label indices as graylevels.
	ModeIndex Mode = iota + 1
	// ModeStretch emits a single image with stretched graylevels.
	ModeStretch
	// ModeRamp emits a single image with ramp-mapped colors.
	ModeRamp
	// ModeSplit emits one stretched-graylevel image per label.
	ModeSplit
	// ModeSplitBinary emits one pure black/white image per label.
	ModeSplitBinary
	// ModeSplitRamp emits one ramp-colored image per label.
	ModeSplitRamp
)

// Split reports whether the mode produces one image per label.
func (m Mode) Split() bool {
	return m >= ModeSplit && m <= ModeSplitRamp
}

// DefaultMargin is the border margin in pixels added around a trimmed
// region's bounding box.
const DefaultMargin = 5

// Sentinel errors for renderer configuration.
var (
	// ErrMode indicates a mode outside the valid 1..6 range.
	ErrMode = errors.New("render: mode must be between 1 and 6")
	// ErrExponent indicates a non-positive spread exponent.
	ErrExponent = errors.New("render: exponent must be a positive integer")
)

// Config is the renderer configuration, resolved once from user input and
// never mutated afterwards.
type Config struct {
	// Mode selects the output form (1..6).
	Mode Mode

	// Background is the color painted behind isolated regions in split
	// modes. Ignored when Transparent is set.
	Background color.NRGBA

	// Transparent makes the background of split-mode images fully
	// transparent instead of opaque.
	Transparent bool

	// Exponent is the spread parameter for ramp modes; stretched levels are
	// raised to 1/Exponent before ramp lookup. Must be >= 1. A value around
	// 6 separates ~26 shapes well.
	Exponent int

	// Trim crops each split-mode image to its region's bounding box plus
	// Margin. Only meaningful for modes 4-6.
	Trim bool

	// KeepCanvas retains original-frame geometry (offsets) on trimmed
	// artifacts instead of discarding it.
	KeepCanvas bool

	// Margin is the trim border in pixels; zero means DefaultMargin.
	Margin int
}

// DefaultConfig returns a Config with the reference defaults: mode 3,
// opaque black background, exponent 1, no trimming.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeRamp,
		Background: color.NRGBA{A: 255},
		Exponent:   1,
		Margin:     DefaultMargin,
	}
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if c.Mode < ModeIndex || c.Mode > ModeSplitRamp {
		return fmt.Errorf("%w: got %d", ErrMode, c.Mode)
	}
	if c.Exponent < 1 {
		return fmt.Errorf("%w: got %d", ErrExponent, c.Exponent)
	}
	return nil
}

// margin returns the effective trim margin.
func (c Config) margin() int {
	if c.Margin <= 0 {
		return DefaultMargin
	}
	return c.Margin
}

// background returns the effective background color, honoring Transparent.
func (c Config) background() color.NRGBA {
	if c.Transparent {
		return color.NRGBA{}
	}
	return c.Background
}
