// Package maprender composes the ordered SVG layers describing a bus
// network: route polylines, route labels, stop symbols, and stop
// labels. Grounded on
// original_source/transport-catalogue/map_renderer.h/.cpp.
package maprender

import (
	"fmt"

	"git.fiblab.net/sim/transitcat/internal/svg"
)

// Settings is the render configuration from spec.md §6's
// render_settings object.
type Settings struct {
	Width, Height, Padding float64
	LineWidth, StopRadius  float64
	BusLabelFontSize       int
	StopLabelFontSize      int
	BusLabelOffset         svg.Point
	StopLabelOffset        svg.Point
	UnderlayerColor        svg.Color
	UnderlayerWidth        float64
	ColorPalette           []svg.Color
}

// Validate checks the range constraints spec.md §6 states for
// render_settings.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Padding <= 0 {
		return fmt.Errorf("maprender: width, height, and padding must be positive")
	}
	if s.Padding >= minOf(s.Width, s.Height)/2 {
		return fmt.Errorf("maprender: padding must be less than min(width,height)/2")
	}
	if s.LineWidth <= 0 || s.StopRadius <= 0 {
		return fmt.Errorf("maprender: line_width and stop_radius must be positive")
	}
	if s.BusLabelFontSize < 0 || s.StopLabelFontSize < 0 {
		return fmt.Errorf("maprender: label font sizes must be non-negative")
	}
	if s.UnderlayerWidth < 0 {
		return fmt.Errorf("maprender: underlayer_width must be non-negative")
	}
	if len(s.ColorPalette) == 0 {
		return fmt.Errorf("maprender: color_palette must be non-empty")
	}
	return nil
}

func minOf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// PickColor returns the palette entry at index, cycling through the
// palette.
func (s Settings) PickColor(index int) svg.Color {
	return s.ColorPalette[index%len(s.ColorPalette)]
}
