// Package svg hand-rolls the small set of SVG elements the map
// renderer needs: circle, polyline, text, the document envelope, and
// the colour grammar. No SVG library exists in the reference corpus,
// so this is a direct, idiomatic-Go translation of
// original_source/transport-catalogue/svg.h/.cpp rather than an
// import.
package svg

import (
	"encoding/json"
	"fmt"
)

// Color is the closed string/rgb/rgba union from spec.md §6's colour
// grammar. The zero value renders as "none".
type Color struct {
	named   string
	isNamed bool

	r, g, b uint8
	a       float64
	hasRGB  bool
	hasA    bool
}

// NamedColor wraps a CSS/SVG colour keyword or any other literal
// colour string.
func NamedColor(name string) Color {
	return Color{named: name, isNamed: true}
}

// RGB builds an opaque 8-bit-channel colour.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, hasRGB: true}
}

// RGBA builds a translucent 8-bit-channel colour; a is opacity in
// [0,1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{r: r, g: g, b: b, a: a, hasRGB: true, hasA: true}
}

// String renders the colour per spec.md §6: `"name"`, `rgb(r,g,b)`, or
// `rgba(r,g,b,a)`.
func (c Color) String() string {
	switch {
	case c.isNamed:
		return c.named
	case c.hasA:
		return fmt.Sprintf("rgba(%d,%d,%d,%v)", c.r, c.g, c.b, c.a)
	case c.hasRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	default:
		return "none"
	}
}

// UnmarshalJSON accepts a string, a 3-element [r,g,b] array, or a
// 4-element [r,g,b,a] array, per spec.md §6's colour grammar.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = NamedColor(name)
		return nil
	}

	var channels []float64
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("svg: invalid color: %w", err)
	}
	switch len(channels) {
	case 3:
		*c = RGB(uint8(channels[0]), uint8(channels[1]), uint8(channels[2]))
	case 4:
		*c = RGBA(uint8(channels[0]), uint8(channels[1]), uint8(channels[2]), channels[3])
	default:
		return fmt.Errorf("svg: color array must have 3 or 4 elements, got %d", len(channels))
	}
	return nil
}

// MarshalJSON round-trips a Color as the string form, which is
// sufficient for any config that is only ever read back by this
// program.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
